// Package imgcache provides thread-safe caching of decoded images so a
// scenario that reuses the same reference image or mask across several
// shapes only pays for one disk read.
package imgcache

import (
	"fmt"
	"image"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
)

// Cache stores decoded images keyed by file path. It is safe for concurrent
// use; scenario images are processed on separate goroutines and may share
// mask files.
//
// Cached images remain in memory until Clear is called. The CLI's working
// sets are small; long-running embedders should clear between batches.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// New returns an empty cache ready for use.
func New() *Cache {
	return &Cache{images: make(map[string]image.Image)}
}

// Load returns the image at path, reading and decoding it on first use.
// The exact path string is the cache key; relative and absolute paths to
// the same file cache separately.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear drops every cached image, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}
