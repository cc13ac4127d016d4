// Package config defines YAML scenario files for the roikit CLI: the list
// of images to process, the ROI shapes to build on each, and the debug
// visualization settings shared by all of them.
package config
