//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Convert builds the CLI and converts the sample documents into
// testdata/samples/txt.
func Convert() error {
	mg.Deps(Build, Samples)
	return sh.RunV(filepath.Join(binDir, binName), "convert",
		samplesDir, filepath.Join(samplesDir, "txt"), "--log-level", "debug")
}
