//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets (all, unit).
type Test mg.Namespace

// All runs all tests.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs only library and internal tests, excluding the CLI package.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-v", "./pkg/...", "./internal/...")
}
