//go:build mage

package main

import (
	"os/exec"

	"github.com/magefile/mage/sh"
)

// Default target - build the binary.
var Default = Build

// Build compiles the looksee binary into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/looksee", "./cmd/looksee")
}

// Test runs the full test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet, plus staticcheck when installed.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	if _, err := exec.LookPath("staticcheck"); err == nil {
		return sh.RunV("staticcheck", "./...")
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
