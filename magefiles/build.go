//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the instanttexture binary into ./bin.
func (Build) Cli() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/instanttexture", "./cmd/instanttexture"), withStream())
	return err
}

// Runs the full test suite.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs go vet across the module.
func Lint() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
