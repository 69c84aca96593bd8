/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/getgauge/common"
)

const (
	outputDirKey     = "fable_output_dir"
	defaultOutputDir = "gen"
	scaffoldPkgKey   = "fable_scaffold_package"
	defaultPkg       = "specs"
)

// ProjectRoot is the absolute path of the current fable project.
var ProjectRoot string

// SetProjectRoot resolves and records the project root for the given
// working directory argument.
func SetProjectRoot(args []string) error {
	if len(args) != 0 {
		return setCurrentProjectEnvVariable()
	}
	root, err := common.GetProjectRoot()
	if err != nil {
		return err
	}
	ProjectRoot = root
	return nil
}

func setCurrentProjectEnvVariable() error {
	pwd, err := os.Getwd()
	if err != nil {
		return err
	}
	ProjectRoot, err = filepath.Abs(pwd)
	return err
}

// OutputDir is the directory generated scaffolding is written to,
// relative to the project root unless absolute.
func OutputDir() string {
	return getFromEnv(outputDirKey, defaultOutputDir)
}

// ScaffoldPackage is the package name stamped on generated test files.
func ScaffoldPackage() string {
	return getFromEnv(scaffoldPkgKey, defaultPkg)
}

func getFromEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}
