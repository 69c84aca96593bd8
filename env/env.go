/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package env

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	properties "github.com/dmotylev/goproperties"
	"github.com/getfable/fable/config"
	"github.com/getgauge/common"
)

const envDefaultDirName = "default"

var CurrentEnv = "default"
var ProjectEnv = "default"

// LoadEnv loads the default environment and then the user specified one,
// so user properties can override defaults.
func LoadEnv(isDefaultEnvOptional bool) error {
	if err := loadEnvironment(envDefaultDirName); err != nil {
		if !isDefaultEnvOptional {
			return fmt.Errorf("failed to load the default environment. %s", err.Error())
		}
	}
	if ProjectEnv != envDefaultDirName {
		if err := loadEnvironment(ProjectEnv); err != nil {
			return fmt.Errorf("failed to load the environment: %s. %s", ProjectEnv, err.Error())
		}
		CurrentEnv = ProjectEnv
	}
	return nil
}

// loadEnvironment exports every property in the env directory's
// .properties files as a process environment variable.
func loadEnvironment(env string) error {
	envDir := filepath.Join(config.ProjectRoot, common.EnvDirectoryName)
	dirToRead := path.Join(envDir, env)
	if !common.DirExists(dirToRead) {
		return fmt.Errorf("%s environment does not exist", env)
	}
	isProperties := func(fileName string) bool {
		return filepath.Ext(fileName) == ".properties"
	}
	return filepath.Walk(dirToRead, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !isProperties(path) {
			return nil
		}
		p, e := properties.Load(path)
		if e != nil {
			return fmt.Errorf("failed to parse: %s. %s", path, e.Error())
		}
		for k, v := range p {
			if err := common.SetEnvVariable(k, v); err != nil {
				return fmt.Errorf("%s: %s", path, err.Error())
			}
		}
		return nil
	})
}
