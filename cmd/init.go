/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/getfable/fable/logger"
	"github.com/getgauge/common"
	"github.com/spf13/cobra"
)

const (
	specsDirName   = "specs"
	sampleFileName = "login.fable"

	sampleSpec = `Feature:
    Login
    Allows registered users in.

    Scenario:
        Valid credentials
        Given a user
        When they sign in
        Then is logged in
`

	defaultProperties = `# fable project properties
fable_output_dir = gen
fable_scaffold_package = specs
`

	manifestContents = `{
  "language": "go"
}
`
)

var initCmd = &cobra.Command{
	Use:     "init",
	Short:   "Initialize a fable project in the current directory",
	Long:    "Initialize a fable project: a specs directory with a sample feature file and a default environment.",
	Example: "  fable init",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initProject(); err != nil {
			logger.Fatalf("Failed to initialize project: %s", err.Error())
		}
	},
	DisableAutoGenTag: true,
}

func init() {
	FableCmd.AddCommand(initCmd)
}

func initProject() error {
	if err := createFile(common.ManifestFile, manifestContents); err != nil {
		return err
	}
	if err := createFile(filepath.Join(specsDirName, sampleFileName), sampleSpec); err != nil {
		return err
	}
	envFile := filepath.Join(common.EnvDirectoryName, common.DefaultEnvDir, "fable.properties")
	return createFile(envFile, defaultProperties)
}

func createFile(path, contents string) error {
	if common.FileExists(path) {
		showMessage("skip", path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), common.NewDirectoryPermissions); err != nil {
		return err
	}
	if err := common.SaveFile(path, contents, false); err != nil {
		return err
	}
	showMessage("create", path)
	return nil
}

func showMessage(action, fileName string) {
	fmt.Printf(" %s  %s\n", action, fileName)
}
