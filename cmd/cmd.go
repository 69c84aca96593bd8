/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package cmd

import (
	"fmt"
	"os"

	"github.com/getfable/fable/config"
	"github.com/getfable/fable/env"
	"github.com/getfable/fable/logger"
	"github.com/getfable/fable/version"
	"github.com/spf13/cobra"
)

const (
	logLevelDefault = "info"
	dirDefault      = "."

	logLevelName = "log-level"
	dirName      = "dir"
	versionName  = "version"
)

var (
	FableCmd = &cobra.Command{
		Use: "fable <command> [flags] [args]",
		Example: `  fable compile specs/
  fable watch specs/`,
		Run: func(cmd *cobra.Command, args []string) {
			if fableVersion {
				printVersion()
				return
			}
			if len(args) < 1 {
				if err := cmd.Help(); err != nil {
					logger.Errorf("Unable to print help: %s", err.Error())
				}
			}
		},
		DisableAutoGenTag: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := os.Chdir(dir); err != nil {
				logger.Fatalf("Unable to change to directory %s: %s", dir, err.Error())
			}
			if err := config.SetProjectRoot(args); err == nil {
				if err := env.LoadEnv(true); err != nil {
					logger.Warningf("%s", err.Error())
				}
			}
			logger.Initialize(logLevel)
		},
	}
	logLevel     string
	dir          string
	fableVersion bool
)

func init() {
	FableCmd.PersistentFlags().StringVarP(&logLevel, logLevelName, "l", logLevelDefault, "Set level of logging to debug, info, warning or error")
	FableCmd.PersistentFlags().StringVarP(&dir, dirName, "d", dirDefault, "Set the working directory for the current command, accepts a path relative to current directory")
	FableCmd.Flags().BoolVarP(&fableVersion, versionName, "v", false, "Print fable version")
}

func printVersion() {
	fmt.Printf("Fable version: %s\n", version.FullVersion())
}

// Parse executes the root command.
func Parse() error {
	return FableCmd.Execute()
}
