/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package cmd

import (
	"path/filepath"

	"github.com/getfable/fable/config"
	"github.com/getfable/fable/fable"
	"github.com/getfable/fable/generator"
	"github.com/getfable/fable/logger"
	"github.com/getfable/fable/parser"
	"github.com/getfable/fable/util"
	"github.com/spf13/cobra"
)

var (
	compileCmd = &cobra.Command{
		Use:     "compile [flags] [args]",
		Short:   "Compile feature files into test scaffolding",
		Long:    "Compile feature files into test scaffolding.",
		Example: "  fable compile specs/",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				args = []string{dirDefault}
			}
			if err := compileSpecs(args); err != nil {
				logger.Fatalf("%s", err.Error())
			}
		},
		DisableAutoGenTag: true,
	}
	outDir string
)

func init() {
	compileCmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory to write generated scaffolding to")
	FableCmd.AddCommand(compileCmd)
}

func compileSpecs(paths []string) error {
	specFiles := util.CollectSpecFiles(paths)
	if len(specFiles) == 0 {
		logger.Warningf("No feature files found in %s", paths)
		return nil
	}
	for _, specFile := range specFiles {
		if err := compileSpec(specFile); err != nil {
			logger.CompileFailure(specFile, err)
			return err
		}
	}
	return nil
}

func compileSpec(specFile string) error {
	logger.CompileStart(specFile)
	contents, err := util.ReadFileContents(specFile)
	if err != nil {
		return err
	}
	tokens, err := parser.Tokenize(contents)
	if err != nil {
		return err
	}
	return parser.ParseWith(tokens, writeScaffolding)
}

// writeScaffolding is the default consumer for a completed suite: it
// wraps the suite in a generator and writes one file per feature.
func writeScaffolding(suite *fable.Suite) error {
	files, err := generator.NewWithPackage(suite, config.ScaffoldPackage()).Files()
	if err != nil {
		return err
	}
	for name, content := range files {
		target := filepath.Join(outputDir(), name)
		if err := util.SaveFile(target, content); err != nil {
			return err
		}
		logger.CompileSuccess(target)
	}
	return nil
}

func outputDir() string {
	if outDir != "" {
		return outDir
	}
	if config.ProjectRoot != "" {
		return filepath.Join(config.ProjectRoot, config.OutputDir())
	}
	return config.OutputDir()
}
