/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package cmd

import (
	"fmt"

	"github.com/getfable/fable/logger"
	"github.com/getfable/fable/parser"
	"github.com/getfable/fable/util"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:     "tokens [flags] <file>",
	Short:   "Print the token stream of a feature file",
	Long:    "Print the token stream of a feature file, one token per line. Useful when debugging grammar errors.",
	Example: "  fable tokens specs/login.fable",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatalf("Usage: fable tokens <file>")
		}
		contents, err := util.ReadFileContents(args[0])
		if err != nil {
			logger.Fatalf("%s", err.Error())
		}
		tokens, err := parser.Tokenize(contents)
		if err != nil {
			logger.Fatalf("%s", err.Error())
		}
		for _, token := range tokens {
			fmt.Println(token.String())
		}
	},
	DisableAutoGenTag: true,
}

func init() {
	FableCmd.AddCommand(tokensCmd)
}
