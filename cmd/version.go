/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package cmd

import "github.com/spf13/cobra"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print fable version",
	Long:  "Print fable version.",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
	DisableAutoGenTag: true,
}

func init() {
	FableCmd.AddCommand(versionCmd)
}
