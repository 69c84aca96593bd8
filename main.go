/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package main

import (
	"os"

	"github.com/getfable/fable/cmd"
)

func main() {
	if err := cmd.Parse(); err != nil {
		os.Exit(1)
	}
}
