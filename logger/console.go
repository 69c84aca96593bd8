/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package logger

import (
	"fmt"

	ct "github.com/daviddengcn/go-colortext"
)

// CompileStart announces a feature file being compiled.
func CompileStart(fileName string) {
	FableLog.Infof("compiling %s", fileName)
	ct.Foreground(ct.None, true)
	fmt.Println(fileName)
	ct.ResetColor()
}

// CompileSuccess reports a generated scaffolding file in green.
func CompileSuccess(fileName string) {
	FableLog.Infof("generated %s", fileName)
	ct.Foreground(ct.Green, false)
	fmt.Printf("\t%s\n", fileName)
	ct.ResetColor()
}

// CompileFailure reports a compile error in red.
func CompileFailure(fileName string, err error) {
	FableLog.Errorf("failed %s: %s", fileName, err.Error())
	ct.Foreground(ct.Red, true)
	fmt.Printf("\t%s: %s\n", fileName, err.Error())
	ct.ResetColor()
}
