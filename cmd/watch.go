/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package cmd

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/getfable/fable/logger"
	"github.com/getfable/fable/util"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch [flags] [dir]",
	Short:   "Recompile feature files whenever they change",
	Long:    "Watch a directory for feature file changes and recompile on every write.",
	Example: "  fable watch specs/",
	Run: func(cmd *cobra.Command, args []string) {
		dir := dirDefault
		if len(args) > 0 {
			dir = args[0]
		}
		if err := watchSpecs(dir); err != nil {
			logger.Fatalf("%s", err.Error())
		}
	},
	DisableAutoGenTag: true,
}

func init() {
	FableCmd.AddCommand(watchCmd)
}

func watchSpecs(dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	for _, d := range append([]string{dir}, util.FindAllNestedDirs(dir)...) {
		if err := watcher.Add(d); err != nil {
			logger.Warningf("Unable to watch %s: %s", d, err.Error())
		}
	}
	logger.Infof("Watching %s for feature file changes", dir)

	for {
		select {
		case event := <-watcher.Events:
			handleSpecEvent(event)
		case watchErr := <-watcher.Errors:
			logger.Errorf("Error while watching %s: %s", dir, watchErr.Error())
		}
	}
}

func handleSpecEvent(event fsnotify.Event) {
	file, err := filepath.Abs(event.Name)
	if err != nil {
		logger.Errorf("Failed to get abs file path for %s: %s", event.Name, err)
		return
	}
	if !util.IsSpec(file) {
		return
	}
	switch event.Op {
	case fsnotify.Create, fsnotify.Write:
		if err := compileSpec(file); err != nil {
			logger.CompileFailure(file, err)
		}
	}
}
