/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/getgauge/common"
)

// AcceptedExtensions are the feature file extensions fable compiles.
var AcceptedExtensions = map[string]bool{
	".fable":   true,
	".feature": true,
}

// IsValidSpecExtension checks if the path has a feature file extension.
func IsValidSpecExtension(path string) bool {
	return AcceptedExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsSpec returns true for feature files.
func IsSpec(path string) bool {
	return IsValidSpecExtension(path)
}

// FindSpecFilesIn finds all feature files under the given directory.
func FindSpecFilesIn(dir string) []string {
	absRoot, _ := filepath.Abs(dir)
	return common.FindFilesInDir(absRoot, IsValidSpecExtension, func(path string, f os.FileInfo) bool {
		return false
	})
}

// CollectSpecFiles expands the given paths into the feature files they
// name: directories are searched recursively, files are kept as is.
func CollectSpecFiles(paths []string) []string {
	var files []string
	for _, p := range paths {
		if IsDir(p) {
			files = append(files, FindSpecFilesIn(p)...)
		} else if IsValidSpecExtension(p) {
			files = append(files, p)
		}
	}
	return files
}

func IsDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

// ReadFileContents returns the text of a feature file.
func ReadFileContents(file string) (string, error) {
	return common.ReadFileContents(file)
}

// SaveFile writes generated content, creating parent directories.
func SaveFile(filePath, contents string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), common.NewDirectoryPermissions); err != nil {
		return err
	}
	return common.SaveFile(filePath, contents, false)
}

// FindAllNestedDirs lists every directory below dir.
func FindAllNestedDirs(dir string) []string {
	var nestedDirs []string
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && info.IsDir() && path != dir {
			nestedDirs = append(nestedDirs, path)
		}
		return nil
	})
	return nestedDirs
}
