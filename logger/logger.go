/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getfable/fable/config"
	"github.com/getgauge/common"
	"github.com/natefinch/lumberjack"
	"github.com/op/go-logging"
)

const (
	logsDirectoryKey = "logs_directory"
	logsDir          = "logs"
	// FableLogFileName is the name of the rotating log file.
	FableLogFileName = "fable.log"
)

// FableLog is the logger for the compile lifecycle.
var FableLog = logging.MustGetLogger("fable")

var fileLogFormat = logging.MustStringFormatter("%{time:15:04:05.000} %{message}")

var level logging.Level

// Infof logs INFO messages and echoes them to the console.
func Infof(msg string, args ...interface{}) {
	FableLog.Infof(msg, args...)
	fmt.Println(fmt.Sprintf(msg, args...))
}

// Errorf logs ERROR messages and echoes them to the console.
func Errorf(msg string, args ...interface{}) {
	FableLog.Errorf(msg, args...)
	fmt.Println(fmt.Sprintf(msg, args...))
}

// Warningf logs WARNING messages and echoes them to the console.
func Warningf(msg string, args ...interface{}) {
	FableLog.Warningf(msg, args...)
	fmt.Println(fmt.Sprintf(msg, args...))
}

// Fatalf logs CRITICAL messages and exits.
func Fatalf(msg string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(msg, args...))
	FableLog.Fatalf(msg, args...)
}

// Debugf logs DEBUG messages, echoing only at debug level.
func Debugf(msg string, args ...interface{}) {
	FableLog.Debugf(msg, args...)
	if level == logging.DEBUG {
		fmt.Println(fmt.Sprintf(msg, args...))
	}
}

// Initialize sets up the rotating file backend at the given level.
func Initialize(logLevel string) {
	level = loggingLevel(logLevel)
	initFileLogger(FableLogFileName, FableLog)
}

func GetLogFilePath(logFileName string) string {
	customLogsDir := os.Getenv(logsDirectoryKey)
	if customLogsDir == "" {
		return filepath.Join(logsDir, logFileName)
	}
	return filepath.Join(customLogsDir, logFileName)
}

func initFileLogger(logFileName string, fileLogger *logging.Logger) {
	backend := createFileLogger(GetLogFilePath(logFileName), 10)
	fileFormatter := logging.NewBackendFormatter(backend, fileLogFormat)
	fileLoggerLeveled := logging.AddModuleLevel(fileFormatter)
	fileLoggerLeveled.SetLevel(level, "")
	fileLogger.SetBackend(fileLoggerLeveled)
}

func createFileLogger(name string, size int) logging.Backend {
	return logging.NewLogBackend(&lumberjack.Logger{
		Filename:   logFile(name),
		MaxSize:    size, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}, "", 0)
}

func logFile(fileName string) string {
	if filepath.IsAbs(fileName) {
		return fileName
	}
	if config.ProjectRoot != "" {
		return filepath.Join(config.ProjectRoot, fileName)
	}
	home, err := common.GetGaugeHomeDirectory()
	if err != nil {
		return fileName
	}
	return filepath.Join(home, fileName)
}

func loggingLevel(logLevel string) logging.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return logging.DEBUG
	case "warning":
		return logging.WARNING
	case "error":
		return logging.ERROR
	}
	return logging.INFO
}

// HandleWarningMessages logs multiple messages in WARNING mode.
func HandleWarningMessages(warnings []string) {
	for _, warning := range warnings {
		Warningf("%s", warning)
	}
}
