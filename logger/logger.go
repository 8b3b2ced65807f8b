// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

// Package logger configures the process-wide zap logger used by the mapping
// engine for fallback diagnostics, and bridges it to logr for injection.
package logger

import (
	"os"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Initialize creates and configures the global logger at info level.
// If UNSTRUCTURED_LOGS is set to true (or unset), it outputs plain log
// messages with only time and level; otherwise it produces structured
// JSON logs suitable for production.
func Initialize() {
	InitializeWithLevel(zapcore.InfoLevel)
}

// InitializeWithLevel creates and configures the global logger at the given
// minimum level. Absent-path and default-fallback diagnostics are emitted at
// debug level, so pass zapcore.DebugLevel to see them.
func InitializeWithLevel(level zapcore.Level) {
	var config zap.Config
	if unstructuredLogs() {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	}

	config.Level = zap.NewAtomicLevelAt(level)

	zap.ReplaceGlobals(zap.Must(config.Build()))
}

// NewLogr returns a logr.Logger backed by the global zap logger. This is the
// default diagnostics sink for engine components that accept an injected
// logger.
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

func unstructuredLogs() bool {
	unstructured, err := strconv.ParseBool(os.Getenv("UNSTRUCTURED_LOGS"))
	if err != nil {
		// env var unset or empty: default to unstructured output
		return true
	}
	return unstructured
}
