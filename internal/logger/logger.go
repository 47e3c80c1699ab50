// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

// Package logger holds the process-wide structured logger. The level is
// seeded from DRAFTFORGE_LOG_LEVEL and can be changed at runtime.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the shared slog instance used across the codebase.
var Logger *slog.Logger

var level = new(slog.LevelVar)

func init() {
	level.Set(parseLevelFromEnv())
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// parseLevelFromEnv maps DRAFTFORGE_LOG_LEVEL to a slog level.
// Empty or unrecognized values fall back to info.
func parseLevelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv("DRAFTFORGE_LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetLevel adjusts the minimum logged level at runtime.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetOutput redirects log output to w, switching to the JSON handler when
// jsonOut is set. Intended for tests and for the --log-json flag.
func SetOutput(w io.Writer, jsonOut bool) {
	opts := &slog.HandlerOptions{Level: level}
	if jsonOut {
		Logger = slog.New(slog.NewJSONHandler(w, opts))
		return
	}
	Logger = slog.New(slog.NewTextHandler(w, opts))
}
