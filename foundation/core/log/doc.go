// Package log provides structured, leveled logging for complexkit.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with persistent context fields, JSON and text
//              output and integration with the foundation error type. Loggers
//              are immutable from the caller's point of view: every With*
//              method returns a configured copy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//	    Level:  log.LevelDebug,
//	    Format: log.FormatText,
//	    Output: os.Stderr,
//	    Name:   "calc",
//	})
//	logger.Info("evaluated", log.Fields{"op": "times", "result": "(-1.0 + 0.0i)"})
//	logger.LogError(err)
package log
