// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) for a command-line tool.
//
// # Run Correlation
//
// Each comparison run tags its log lines with a generated run_id. The
// WithRunID helper attaches the field once at startup, ensuring that the
// two file loads and the reconciliation of a single invocation can be
// correlated in aggregated logs.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log)
//	log.Info("Comparison started")
package logger
