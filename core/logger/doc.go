// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Dataset diagnostics are reported through it:
// data-quality problems (missing image, missing title, stray image file) are
// logged at WARN, informational notes at INFO.
//
// # Run Correlation
//
// Each CLI invocation generates a run ID. The WithRunID helper attaches it to
// the logger so that every diagnostic of a verification pass can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Warn("Title not found", zap.String("region", "faro"))
package logger
