// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production).
//
// # Context Awareness
//
// Two helpers attach correlation fields:
//   - WithRayID extracts the RayID of a Fiber request (serve command).
//   - WithRun tags every line of a fetch/cascade run with its run_id.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRun(log, runID)
//	log.Info("Run started")
package logger
