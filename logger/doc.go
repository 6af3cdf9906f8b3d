// Package logger provides structured logging for dagkit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("pipeline")
//	log.Info("run completed", logger.Fields("tasks", 7))
package logger
