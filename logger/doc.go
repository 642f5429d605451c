// Package logger provides structured logging for the analyzer using zerolog.
//
// It supports JSON and console output formats, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	log:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.WithComponent("apiclient")
//	log.Info("request completed", logger.Fields("status", 200))
package logger
