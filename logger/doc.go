// Package logger provides structured logging for pariter tools and the
// reference bridge using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. Producers never log;
// only code running between leaves (the bridge, the CLI) does.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg, "pariter-bench").WithComponent("bridge")
//	log.Debug("drive finished", logger.Fields(logger.FieldSplits, 12))
package logger
