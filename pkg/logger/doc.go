// Package logger provides structured JSON logging for the ldlink plugin
// and its collaborators.
//
// It wraps Uber's Zap logger behind a small fixed-signature API so that
// every package in this module can declare its own narrow Logger
// interface and be tested with doubles:
//
//	log := logger.NewLoggerClient(logger.Config{Level: "info"})
//
//	log.Info("resolved population", nil, map[string]interface{}{
//		"population": "1000GENOMES:phase_3:CEU",
//	})
//
// The log level is configured via the ZAP_LOGGER_LEVEL environment
// variable (debug, info, warning, error).
//
// FX Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		// ... other modules
//	)
//
// The fx module registers an OnStop hook that flushes buffered entries
// on shutdown.
//
// All methods are safe for concurrent use.
package logger
