// Package logger provides structured logging backed by Uber's zap.
//
// Entries are JSON with ISO8601 timestamps, the caller, and "pid" and
// "service" fields on every line.
//
// # Basic Usage
//
// Create a logger directly:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		EnableTracing: true,
//		ServiceName:   "search-api",
//	})
//	log.Info("started", nil, nil)
//	log.Error("reindex failed", err, map[string]interface{}{"collection": "docs"})
//
// Every method takes a message, an optional error and optional field maps.
// Level is one of Debug, Info, Warning and Error; anything else means Info.
//
// # Trace Correlation
//
// The *WithContext variants add "trace_id" and "span_id" when tracing is
// enabled and the context carries a valid OpenTelemetry span, which is how
// milvus request logs are correlated with their client spans:
//
//	log.WarnWithContext(ctx, "slow search", nil, map[string]interface{}{"ms": 830})
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config { return logger.Config{Level: logger.Debug} }),
//	)
//
// The module provides *LoggerClient and the Logger interface, and flushes
// buffered entries on stop.
//
// All methods are safe for concurrent use.
package logger
