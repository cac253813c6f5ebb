// Package logger builds *slog.Logger values from functional options and
// provides helper attribute constructors with consistent key names.
//
// New selects slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and, when extractors are registered, wraps it in ContextHandler,
// which runs every ContextExtractor on each record.
//
// # Usage
//
//	import "github.com/dmitrymomot/ophite/pkg/logger"
//
//	level, err := logger.ParseLevel(settings.LogLevel)
//	if err != nil {
//	    return err
//	}
//	log := logger.New(
//	    logger.WithLevel(level),
//	    logger.WithComponent("console"),
//	)
//	log.Debug("rejected input", logger.Input(line), logger.Kind(err))
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel sets the minimum level; WithDebug is text at debug level.
//   - WithAttr and WithComponent attach static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from context.
//
// The default logger writes text at info level to os.Stderr. Discard returns
// a logger that drops everything.
//
// Error and Kind return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
