package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor returns an attribute carried by ctx, if any.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextHandler adds attributes taken from the record context before
// passing the record on.
type ContextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next. Nil extractors are ignored; with none left
// next is returned unchanged.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	extractors = slices.DeleteFunc(slices.Clone(extractors), func(ex ContextExtractor) bool {
		return ex == nil
	})
	if len(extractors) == 0 {
		return next
	}
	return &ContextHandler{Handler: next, extractors: extractors}
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
