package nakama

import (
	"context"
	"log/slog"

	"github.com/heroiclabs/nakama-common/runtime"
)

// runtimeHandler forwards slog records to the Nakama runtime logger, turning
// attributes into logger fields.
type runtimeHandler struct {
	logger runtime.Logger
	level  slog.Leveler
	attrs  []slog.Attr
	prefix string
}

// newSlogLogger wraps a runtime.Logger so app code can log through slog.
func newSlogLogger(logger runtime.Logger, level slog.Leveler) *slog.Logger {
	return slog.New(&runtimeHandler{logger: logger, level: level})
}

func (h *runtimeHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *runtimeHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]interface{}, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		addField(fields, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addField(fields, h.prefix, a)
		return true
	})

	logger := h.logger
	if len(fields) > 0 {
		logger = logger.WithFields(fields)
	}
	switch {
	case r.Level >= slog.LevelError:
		logger.Error("%s", r.Message)
	case r.Level >= slog.LevelWarn:
		logger.Warn("%s", r.Message)
	case r.Level >= slog.LevelInfo:
		logger.Info("%s", r.Message)
	default:
		logger.Debug("%s", r.Message)
	}
	return nil
}

func (h *runtimeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return &next
}

func (h *runtimeHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func addField(fields map[string]interface{}, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix += a.Key + "."
		}
		for _, ga := range v.Group() {
			addField(fields, groupPrefix, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	fields[prefix+a.Key] = v.Any()
}
