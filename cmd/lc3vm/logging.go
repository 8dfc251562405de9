package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// lineHandler is a minimal slog.Handler writing one compact line per
// record: "HH:MM:SS LEVEL message key=value ...". It exists so the CLI
// can log trap dispatch and halt without pulling in a structured-log
// backend the emulator has no use for.
type lineHandler struct {
	out   io.Writer
	mu    *sync.Mutex
	level slog.Level
}

func newLineHandler(out io.Writer, level slog.Level) *lineHandler {
	return &lineHandler{out: out, mu: &sync.Mutex{}, level: level}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	parts := []string{r.Time.Format("15:04:05"), r.Level.String(), r.Message}

	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, a.Key+"="+a.Value.String())
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, strings.Join(parts, " ")+"\n")
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &withAttrsHandler{parent: h, attrs: attrs}
}

func (h *lineHandler) WithGroup(_ string) slog.Handler {
	return h
}

// withAttrsHandler carries attributes bound via slog.Logger.With
// through to lineHandler.Handle without needing a generic attribute
// tree; the CLI only ever binds a handful of fixed fields.
type withAttrsHandler struct {
	parent *lineHandler
	attrs  []slog.Attr
}

func (h *withAttrsHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.parent.Enabled(ctx, level)
}

func (h *withAttrsHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(h.attrs...)
	return h.parent.Handle(ctx, r)
}

func (h *withAttrsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &withAttrsHandler{parent: h.parent, attrs: append(append([]slog.Attr{}, h.attrs...), attrs...)}
}

func (h *withAttrsHandler) WithGroup(name string) slog.Handler {
	return h.parent.WithGroup(name)
}

func newLogger(out io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(newLineHandler(out, level))
}
