// Package logging builds the process logger: leveled, timestamped slog output
// plus an in-memory history of every emitted record.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Options controls the logger output.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// Entry is one recorded log line.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   string
}

// History keeps every record handled by the logger, in emission order.
type History struct {
	mu      sync.Mutex
	entries []Entry
}

// Entries returns a copy of the recorded entries.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *History) add(e Entry) {
	h.mu.Lock()
	h.entries = append(h.entries, e)
	h.mu.Unlock()
}

// New creates a logger writing to w and the history that records its output.
func New(w io.Writer, opts Options) (*slog.Logger, *History, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var next slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "text":
		next = slog.NewTextHandler(w, handlerOpts)
	case "json":
		next = slog.NewJSONHandler(w, handlerOpts)
	default:
		return nil, nil, fmt.Errorf("unknown log format %q (want text or json)", opts.Format)
	}

	history := &History{}
	return slog.New(&historyHandler{next: next, history: history}), history, nil
}

// Discard returns a logger that drops everything, for tests and quiet runs.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel parses a level name; empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// historyHandler records every enabled record before passing it on.
type historyHandler struct {
	next    slog.Handler
	history *History
	// attrs are pre-rendered key=value pairs from WithAttrs.
	attrs []string
	// prefix is the open group path, e.g. "rocket.stage.".
	prefix string
}

func (h *historyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *historyHandler) Handle(ctx context.Context, r slog.Record) error {
	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	parts = append(parts, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, a)
		return true
	})

	h.history.add(Entry{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   strings.Join(parts, " "),
	})
	return h.next.Handle(ctx, r)
}

func (h *historyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]string, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = appendAttr(merged, h.prefix, a)
	}
	return &historyHandler{next: h.next.WithAttrs(attrs), history: h.history, attrs: merged, prefix: h.prefix}
}

func (h *historyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &historyHandler{next: h.next.WithGroup(name), history: h.history, attrs: h.attrs, prefix: h.prefix + name + "."}
}

// appendAttr renders a as key=value pairs, flattening groups into dotted
// keys the way the text handler does.
func appendAttr(parts []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return parts
	}
	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			parts = appendAttr(parts, groupPrefix, ga)
		}
		return parts
	}
	return append(parts, prefix+a.Key+"="+a.Value.String())
}
