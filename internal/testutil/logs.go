// Package testutil provides reusable helpers for package tests.
package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// Record is a captured log record with its attributes flattened.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// LogRecorder is a slog.Handler that keeps every record it handles.
type LogRecorder struct {
	mu      sync.Mutex
	records []Record
}

// NewLogger returns a logger writing into a fresh recorder.
func NewLogger() (*slog.Logger, *LogRecorder) {
	rec := &LogRecorder{}
	return slog.New(rec), rec
}

func (r *LogRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	attrs := make(map[string]string, rec.NumAttrs())
	rec.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})
	r.mu.Lock()
	r.records = append(r.records, Record{Level: rec.Level, Message: rec.Message, Attrs: attrs})
	r.mu.Unlock()
	return nil
}

func (r *LogRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *LogRecorder) WithGroup(string) slog.Handler      { return r }

// Records returns the records handled so far.
func (r *LogRecorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Record(nil), r.records...)
}

// Warnings returns the records at warn level.
func (r *LogRecorder) Warnings() []Record {
	var out []Record
	for _, rec := range r.Records() {
		if rec.Level == slog.LevelWarn {
			out = append(out, rec)
		}
	}
	return out
}
