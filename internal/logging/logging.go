// Package logging writes structured logs as one JSON object per line.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Logger serializes entries to w. It is safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
}

// New returns a Logger writing to w with timestamps in loc (UTC when nil).
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc}
}

// Stdout returns a Logger writing to standard output.
func Stdout(loc *time.Location) *Logger {
	return New(os.Stdout, loc)
}

// Discard returns a Logger that drops every entry.
func Discard() *Logger {
	return New(io.Discard, time.UTC)
}

// Log writes data with a "ts" field added. When "level" is missing it is derived
// from "status": "error" maps to level error, anything else to info.
func (l *Logger) Log(data map[string]any) {
	entry := make(map[string]any, len(data)+2)
	for k, v := range data {
		entry[k] = v
	}
	entry["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	if _, ok := entry["level"]; !ok {
		if entry["status"] == "error" {
			entry["level"] = "error"
		} else {
			entry["level"] = "info"
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}

// Error logs msg at error level with err attached.
func (l *Logger) Error(component, msg string, err error) {
	l.Log(map[string]any{
		"level":     "error",
		"component": component,
		"msg":       msg,
		"error":     err.Error(),
	})
}
