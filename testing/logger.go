// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package testing

import (
	"fmt"
	"strings"
	"sync"

	"github.com/juju/loggo/v2"
)

// NoopLogger is a logger that does nothing.
type NoopLogger struct{}

func (NoopLogger) Criticalf(string, ...any) {}
func (NoopLogger) Errorf(string, ...any)    {}
func (NoopLogger) Warningf(string, ...any)  {}
func (NoopLogger) Infof(string, ...any)     {}
func (NoopLogger) Debugf(string, ...any)    {}
func (NoopLogger) Tracef(string, ...any)    {}

// CheckLog is an interface that can be used to log messages to a
// *testing.T or *check.C.
type CheckLog interface {
	Logf(string, ...any)
}

// CheckLogger is a logger that logs to a *testing.T or *check.C.
type CheckLogger struct {
	Log CheckLog
}

// NewCheckLogger returns a CheckLogger that logs to the given CheckLog.
func NewCheckLogger(log CheckLog) CheckLogger {
	return CheckLogger{Log: log}
}

func (c CheckLogger) Criticalf(msg string, args ...any) {
	c.Logf(loggo.CRITICAL, msg, args...)
}
func (c CheckLogger) Errorf(msg string, args ...any) {
	c.Logf(loggo.ERROR, msg, args...)
}
func (c CheckLogger) Warningf(msg string, args ...any) {
	c.Logf(loggo.WARNING, msg, args...)
}
func (c CheckLogger) Infof(msg string, args ...any) {
	c.Logf(loggo.INFO, msg, args...)
}
func (c CheckLogger) Debugf(msg string, args ...any) {
	c.Logf(loggo.DEBUG, msg, args...)
}
func (c CheckLogger) Tracef(msg string, args ...any) {
	c.Logf(loggo.TRACE, msg, args...)
}
func (c CheckLogger) Logf(level loggo.Level, msg string, args ...any) {
	c.Log.Logf(fmt.Sprintf("%s: %s", level.String(), msg), args...)
}

// LogRecord is a single message captured by a RecordingLogger.
type LogRecord struct {
	Level   loggo.Level
	Message string
}

// RecordingLogger keeps every formatted message so tests can assert on
// what a component logged.
type RecordingLogger struct {
	mu      sync.Mutex
	records []LogRecord
}

func (r *RecordingLogger) Criticalf(msg string, args ...any) {
	r.Logf(loggo.CRITICAL, msg, args...)
}
func (r *RecordingLogger) Errorf(msg string, args ...any) {
	r.Logf(loggo.ERROR, msg, args...)
}
func (r *RecordingLogger) Warningf(msg string, args ...any) {
	r.Logf(loggo.WARNING, msg, args...)
}
func (r *RecordingLogger) Infof(msg string, args ...any) {
	r.Logf(loggo.INFO, msg, args...)
}
func (r *RecordingLogger) Debugf(msg string, args ...any) {
	r.Logf(loggo.DEBUG, msg, args...)
}
func (r *RecordingLogger) Tracef(msg string, args ...any) {
	r.Logf(loggo.TRACE, msg, args...)
}
func (r *RecordingLogger) Logf(level loggo.Level, msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, LogRecord{
		Level:   level,
		Message: fmt.Sprintf(msg, args...),
	})
}

// Records returns a copy of everything logged so far.
func (r *RecordingLogger) Records() []LogRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogRecord(nil), r.records...)
}

// Messages returns the messages logged at the given level.
func (r *RecordingLogger) Messages(level loggo.Level) []string {
	var messages []string
	for _, record := range r.Records() {
		if record.Level == level {
			messages = append(messages, record.Message)
		}
	}
	return messages
}

// Contains reports whether any message at level contains substr.
func (r *RecordingLogger) Contains(level loggo.Level, substr string) bool {
	for _, msg := range r.Messages(level) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}
