// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hookcontext

import (
	"fmt"

	"github.com/juju/loggo/v2"
)

// UnitLogger sends a message to the unit's log on the controller.
type UnitLogger interface {
	Log(level, message string) error
}

// LogWriter is a loggo.Writer that forwards entries to juju-log, so they
// show up in `juju debug-log` for the unit.
type LogWriter struct {
	logger UnitLogger
}

var _ loggo.Writer = (*LogWriter)(nil)

// NewLogWriter returns a LogWriter that sends entries to logger.
func NewLogWriter(logger UnitLogger) *LogWriter {
	return &LogWriter{logger: logger}
}

// Write is part of the loggo.Writer interface. Failures to forward are
// dropped; the entry is still written by the other registered writers.
func (w *LogWriter) Write(entry loggo.Entry) {
	level := entry.Level.String()
	if entry.Level == loggo.CRITICAL {
		level = loggo.ERROR.String()
	}
	message := entry.Message
	if entry.Module != "" {
		message = fmt.Sprintf("%s: %s", entry.Module, entry.Message)
	}
	_ = w.logger.Log(level, message)
}
