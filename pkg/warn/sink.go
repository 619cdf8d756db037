// Package warn implements the evaluator's warning side channel (spec.md
// §6, "Warning sink"). Arithmetic type mismatches and non-boolean `if`
// conditions don't fail evaluation — they resolve to Null (or false) and
// emit a warning here instead, so a caller can still diagnose why a cell
// came back empty without the evaluator itself owning a logger.
package warn

import "github.com/sirupsen/logrus"

// Record is one suppressed-failure notice.
type Record struct {
	Type    string
	Message string
}

// Sink receives warning Records. Implementations must be safe for
// concurrent use — host-function calls may invoke the evaluator from
// multiple goroutines (spec.md §5).
type Sink interface {
	Warn(Record)
}

// Discard is a Sink that drops every record; useful in tests that don't
// care about the warning channel.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Warn(Record) {}

// LogrusSink adapts a *logrus.Logger into a Sink, emitting each record as
// a structured warning with "type" and "message" fields.
type LogrusSink struct {
	Logger *logrus.Logger
}

// NewLogrusSink builds a LogrusSink. A nil logger falls back to
// logrus.StandardLogger().
func NewLogrusSink(logger *logrus.Logger) *LogrusSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusSink{Logger: logger}
}

func (s *LogrusSink) Warn(r Record) {
	s.Logger.WithFields(logrus.Fields{
		"type":    r.Type,
		"message": r.Message,
	}).Warn("feel: suppressed evaluation failure")
}
