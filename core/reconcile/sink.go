package reconcile

import (
	"fmt"

	"go.uber.org/zap"
)

// Sink receives human-readable outcome events from the engine. The surrounding
// layer decides whether and how to surface them.
type Sink interface {
	Success(res Result)
	Failure(res Result)
}

// Feedback renders the player-facing message for a result.
func Feedback(res Result) string {
	if res.Success {
		return fmt.Sprintf("Chest sorted! [mode: %s]", res.Mode)
	}
	if res.Diagnostic != nil {
		return "Sorting failed – " + res.Diagnostic.String()
	}
	return "Sorting failed – " + res.Reason
}

// LogSink writes outcome events to a zap logger, gated by a verbosity flag.
// Failures with a diagnostic are always logged as warnings.
type LogSink struct {
	logger  *zap.Logger
	verbose func() bool
}

// NewLogSink creates a sink that logs to l. verbose is consulted on every event
// so the flag can change at runtime; nil means quiet.
func NewLogSink(l *zap.Logger, verbose func() bool) *LogSink {
	if verbose == nil {
		verbose = func() bool { return false }
	}
	return &LogSink{logger: l, verbose: verbose}
}

// Success logs a verified sort when verbose output is on.
func (s *LogSink) Success(res Result) {
	if !s.verbose() {
		return
	}
	s.logger.Info(Feedback(res),
		zap.String("mode", string(res.Mode)),
		zap.Int("groups", res.Groups),
		zap.String("digest", res.AfterDigest),
	)
}

// Failure logs a soft or hard failure.
func (s *LogSink) Failure(res Result) {
	fields := []zap.Field{
		zap.String("mode", string(res.Mode)),
		zap.Bool("rolled_back", res.RolledBack),
	}
	if res.Err != nil {
		fields = append(fields, zap.Error(res.Err))
	}
	if res.Diagnostic != nil {
		fields = append(fields, zap.Any("deltas", res.Diagnostic.Deltas))
		s.logger.Warn(Feedback(res), fields...)
		return
	}
	if s.verbose() {
		s.logger.Info(Feedback(res), fields...)
	}
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Success(Result) {}
func (NopSink) Failure(Result) {}
