package report

import (
	"context"
	"log/slog"
)

// LogReporter writes reports to the structured log. It is the default sink
// for deployments that have no feedback table wired up yet.
type LogReporter struct {
	log *slog.Logger
}

// NewLogReporter returns a reporter logging through l, or slog.Default when
// l is nil.
func NewLogReporter(l *slog.Logger) *LogReporter {
	if l == nil {
		l = slog.Default()
	}
	return &LogReporter{log: l}
}

// Report implements Reporter.
func (r *LogReporter) Report(ctx context.Context, text string) error {
	r.log.WarnContext(ctx, "safety report", "message", text)
	return nil
}

// Compile-time check that LogReporter implements Reporter
var _ Reporter = (*LogReporter)(nil)
