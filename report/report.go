// Package report delivers safety reports for messages rejected by the
// content policy filter. Delivery is out-of-band: the engine fires a report
// asynchronously and a delivery failure never blocks or reverses the
// rejection itself.
package report

import "context"

// Reporter receives the offending text of a rejected message.
type Reporter interface {
	Report(ctx context.Context, text string) error
}

// Func adapts a plain function to the Reporter interface.
type Func func(ctx context.Context, text string) error

// Report implements Reporter.
func (f Func) Report(ctx context.Context, text string) error {
	return f(ctx, text)
}
