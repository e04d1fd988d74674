package ports

import "context"

// LineSource streams raw sentence lines into the pipeline. Stream sends
// every relevant line on out and returns once the input is exhausted or the
// context is cancelled; the caller owns the channel and closes it after
// Stream returns.
type LineSource interface {
	Stream(ctx context.Context, out chan<- string) error
	Name() string
}
