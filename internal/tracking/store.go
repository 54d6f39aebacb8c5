package tracking

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the underlying event storage cannot be
// read or written.
var ErrUnavailable = errors.New("event store unavailable")

// MaxEvents is the retention cap. Stores drop the oldest events first once
// the cap is exceeded.
const MaxEvents = 200_000

// Store defines the interface for persisting tracking events.
type Store interface {
	// Append adds an event to the end of the log and enforces the
	// retention cap. An event with a zero timestamp is stamped with the
	// current time.
	Append(ctx context.Context, event Event) error

	// All returns every retained event in insertion order. Filtering and
	// aggregation are the caller's job.
	All(ctx context.Context) ([]Event, error)
}
