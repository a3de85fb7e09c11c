package memory

import "time"

// Clock returns the current time. Stores call it for created and updated timestamps.
type Clock func() time.Time

// Option configures an in-memory store.
type Option func(*options)

type options struct {
	now Clock
}

// WithClock overrides the time source used for timestamps.
func WithClock(now Clock) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
