package jointstate

import (
	"maps"

	"github.com/rs/zerolog"
)

// Option configures New. Options are applied in order; later ones win.
type Option func(*options)

type options struct {
	force  ForceMap       // nil ⇒ unconstrained
	logger zerolog.Logger // zerolog.Nop() by default
}

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithForce pins entries of the combined log-scale vector. Keys are global
// indices; the map is copied.
func WithForce(force ForceMap) Option {
	return func(o *options) {
		if len(force) == 0 {
			o.force = nil
			return
		}
		o.force = maps.Clone(force)
	}
}

// WithLogger sets the structured logger used for Debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
