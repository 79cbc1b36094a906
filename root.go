package whenthen

import (
	"github.com/creastat/infra/telemetry"
	"github.com/creastat/whenthen/core"
)

// Root creates barriers bound to one dispatcher and tears them all down at once
type Root struct {
	dispatcher core.Dispatcher
	logger     telemetry.Logger
	metrics    *metrics
	barriers   []*Barrier
	nextID     uint64
	closed     bool
}

// New creates a root registry on dispatcher.
// A nil config is replaced by core.DefaultConfig().
func New(dispatcher core.Dispatcher, config *core.Config) (*Root, error) {
	if err := checkDispatcher(dispatcher); err != nil {
		return nil, err
	}

	if config == nil {
		config = core.DefaultConfig()
	}

	namespace := config.Namespace
	if namespace == "" {
		namespace = core.DefaultNamespace
	}

	m, err := newMetrics(config.Registerer, namespace)
	if err != nil {
		return nil, &ConfigurationError{
			Message: "failed to register metrics",
			Details: err.Error(),
			Err:     err,
		}
	}

	logger := config.Logger
	if logger == nil {
		logger = telemetry.New(telemetry.Config{Level: "error"})
	}
	logger = logger.WithModule("whenthen")

	return &Root{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    m,
	}, nil
}

// When declares a barrier over the given event names. Arguments may be
// strings or lists of strings; repeated names must each occur per round.
// The barrier does not subscribe until its first Then.
func (r *Root) When(names ...any) (*Barrier, error) {
	if r.closed {
		return nil, &LifecycleError{Op: "when", Instance: "root"}
	}

	parsed, err := parseNames("when", names)
	if err != nil {
		return nil, err
	}

	r.nextID++
	b := newBarrier(r, r.nextID, parsed)
	r.barriers = append(r.barriers, b)

	r.metrics.barrierCreated()
	b.logger.Debug("barrier created",
		telemetry.String("barrier", b.label),
		telemetry.Int("dependencies", len(parsed)))

	return b, nil
}

// Destroy unsubscribes and invalidates every barrier created through the
// root. The root cannot be used afterwards, Destroy included.
func (r *Root) Destroy() error {
	if r.closed {
		return &LifecycleError{Op: "destroy", Instance: "root"}
	}

	for _, b := range r.barriers {
		b.destroy()
	}

	r.logger.Debug("root destroyed", telemetry.Int("barriers", len(r.barriers)))

	r.barriers = nil
	r.closed = true
	return nil
}

// Barriers returns the barriers created through the root
func (r *Root) Barriers() []*Barrier {
	out := make([]*Barrier, len(r.barriers))
	copy(out, r.barriers)
	return out
}

// Closed reports whether Destroy has been called
func (r *Root) Closed() bool {
	return r.closed
}
