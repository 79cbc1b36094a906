package whenthen

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the barrier counters. A nil *metrics records nothing.
type metrics struct {
	created   prometheus.Counter
	armed     prometheus.Counter
	fired     prometheus.Counter
	actions   prometheus.Counter
	destroyed prometheus.Counter
}

func newMetrics(reg prometheus.Registerer, namespace string) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}

	counter := func(name, help string) (prometheus.Counter, error) {
		c := prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				if existing, ok := already.ExistingCollector.(prometheus.Counter); ok {
					return existing, nil
				}
			}
			return nil, err
		}
		return c, nil
	}

	m := &metrics{}
	var err error
	if m.created, err = counter("barriers_created_total", "Barriers created through a root."); err != nil {
		return nil, err
	}
	if m.armed, err = counter("barrier_arms_total", "Times a barrier subscribed to a full round of dependencies."); err != nil {
		return nil, err
	}
	if m.fired, err = counter("barrier_firings_total", "Rounds in which every dependency of a barrier occurred."); err != nil {
		return nil, err
	}
	if m.actions, err = counter("actions_executed_total", "Actions run by firing barriers."); err != nil {
		return nil, err
	}
	if m.destroyed, err = counter("barriers_destroyed_total", "Barriers torn down by root destruction."); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *metrics) barrierCreated() {
	if m != nil {
		m.created.Inc()
	}
}

func (m *metrics) barrierArmed() {
	if m != nil {
		m.armed.Inc()
	}
}

func (m *metrics) barrierFired(actions int) {
	if m != nil {
		m.fired.Inc()
		m.actions.Add(float64(actions))
	}
}

func (m *metrics) barrierDestroyed() {
	if m != nil {
		m.destroyed.Inc()
	}
}
