package whenthen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/creastat/infra/telemetry"
	"github.com/creastat/whenthen/core"
)

// Barrier waits for every one of its dependency events and then runs its
// actions. It re-arms after each firing, so it fires once per full round.
type Barrier struct {
	label    string
	root     *Root
	source   core.Dispatcher
	target   core.Dispatcher
	original []string
	current  []string
	actions  []action
	state    core.State
	fired    uint64
	logger   telemetry.Logger
	metrics  *metrics
}

// newBarrier creates an unarmed barrier listening on the root's dispatcher
func newBarrier(root *Root, id uint64, names []string) *Barrier {
	b := &Barrier{
		root:     root,
		source:   root.dispatcher,
		target:   root.dispatcher,
		original: names,
		state:    core.StateUnregistered,
		logger:   root.logger,
		metrics:  root.metrics,
	}
	b.label = fmt.Sprintf("barrier#%d(%s)", id, strings.Join(names, ","))
	return b
}

// String identifies the barrier in logs and errors
func (b *Barrier) String() string {
	return b.label
}

// State returns the lifecycle state
func (b *Barrier) State() core.State {
	return b.state
}

// Dependencies returns the declared dependency names, duplicates included
func (b *Barrier) Dependencies() []string {
	return slices.Clone(b.original)
}

// Pending returns the dependencies still outstanding in the current round
func (b *Barrier) Pending() []string {
	return slices.Clone(b.current)
}

// Fired returns the number of completed rounds
func (b *Barrier) Fired() uint64 {
	return b.fired
}

// Then appends actions to run when every dependency has occurred.
// Strings are relayed as events on the barrier's dispatcher, functions are
// called directly. The first successful call subscribes the barrier.
func (b *Barrier) Then(actions ...any) (*Chain, error) {
	return b.then(b.target, actions)
}

// Have returns a view whose Then relays string actions on dispatcher instead
// of the dispatcher the barrier listens on
func (b *Barrier) Have(dispatcher core.Dispatcher) (*Relay, error) {
	if b.state == core.StateDestroyed {
		return nil, &LifecycleError{Op: "have", Instance: b.String()}
	}
	if err := checkDispatcher(dispatcher); err != nil {
		return nil, err
	}

	return &Relay{barrier: b, target: dispatcher}, nil
}

func (b *Barrier) then(target core.Dispatcher, input []any) (*Chain, error) {
	if b.state == core.StateDestroyed {
		return nil, &LifecycleError{Op: "then", Instance: b.String()}
	}

	actions, err := parseActions("then", input, target)
	if err != nil {
		return nil, err
	}

	b.actions = append(b.actions, actions...)

	// Subscribing is deferred until the action list has something in it
	if b.state == core.StateUnregistered {
		b.arm()
	}

	return &Chain{root: b.root}, nil
}

// arm starts a fresh round
func (b *Barrier) arm() {
	b.state = core.StateArmed
	b.current = slices.Clone(b.original)

	seen := make(map[string]bool, len(b.original))
	for _, name := range b.original {
		if seen[name] {
			continue
		}
		seen[name] = true
		b.listen(name)
	}

	b.metrics.barrierArmed()
	b.logger.Debug("barrier armed",
		telemetry.String("barrier", b.label),
		telemetry.Int("round", int(b.fired)+1))
}

// listen waits for one occurrence of name. Repeated names are listened for
// one occurrence at a time, so each emission consumes exactly one of them.
func (b *Barrier) listen(name string) {
	b.source.Once(name, func(args ...any) {
		b.handle(name, args)
	}, b)
}

func (b *Barrier) handle(name string, args []any) {
	if b.state != core.StateArmed {
		return
	}

	idx := slices.Index(b.current, name)
	if idx < 0 {
		return
	}
	b.current = slices.Delete(b.current, idx, idx+1)

	b.logger.Trace("dependency received",
		telemetry.String("barrier", b.label),
		telemetry.String("dependency", name),
		telemetry.Int("remaining", len(b.current)))

	if len(b.current) > 0 {
		if slices.Contains(b.current, name) {
			b.listen(name)
		}
		return
	}

	b.fire(args)
}

// fire runs the actions of a completed round and re-arms
func (b *Barrier) fire(args []any) {
	// Payloads of several dependencies cannot be merged into one call
	if len(b.original) > 1 {
		args = nil
	}

	actions := b.actions
	b.fired++
	b.metrics.barrierFired(len(actions))
	b.logger.Debug("barrier fired",
		telemetry.String("barrier", b.label),
		telemetry.Int("round", int(b.fired)),
		telemetry.Int("actions", len(actions)))

	for _, a := range actions {
		a.run(args)
	}

	// An action may have torn the root down
	if b.state == core.StateDestroyed {
		return
	}
	b.arm()
}

// destroy drops every subscription of the barrier and releases its state
func (b *Barrier) destroy() {
	if b.state == core.StateDestroyed {
		return
	}

	b.source.Off("", b)
	b.original = nil
	b.current = nil
	b.actions = nil
	b.state = core.StateDestroyed

	b.metrics.barrierDestroyed()
	b.logger.Debug("barrier destroyed", telemetry.String("barrier", b.label))
}
