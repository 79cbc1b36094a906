// Package emitter provides an in-process event dispatcher with owner-tagged
// subscriptions. It satisfies core.Dispatcher and is the dispatcher barriers
// are usually built on.
package emitter

import (
	"slices"
	"sync"

	"github.com/creastat/whenthen/core"
)

// listener is a single subscription
type listener struct {
	event   string
	handler core.Handler
	owner   any
	once    bool
	removed bool
}

// Emitter registers handlers and emits events to them synchronously.
// It is safe for concurrent use; handlers run outside the lock so they may
// emit, subscribe and unsubscribe themselves.
type Emitter struct {
	mu        sync.RWMutex
	listeners map[string][]*listener
}

var _ core.Dispatcher = (*Emitter)(nil)

// New creates an empty emitter
func New() *Emitter {
	return &Emitter{
		listeners: make(map[string][]*listener),
	}
}

// On subscribes handler to every emission of event
func (e *Emitter) On(event string, handler core.Handler, owner any) {
	e.add(event, handler, owner, false)
}

// Once subscribes handler to the next emission of event
func (e *Emitter) Once(event string, handler core.Handler, owner any) {
	e.add(event, handler, owner, true)
}

func (e *Emitter) add(event string, handler core.Handler, owner any, once bool) {
	if handler == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.listeners[event] = append(e.listeners[event], &listener{
		event:   event,
		handler: handler,
		owner:   owner,
		once:    once,
	})
}

// Off removes the subscriptions matching event and owner.
// An empty event matches all events, a nil owner matches all owners.
func (e *Emitter) Off(event string, owner any) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for name, list := range e.listeners {
		if event != "" && name != event {
			continue
		}

		kept := list[:0]
		for _, l := range list {
			if owner == nil || l.owner == owner {
				l.removed = true
				continue
			}
			kept = append(kept, l)
		}

		if len(kept) == 0 {
			delete(e.listeners, name)
			continue
		}
		e.listeners[name] = kept
	}
}

// Trigger calls every current subscriber of event in subscription order.
// Subscribers added during the emission are not called by it.
func (e *Emitter) Trigger(event string, args ...any) {
	e.mu.RLock()
	// Off compacts listener slices in place; iterate a copy
	snapshot := slices.Clone(e.listeners[event])
	e.mu.RUnlock()

	for _, l := range snapshot {
		if !e.claim(l) {
			continue
		}
		l.handler(args...)
	}
}

// claim reports whether l may still run and unlinks it if it is one-shot
func (e *Emitter) claim(l *listener) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if l.removed {
		return false
	}

	if l.once {
		l.removed = true
		e.unlink(l)
	}

	return true
}

func (e *Emitter) unlink(target *listener) {
	list := e.listeners[target.event]
	idx := slices.Index(list, target)
	if idx < 0 {
		return
	}

	list = slices.Delete(list, idx, idx+1)
	if len(list) == 0 {
		delete(e.listeners, target.event)
		return
	}
	e.listeners[target.event] = list
}

// ListenerCount returns the number of subscriptions for event.
// An empty event counts the subscriptions of all events.
func (e *Emitter) ListenerCount(event string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if event != "" {
		return len(e.listeners[event])
	}

	count := 0
	for _, list := range e.listeners {
		count += len(list)
	}
	return count
}
