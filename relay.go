package whenthen

import "github.com/creastat/whenthen/core"

// Relay is a view of a barrier whose string actions are emitted on another
// dispatcher. The barrier keeps listening on its own dispatcher.
type Relay struct {
	barrier *Barrier
	target  core.Dispatcher
}

// Then appends actions to the underlying barrier. Strings registered here
// stay bound to the relay's dispatcher for the life of the barrier.
func (r *Relay) Then(actions ...any) (*Chain, error) {
	return r.barrier.then(r.target, actions)
}

// Chain is returned by Then to start the next declaration on the same root
type Chain struct {
	root *Root
}

// When declares a new barrier on the root the chain came from
func (c *Chain) When(names ...any) (*Barrier, error) {
	return c.root.When(names...)
}
