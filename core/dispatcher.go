package core

// Handler receives the arguments of a triggered event
type Handler func(args ...any)

// Dispatcher is the publish/subscribe capability barriers are built on.
//
// Subscriptions are tagged with an owner so that every subscription of one
// owner can be removed at once without disturbing the others. Owners are
// compared with ==, so they must be comparable values such as pointers.
type Dispatcher interface {
	// On subscribes handler to every emission of event
	On(event string, handler Handler, owner any)

	// Once subscribes handler to the next emission of event only.
	// The subscription is removed before the handler runs.
	Once(event string, handler Handler, owner any)

	// Off removes subscriptions matching event and owner.
	// An empty event matches every event, a nil owner matches every owner.
	Off(event string, owner any)

	// Trigger synchronously calls the current subscribers of event in
	// subscription order, passing args through unmodified. Subscribers added
	// while the emission is in progress are not called by it.
	Trigger(event string, args ...any)
}
