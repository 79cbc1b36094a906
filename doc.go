// Package whenthen declares event-dependency barriers on top of a
// publish/subscribe dispatcher.
//
// A barrier is declared with Root.When and given actions with Then. Once
// every dependency event has been emitted on the dispatcher, in any order,
// the barrier runs its actions in registration order and starts over:
//
//	root, _ := whenthen.New(emitter.New(), nil)
//	b, _ := root.When("config:loaded", "db:ready")
//	b.Then(startServer, "app:ready")
//
// Functions are called directly; strings are emitted as events on the
// dispatcher, or on another one chosen with Have. A barrier with a single
// dependency forwards the arguments of the triggering emission to its
// actions; a barrier with several dependencies calls them without arguments.
//
// Barriers only subscribe on their first Then, so a declaration can be
// completed before any emission reaches it. Root.Destroy removes every
// subscription made through the root and invalidates it and its barriers.
//
// All work happens synchronously inside the dispatcher's Trigger call. Roots
// and barriers are not safe for concurrent use.
package whenthen
