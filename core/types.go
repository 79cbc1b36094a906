package core

// State is the lifecycle state of a barrier
type State string

const (
	// StateUnregistered is the initial state: dependencies declared, nothing subscribed
	StateUnregistered State = "unregistered"

	// StateArmed means one-shot listeners are in place for the outstanding dependencies
	StateArmed State = "armed"

	// StateDestroyed is terminal
	StateDestroyed State = "destroyed"
)

// ActionKind tells how an action runs when its barrier fires
type ActionKind string

const (
	// ActionCallback calls a function directly
	ActionCallback ActionKind = "callback"

	// ActionRelay emits an event on a bound dispatcher
	ActionRelay ActionKind = "relay"
)
