package whenthen

import (
	"fmt"

	"github.com/creastat/whenthen/core"
)

// action is one entry of a barrier's action list
type action struct {
	kind     core.ActionKind
	callback core.Handler
	event    string
	target   core.Dispatcher
}

// run executes the action with the arguments the barrier decided to forward
func (a action) run(args []any) {
	switch a.kind {
	case core.ActionRelay:
		a.target.Trigger(a.event, args...)
	default:
		a.callback(args...)
	}
}

// parseNames flattens one level of input into dependency names
func parseNames(op string, input []any) ([]string, error) {
	var names []string

	add := func(v any) error {
		name, ok := v.(string)
		if !ok {
			return unsupported(op, "only accepts (lists of) strings", v)
		}
		if name == "" {
			return &ValidationError{
				Op:      op,
				Message: "only accepts (lists of) strings",
				Details: "event names must not be empty",
				Err:     ErrUnsupportedElement,
			}
		}
		names = append(names, name)
		return nil
	}

	for _, el := range input {
		switch v := el.(type) {
		case []string:
			for _, name := range v {
				if err := add(name); err != nil {
					return nil, err
				}
			}
		case []any:
			for _, inner := range v {
				if err := add(inner); err != nil {
					return nil, err
				}
			}
		default:
			if err := add(v); err != nil {
				return nil, err
			}
		}
	}

	if len(names) == 0 {
		return nil, &ValidationError{
			Op:      op,
			Message: "requires at least one string",
			Details: "no arguments",
			Err:     ErrNoArguments,
		}
	}

	return names, nil
}

// parseActions flattens one level of input into actions.
// Strings become relays bound to target, functions become callbacks.
func parseActions(op string, input []any, target core.Dispatcher) ([]action, error) {
	var actions []action

	add := func(v any) error {
		a, ok := toAction(v, target)
		if !ok {
			return unsupported(op, "only accepts (lists of) strings or functions", v)
		}
		actions = append(actions, a)
		return nil
	}

	for _, el := range input {
		switch v := el.(type) {
		case []string:
			for _, name := range v {
				if err := add(name); err != nil {
					return nil, err
				}
			}
		case []core.Handler:
			for _, fn := range v {
				if err := add(fn); err != nil {
					return nil, err
				}
			}
		case []func(...any):
			for _, fn := range v {
				if err := add(fn); err != nil {
					return nil, err
				}
			}
		case []any:
			for _, inner := range v {
				if err := add(inner); err != nil {
					return nil, err
				}
			}
		default:
			if err := add(v); err != nil {
				return nil, err
			}
		}
	}

	if len(actions) == 0 {
		return nil, &ValidationError{
			Op:      op,
			Message: "requires at least one string or function",
			Details: "no arguments",
			Err:     ErrNoArguments,
		}
	}

	return actions, nil
}

func toAction(v any, target core.Dispatcher) (action, bool) {
	switch fn := v.(type) {
	case string:
		if fn == "" {
			return action{}, false
		}
		return action{kind: core.ActionRelay, event: fn, target: target}, true
	case core.Handler:
		if fn == nil {
			return action{}, false
		}
		return action{kind: core.ActionCallback, callback: fn}, true
	case func(...any):
		if fn == nil {
			return action{}, false
		}
		return action{kind: core.ActionCallback, callback: fn}, true
	case func():
		if fn == nil {
			return action{}, false
		}
		return action{kind: core.ActionCallback, callback: func(...any) { fn() }}, true
	}
	return action{}, false
}

func unsupported(op, message string, v any) error {
	return &ValidationError{
		Op:      op,
		Message: message,
		Details: fmt.Sprintf("got %T", v),
		Err:     ErrUnsupportedElement,
	}
}
