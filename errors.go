package whenthen

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/creastat/whenthen/core"
)

var (
	// ErrNoArguments is wrapped by a ValidationError when a call received nothing to work with
	ErrNoArguments = errors.New("no arguments")

	// ErrUnsupportedElement is wrapped by a ValidationError when an element has the wrong type
	ErrUnsupportedElement = errors.New("unsupported element")

	// ErrDestroyed is wrapped by every LifecycleError
	ErrDestroyed = errors.New("instance destroyed")
)

// ValidationError reports a call whose arguments violate its contract
type ValidationError struct {
	Op      string
	Message string
	Details string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("`%s` %s: %s", e.Op, e.Message, e.Details)
	}
	return fmt.Sprintf("`%s` %s", e.Op, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a dispatcher or config that cannot be used
type ConfigurationError struct {
	Message string
	Details string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// LifecycleError reports a call on a destroyed root or barrier
type LifecycleError struct {
	Op       string
	Instance string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("`%s` %s destroyed", e.Op, e.Instance)
}

func (e *LifecycleError) Unwrap() error {
	return ErrDestroyed
}

// checkDispatcher rejects nil dispatchers, including typed nil pointers
func checkDispatcher(d core.Dispatcher) error {
	if d == nil {
		return &ConfigurationError{
			Message: "dispatcher must be compatible with core.Dispatcher",
			Details: "got nil",
		}
	}

	v := reflect.ValueOf(d)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		if v.IsNil() {
			return &ConfigurationError{
				Message: "dispatcher must be compatible with core.Dispatcher",
				Details: fmt.Sprintf("got nil %T", d),
			}
		}
	}

	return nil
}
