package whenthen

import (
	"github.com/creastat/whenthen/core"
	"github.com/stretchr/testify/mock"
)

// MockDispatcher records subscriptions without delivering anything
type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) On(event string, handler core.Handler, owner any) {
	m.Called(event, handler, owner)
}

func (m *MockDispatcher) Once(event string, handler core.Handler, owner any) {
	m.Called(event, handler, owner)
}

func (m *MockDispatcher) Off(event string, owner any) {
	m.Called(event, owner)
}

func (m *MockDispatcher) Trigger(event string, args ...any) {
	m.Called(append([]any{event}, args...)...)
}

// spy counts calls and keeps their arguments
type spy struct {
	calls [][]any
}

func (s *spy) fn(args ...any) {
	s.calls = append(s.calls, args)
}

func (s *spy) count() int {
	return len(s.calls)
}
