// Package automaton implements a generic pushdown state machine: a stack of
// states sharing one mutable context, driven one step at a time. Both the
// lexer and the compiler are built on it.
package automaton

import (
	"github.com/jotdown-lang/jotdown/internal/stack"
)

// State is one frame of a pushdown machine over context C. Run performs a
// single step and may push, pop or replace states through the machine.
type State[C any] interface {
	Run(m *Machine[C], ctx C) error
}

// Machine is a stack of states over a shared context.
type Machine[C any] struct {
	ctx    C
	states *stack.Stack[State[C]]
}

// New creates a machine with the given context and initial state.
func New[C any](ctx C, initial State[C]) *Machine[C] {
	states := stack.NewWithCapacity[State[C]](8)
	states.Push(initial)
	return &Machine[C]{ctx: ctx, states: states}
}

// Context returns the shared context.
func (m *Machine[C]) Context() C {
	return m.ctx
}

// Push places a new state on top of the stack.
func (m *Machine[C]) Push(s State[C]) {
	m.states.Push(s)
}

// Pop removes the current state, returning control to the state below it.
func (m *Machine[C]) Pop() {
	m.states.Pop()
}

// Transition replaces the current state with s.
func (m *Machine[C]) Transition(s State[C]) {
	if top := m.states.PeekRef(); top != nil {
		*top = s
		return
	}
	m.states.Push(s)
}

// Terminate clears the stack, stopping the machine.
func (m *Machine[C]) Terminate() {
	for !m.states.IsEmpty() {
		m.states.Pop()
	}
}

// Current returns the active state, or the zero State when the machine has
// terminated.
func (m *Machine[C]) Current() State[C] {
	s, _ := m.states.Peek()
	return s
}

// Update runs the active state once. It reports false once the stack is
// empty; an error from a state stops the machine and is returned as is.
func (m *Machine[C]) Update() (bool, error) {
	s, ok := m.states.Peek()
	if !ok {
		return false, nil
	}
	if err := s.Run(m, m.ctx); err != nil {
		m.Terminate()
		return false, err
	}
	return !m.states.IsEmpty(), nil
}
