package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Guard reports whether a transition may proceed.
type Guard[S, E comparable] func(ctx context.Context, from S, event E, data any) bool

// Action runs during a transition, before the state changes.
// Returning an error prevents the transition.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E, data any) error

// Transition defines a state change triggered by an event.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // all must pass
	Actions []Action[S, E] // executed in order
}

// Machine is a thread-safe in-memory state machine.
// Transitions are indexed as [from][event][]Transition.
type Machine[S, E comparable] struct {
	initial     S
	current     S
	transitions map[S]map[E][]Transition[S, E]
	mu          sync.RWMutex
}

// Current returns the active state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine[S, E]) Is(s S) bool {
	return m.Current() == s
}

// AddTransition registers a transition. Multiple transitions for the same
// state and event are allowed to support guard-based branching.
func (m *Machine[S, E]) AddTransition(t Transition[S, E]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[t.From]; !ok {
		m.transitions[t.From] = make(map[E][]Transition[S, E])
	}
	m.transitions[t.From][t.Event] = append(m.transitions[t.From][t.Event], t)
}

// Fire triggers event from the current state.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return NewErrNoTransitionAvailable(fmt.Sprint(m.current), fmt.Sprint(event))
	}

	t, ok := m.pick(ctx, candidates, event, data)
	if !ok {
		return NewErrTransitionRejected(fmt.Sprint(m.current), fmt.Sprint(event))
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, m.current, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	return nil
}

// CanFire reports whether Fire would find an allowed transition.
// Actions are not run, so Fire may still fail.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E, data any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.pick(ctx, m.transitions[m.current][event], event, data)
	return ok
}

// Reset returns the machine to its initial state.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// pick returns the first transition whose guards all pass. Must be called with lock held.
func (m *Machine[S, E]) pick(ctx context.Context, candidates []Transition[S, E], event E, data any) (Transition[S, E], bool) {
	for _, t := range candidates {
		allowed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, m.current, event, data) {
				allowed = false
				break
			}
		}
		if allowed {
			return t, true
		}
	}
	return Transition[S, E]{}, false
}
