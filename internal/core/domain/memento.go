package domain

import "slices"

// Memento is an immutable snapshot of the registry and the inventory.
type Memento struct {
	registry  *Registry
	inventory []Coin
}

func newMemento(r *Registry, inventory []Coin) Memento {
	return Memento{
		registry:  r.Clone(),
		inventory: slices.Clone(inventory),
	}
}

// Registry returns a deep copy of the captured registry.
func (m Memento) Registry() *Registry {
	if m.registry == nil {
		return NewRegistry()
	}
	return m.registry.Clone()
}

// Inventory returns a copy of the captured inventory.
func (m Memento) Inventory() []Coin {
	return slices.Clone(m.inventory)
}

// Equal compares two mementos structurally.
func (m Memento) Equal(other Memento) bool {
	return m.Registry().Equal(other.Registry()) && slices.Equal(m.inventory, other.inventory)
}

// StackState is the state of a MementoStack.
type StackState string

const (
	// StackEmpty indicates only the baseline is present.
	StackEmpty StackState = "empty"
	// StackNonEmpty indicates at least one memento can be restored.
	StackNonEmpty StackState = "non-empty"
)

// MementoStack is a single-step undo stack. The baseline is always present
// and is never popped.
type MementoStack struct {
	baseline Memento
	stack    []Memento
}

// NewMementoStack creates a stack holding only baseline.
func NewMementoStack(baseline Memento) *MementoStack {
	return &MementoStack{baseline: baseline}
}

// Save pushes m.
func (s *MementoStack) Save(m Memento) {
	s.stack = append(s.stack, m)
}

// Restore pops and returns the most recent memento.
// It reports false when only the baseline remains.
func (s *MementoStack) Restore() (Memento, bool) {
	if len(s.stack) == 0 {
		return Memento{}, false
	}
	m := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return m, true
}

// Baseline returns the memento the stack was created with.
func (s *MementoStack) Baseline() Memento {
	return s.baseline
}

// Depth returns the number of restorable mementos.
func (s *MementoStack) Depth() int {
	return len(s.stack)
}

// State returns StackEmpty or StackNonEmpty.
func (s *MementoStack) State() StackState {
	if len(s.stack) == 0 {
		return StackEmpty
	}
	return StackNonEmpty
}
