package capacity

import (
	"errors"

	"github.com/katalvlaran/panelsched/hopcroftkarp"
)

// Unassigned marks a panelist without a slot in an Assignment.
const Unassigned = -1

var (
	// ErrInvalidCapacity indicates a per-slot capacity below one.
	ErrInvalidCapacity = errors.New("capacity: max panelists per slot must be ≥ 1")

	// ErrPanelistNotFound indicates an unknown logical panelist index.
	ErrPanelistNotFound = errors.New("capacity: panelist not found")

	// ErrSlotNotFound indicates an unknown logical slot index.
	ErrSlotNotFound = errors.New("capacity: slot not found")
)

// Assignment is the logical readout of a solved Network.
type Assignment struct {
	// Matches is the number of assigned panelists.
	Matches int

	// Phases is the number of Hopcroft–Karp phases that augmented.
	Phases int

	// slots[p] is the logical slot of panelist p, or Unassigned.
	slots []int

	// load[s] is the number of panelists placed in slot s.
	load []int

	m *hopcroftkarp.Matching
}

// Matching returns the slot-copy level matching the assignment was read from.
func (a *Assignment) Matching() *hopcroftkarp.Matching { return a.m }

// SlotOf returns the logical slot assigned to panelist p and true, or
// Unassigned and false.
func (a *Assignment) SlotOf(p int) (int, bool) {
	if p < 0 || p >= len(a.slots) || a.slots[p] == Unassigned {
		return Unassigned, false
	}

	return a.slots[p], true
}

// Load returns the number of panelists placed in logical slot s.
func (a *Assignment) Load(s int) int {
	if s < 0 || s >= len(a.load) {
		return 0
	}

	return a.load[s]
}

// Slots returns a copy of the per-panelist slot indexes.
func (a *Assignment) Slots() []int {
	return append([]int(nil), a.slots...)
}
