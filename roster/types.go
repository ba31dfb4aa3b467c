package roster

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Unassigned marks a panelist without a slot.
const Unassigned = -1

var (
	// ErrMalformedTable indicates a CSV table that does not follow the layout.
	ErrMalformedTable = errors.New("roster: malformed table")

	// ErrUnknownSlot indicates a YAML slot reference that names no slot.
	ErrUnknownSlot = errors.New("roster: unknown slot")

	// ErrDuplicateSlot indicates two YAML slots with the same name.
	ErrDuplicateSlot = errors.New("roster: duplicate slot name")

	// ErrAssignmentLength indicates an assignment that does not cover every panelist.
	ErrAssignmentLength = errors.New("roster: assignment length mismatch")

	// ErrUnknownFormat indicates a format name or file extension with no codec.
	ErrUnknownFormat = errors.New("roster: unknown format")
)

// Format names a roster codec.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("FormatFromPath(%q): %w", path, ErrUnknownFormat)
}

// ParseFormat validates a user-supplied format name. An empty name yields "".
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case "", FormatCSV, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
}

// Panelist is one row of the table.
type Panelist struct {
	Name string

	// Available lists slot indexes in column order, without duplicates.
	Available []int

	// Assigned is the scheduled slot index, or Unassigned.
	Assigned int
}

// Roster is a parsed availability table.
type Roster struct {
	// Header holds the free-form cells of the first row.
	Header []string

	// Corner is the free-form first cell of the slot row.
	Corner string

	// Slots holds the slot names in column order.
	Slots []string

	Panelists []Panelist
}

// Apply stores assigned[p] as the scheduled slot of panelist p.
func (r *Roster) Apply(assigned []int) error {
	if len(assigned) != len(r.Panelists) {
		return fmt.Errorf("Apply: %d values for %d panelists: %w",
			len(assigned), len(r.Panelists), ErrAssignmentLength)
	}
	for p, s := range assigned {
		if s != Unassigned && (s < 0 || s >= len(r.Slots)) {
			return fmt.Errorf("Apply: panelist %d slot %d: %w", p, s, ErrUnknownSlot)
		}
		r.Panelists[p].Assigned = s
	}

	return nil
}

// Assigned returns the per-panelist slot indexes.
func (r *Roster) Assigned() []int {
	out := make([]int, len(r.Panelists))
	for p := range r.Panelists {
		out[p] = r.Panelists[p].Assigned
	}

	return out
}
