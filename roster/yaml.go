package roster

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type panelistDoc struct {
	Name      string   `yaml:"name"`
	Available []string `yaml:"available,omitempty"`
	Assigned  string   `yaml:"assigned,omitempty"`
}

type rosterDoc struct {
	Header    []string      `yaml:"header,omitempty"`
	Corner    string        `yaml:"corner,omitempty"`
	Slots     []string      `yaml:"slots"`
	Panelists []panelistDoc `yaml:"panelists"`
}

// ReadYAML parses a YAML roster. Slots are referenced by name; repeated
// references to the same slot collapse into one.
func ReadYAML(rd io.Reader) (*Roster, error) {
	var doc rosterDoc
	if err := yaml.NewDecoder(rd).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadYAML: %w", err)
	}

	index := make(map[string]int, len(doc.Slots))
	for i, name := range doc.Slots {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("ReadYAML: slot %q: %w", name, ErrDuplicateSlot)
		}
		index[name] = i
	}

	r := &Roster{Header: doc.Header, Corner: doc.Corner, Slots: doc.Slots}
	for _, pd := range doc.Panelists {
		p := Panelist{Name: pd.Name, Assigned: Unassigned}
		seen := make(map[int]bool, len(pd.Available))
		for _, name := range pd.Available {
			s, ok := index[name]
			if !ok {
				return nil, fmt.Errorf("ReadYAML: panelist %q: slot %q: %w", pd.Name, name, ErrUnknownSlot)
			}
			if !seen[s] {
				seen[s] = true
				p.Available = append(p.Available, s)
			}
		}
		if pd.Assigned != "" {
			s, ok := index[pd.Assigned]
			if !ok {
				return nil, fmt.Errorf("ReadYAML: panelist %q: assigned %q: %w", pd.Name, pd.Assigned, ErrUnknownSlot)
			}
			p.Assigned = s
		}
		r.Panelists = append(r.Panelists, p)
	}

	return r, nil
}

// WriteYAML writes r as a YAML roster, keeping availability and adding the
// assigned slot where there is one.
func WriteYAML(w io.Writer, r *Roster) error {
	doc := rosterDoc{Header: r.Header, Corner: r.Corner, Slots: r.Slots}
	if doc.Slots == nil {
		doc.Slots = []string{}
	}
	doc.Panelists = make([]panelistDoc, 0, len(r.Panelists))
	for _, p := range r.Panelists {
		pd := panelistDoc{Name: p.Name}
		for _, s := range p.Available {
			pd.Available = append(pd.Available, r.Slots[s])
		}
		if p.Assigned >= 0 && p.Assigned < len(r.Slots) {
			pd.Assigned = r.Slots[p.Assigned]
		}
		doc.Panelists = append(doc.Panelists, pd)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}
