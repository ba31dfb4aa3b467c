package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// declares reports whether a cell marks availability.
func declares(cell string) bool {
	cell = strings.TrimSpace(cell)

	return cell != "" && (cell[0] == 'x' || cell[0] == 'X')
}

// ReadCSV parses a table in the CSV layout. Blank cells past the last slot
// column are ignored; a declaring cell there is ErrMalformedTable.
func ReadCSV(rd io.Reader) (*Roster, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
		rows = append(rows, rec)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("ReadCSV: %d rows, need header and slot rows: %w", len(rows), ErrMalformedTable)
	}

	r := &Roster{
		Header: rows[0],
		Corner: rows[1][0],
		Slots:  append([]string(nil), rows[1][1:]...),
	}
	if blank(r.Header) {
		r.Header = nil
	}
	for i, rec := range rows[2:] {
		p := Panelist{Name: rec[0], Assigned: Unassigned}
		for col, cell := range rec[1:] {
			if !declares(cell) {
				continue
			}
			if col >= len(r.Slots) {
				return nil, fmt.Errorf("ReadCSV: row %d column %d past %d slots: %w",
					i+3, col+2, len(r.Slots), ErrMalformedTable)
			}
			p.Available = append(p.Available, col)
		}
		r.Panelists = append(r.Panelists, p)
	}

	return r, nil
}

// WriteCSV writes r in the CSV layout with one x per assigned panelist.
func WriteCSV(w io.Writer, r *Roster) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headerRow(r)); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	if err := cw.Write(append([]string{r.Corner}, r.Slots...)); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	for _, p := range r.Panelists {
		rec := make([]string, 1+len(r.Slots))
		rec[0] = p.Name
		if p.Assigned >= 0 && p.Assigned < len(r.Slots) {
			rec[1+p.Assigned] = "x"
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// blank reports whether every cell is empty after trimming.
func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

// headerRow returns the first CSV row. encoding/csv drops blank lines on
// read, so a missing or blank header becomes one empty cell per column,
// and never fewer than two.
func headerRow(r *Roster) []string {
	if !blank(r.Header) {
		return r.Header
	}

	return make([]string, max(2, 1+len(r.Slots)))
}
