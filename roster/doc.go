// Package roster reads and writes panelist availability tables.
//
// Two formats are supported:
//
//   - CSV: row 0 is free-form table information, row 1 holds a free-form
//     corner cell followed by the slot names, and every following row is a
//     panelist name followed by one cell per slot. A cell whose first
//     non-blank character is x or X declares availability. After scheduling
//     each panelist row carries at most one x.
//   - YAML: header, corner, slots and panelists{name, available, assigned},
//     with slots referenced by name.
//
// Load and Save pick the codec by Format, or by file extension when the
// format is empty.
package roster
