package roster

import (
	"bytes"
	"fmt"
	"os"
)

// Load reads the roster at path. An empty format is derived from the extension.
func Load(path string, format Format) (*Roster, error) {
	format, err := resolve(path, format)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	defer f.Close()

	var r *Roster
	switch format {
	case FormatYAML:
		r, err = ReadYAML(f)
	default:
		r, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}

	return r, nil
}

// Save writes r to path, replacing any existing file. The encoding is done
// in memory first so a failed encode leaves the file untouched.
func Save(path string, format Format, r *Roster) error {
	format, err := resolve(path, format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		err = WriteYAML(&buf, r)
	default:
		err = WriteCSV(&buf, r)
	}
	if err != nil {
		return fmt.Errorf("Save(%q): %w", path, err)
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("Save(%q): %w", path, err)
	}

	return nil
}

func resolve(path string, format Format) (Format, error) {
	if format != "" {
		return ParseFormat(string(format))
	}

	return FormatFromPath(path)
}
