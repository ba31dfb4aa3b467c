package roster_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/panelsched/roster"
)

const exampleCSV = "Blah,Blah,Blah,Blah\n" +
	"Blah,Slot1,Slot2,Slot3\n" +
	"Name1,x,x,\n" +
	"Name2,x,,x\n" +
	"Name3,,x,\n" +
	"Name4,,x,x\n" +
	"Name5,x,x,x\n"

func TestReadCSVExample(t *testing.T) {
	r, err := roster.ReadCSV(strings.NewReader(exampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"Blah", "Blah", "Blah", "Blah"}, r.Header)
	assert.Equal(t, "Blah", r.Corner)
	assert.Equal(t, []string{"Slot1", "Slot2", "Slot3"}, r.Slots)
	require.Len(t, r.Panelists, 5)

	want := [][]int{{0, 1}, {0, 2}, {1}, {1, 2}, {0, 1, 2}}
	for p, pl := range r.Panelists {
		assert.Equal(t, want[p], pl.Available, pl.Name)
		assert.Equal(t, roster.Unassigned, pl.Assigned)
	}
}

func TestReadCSVCells(t *testing.T) {
	in := "info\n" +
		"corner,A,B,C\r\n" +
		"P1, x ,X,xyz\n" +
		"P2,no,,\n" +
		"P3\n" +
		"P4,,,,, \n"
	r, err := roster.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, r.Panelists, 4)
	assert.Equal(t, []int{0, 1, 2}, r.Panelists[0].Available)
	assert.Empty(t, r.Panelists[1].Available)
	assert.Equal(t, "P3", r.Panelists[2].Name)
	assert.Empty(t, r.Panelists[2].Available)
	assert.Empty(t, r.Panelists[3].Available)
}

func TestReadCSVMalformed(t *testing.T) {
	for name, in := range map[string]string{
		"empty":       "",
		"header only": "a,b\n",
		"extra x":     "h\nc,A\nP,,x\n",
	} {
		_, err := roster.ReadCSV(strings.NewReader(in))
		require.ErrorIs(t, err, roster.ErrMalformedTable, name)
	}
}

func TestWriteCSVExample(t *testing.T) {
	r, err := roster.ReadCSV(strings.NewReader(exampleCSV))
	require.NoError(t, err)
	require.NoError(t, r.Apply([]int{0, 0, 1, 1, 2}))

	var buf bytes.Buffer
	require.NoError(t, roster.WriteCSV(&buf, r))
	assert.Equal(t, "Blah,Blah,Blah,Blah\n"+
		"Blah,Slot1,Slot2,Slot3\n"+
		"Name1,x,,\n"+
		"Name2,x,,\n"+
		"Name3,,x,\n"+
		"Name4,,x,\n"+
		"Name5,,,x\n", buf.String())

	// the rewritten table parses back with the assignment as availability
	back, err := roster.ReadCSV(&buf)
	require.NoError(t, err)
	for p, pl := range back.Panelists {
		assert.Equal(t, []int{r.Panelists[p].Assigned}, pl.Available)
	}
}

func TestApply(t *testing.T) {
	r := &roster.Roster{Slots: []string{"A"}, Panelists: []roster.Panelist{{Name: "P"}, {Name: "Q"}}}

	require.ErrorIs(t, r.Apply([]int{0}), roster.ErrAssignmentLength)
	require.ErrorIs(t, r.Apply([]int{0, 1}), roster.ErrUnknownSlot)
	require.NoError(t, r.Apply([]int{roster.Unassigned, 0}))
	assert.Equal(t, []int{roster.Unassigned, 0}, r.Assigned())
}

func TestYAMLRoundTrip(t *testing.T) {
	in := `header: [Panel week]
corner: Who
slots: [Mon, Tue]
panelists:
  - name: Ann
    available: [Mon, Tue, Mon]
  - name: Bob
    available: [Tue]
    assigned: Tue
  - name: Cy
`
	r, err := roster.ReadYAML(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"Panel week"}, r.Header)
	assert.Equal(t, "Who", r.Corner)
	assert.Equal(t, []int{0, 1}, r.Panelists[0].Available)
	assert.Equal(t, 1, r.Panelists[1].Assigned)
	assert.Equal(t, roster.Unassigned, r.Panelists[2].Assigned)

	require.NoError(t, r.Apply([]int{0, 1, roster.Unassigned}))
	var buf bytes.Buffer
	require.NoError(t, roster.WriteYAML(&buf, r))

	back, err := roster.ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, r, back)
}

func TestReadYAMLErrors(t *testing.T) {
	_, err := roster.ReadYAML(strings.NewReader("slots: [A]\npanelists:\n  - name: P\n    available: [B]\n"))
	require.ErrorIs(t, err, roster.ErrUnknownSlot)

	_, err = roster.ReadYAML(strings.NewReader("slots: [A]\npanelists:\n  - name: P\n    assigned: B\n"))
	require.ErrorIs(t, err, roster.ErrUnknownSlot)

	_, err = roster.ReadYAML(strings.NewReader("slots: [A, A]\npanelists: []\n"))
	require.ErrorIs(t, err, roster.ErrDuplicateSlot)

	_, err = roster.ReadYAML(strings.NewReader("slots: {"))
	require.Error(t, err)
}

func TestFormats(t *testing.T) {
	for path, want := range map[string]roster.Format{
		"a.csv": roster.FormatCSV, "b.CSV": roster.FormatCSV,
		"c.yaml": roster.FormatYAML, "d.yml": roster.FormatYAML,
	} {
		got, err := roster.FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	_, err := roster.FormatFromPath("e.txt")
	require.ErrorIs(t, err, roster.ErrUnknownFormat)

	f, err := roster.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, roster.FormatYAML, f)
	_, err = roster.ParseFormat("xml")
	require.ErrorIs(t, err, roster.ErrUnknownFormat)
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "panel.csv")
	require.NoError(t, os.WriteFile(src, []byte(exampleCSV), 0o644))

	r, err := roster.Load(src, "")
	require.NoError(t, err)
	require.Len(t, r.Panelists, 5)

	// save as YAML through an explicit format on a .txt path
	dst := filepath.Join(dir, "panel.txt")
	require.NoError(t, roster.Save(dst, roster.FormatYAML, r))
	back, err := roster.Load(dst, roster.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, r.Slots, back.Slots)
	assert.Equal(t, r.Panelists, back.Panelists)

	_, err = roster.Load(filepath.Join(dir, "missing.csv"), "")
	require.ErrorIs(t, err, os.ErrNotExist)
	_, err = roster.Load(dst, "")
	require.ErrorIs(t, err, roster.ErrUnknownFormat)
}

// TestYAMLToCSV converts a header-less YAML roster to CSV and back. The
// first CSV row must survive as a row of blank cells.
func TestYAMLToCSV(t *testing.T) {
	in := `slots: [S1, S2]
panelists:
  - name: A
    available: [S1]
  - name: B
    available: [S1, S2]
    assigned: S2
`
	r, err := roster.ReadYAML(strings.NewReader(in))
	require.NoError(t, err)
	require.Empty(t, r.Header)

	var buf bytes.Buffer
	require.NoError(t, roster.WriteCSV(&buf, r))
	assert.Equal(t, ",,\n,S1,S2\nA,,\nB,,x\n", buf.String())

	back, err := roster.ReadCSV(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Nil(t, back.Header)
	assert.Equal(t, []string{"S1", "S2"}, back.Slots)
	require.Len(t, back.Panelists, 2)
	assert.Equal(t, "B", back.Panelists[1].Name)
	assert.Equal(t, []int{1}, back.Panelists[1].Available)

	// a second CSV pass is stable once the assignment is re-applied
	require.NoError(t, back.Apply(r.Assigned()))
	var again bytes.Buffer
	require.NoError(t, roster.WriteCSV(&again, back))
	assert.Equal(t, buf.String(), again.String())
}

func TestWriteCSVBlankHeaderNoSlots(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, roster.WriteCSV(&buf, &roster.Roster{Header: []string{" "}, Corner: "who"}))
	assert.Equal(t, ",\nwho\n", buf.String())
}
