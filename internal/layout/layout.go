// Package layout arranges formatted names into a uniform grid that fits a
// target width, and renders the grid.
package layout

import (
	"io"
	"strings"

	"github.com/harrison/rl/internal/models"
)

// BaseGap is the minimum number of spaces between two columns.
const BaseGap = 2

// Options controls the layout mode.
type Options struct {
	OnePerLine    bool
	NullSeparated bool
	// ForceQuoted is set when every name was quoted by configuration, in
	// which case no leading-space compensation is needed.
	ForceQuoted bool
}

// Arrangement is the computed grid for one block.
type Arrangement struct {
	Columns    int
	Rows       [][]models.OutputName
	MaxLen     int  // width of every cell
	Gap        int  // spaces between cells, including quote compensation
	LeadingPad int  // spaces before the first column
	Null       bool // terminate names with NUL instead of rows with newlines
	Single     bool // one name per line, no alignment
}

// RowWidth returns the total width of a row with c full columns.
func RowWidth(maxLen, gap, pad, c int) int {
	return maxLen*c + gap*(c-1) + pad
}

// Layout computes the arrangement of names for the given width.
// A width of 0 means unlimited: all names go on one row.
func Layout(names []models.OutputName, width int, opts Options) Arrangement {
	if len(names) == 0 {
		return Arrangement{}
	}

	if opts.OnePerLine || opts.NullSeparated {
		a := Arrangement{Columns: 1, Null: opts.NullSeparated, Single: true}
		a.Rows = fill(names, 1)
		return a
	}

	maxLen := 0
	anyQuoted := false
	for _, n := range names {
		if n.Width > maxLen {
			maxLen = n.Width
		}
		if n.Quoted {
			anyQuoted = true
		}
	}

	pad := 0
	if anyQuoted && !opts.ForceQuoted {
		pad = 1
	}
	gap := BaseGap + pad

	cols := 1
	if width == 0 {
		cols = len(names)
	} else {
		for cols < len(names) && RowWidth(maxLen, gap, pad, cols+1) <= width {
			cols++
		}
	}

	return Arrangement{
		Columns:    cols,
		Rows:       fill(names, cols),
		MaxLen:     maxLen,
		Gap:        gap,
		LeadingPad: pad,
	}
}

// fill assigns names row-major into rows of cols names; the last row may be short.
func fill(names []models.OutputName, cols int) [][]models.OutputName {
	rows := make([][]models.OutputName, 0, (len(names)+cols-1)/cols)
	for start := 0; start < len(names); start += cols {
		end := start + cols
		if end > len(names) {
			end = len(names)
		}
		rows = append(rows, names[start:end])
	}
	return rows
}

// Render writes the arrangement to w.
//
// In a padded grid each cell occupies LeadingPad+MaxLen cells: an unquoted
// name is shifted right by the pad so its text lines up with the text inside
// a quoted name's opening quote. Rows carry no trailing spaces.
func (a Arrangement) Render(w io.Writer) error {
	var b strings.Builder

	for _, row := range a.Rows {
		if a.Single {
			for _, n := range row {
				b.WriteString(n.Display)
				if a.Null {
					b.WriteByte(0)
				} else {
					b.WriteByte('\n')
				}
			}
			continue
		}

		for j, n := range row {
			if j > 0 {
				b.WriteString(strings.Repeat(" ", a.Gap-a.LeadingPad))
			}
			used := n.Width
			if a.LeadingPad > 0 && !n.Quoted {
				b.WriteString(strings.Repeat(" ", a.LeadingPad))
				used += a.LeadingPad
			}
			b.WriteString(n.Display)
			if j < len(row)-1 {
				b.WriteString(strings.Repeat(" ", a.MaxLen+a.LeadingPad-used))
			}
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
