package pdf

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/chemloop/sds-extract/internal/sds"
)

const (
	// Text runs whose baselines differ by less than this many points belong
	// to the same visual line.
	rowTolerance = 3.0

	// A horizontal gap at least this wide separates two cells; smaller gaps
	// are word spacing inside one cell.
	minColumnGap = 18.0

	// A run of fewer multi-cell lines than this is narrative layout, not a
	// table.
	minTableRows = 2
)

// tablesFromContent reconstructs table grids from a page's positioned text
// runs. Runs are clustered into visual lines by Y, lines are split into cells
// on wide X gaps, and consecutive multi-cell lines form one table. Pages laid
// out as plain paragraphs produce no tables, which pushes the CAS extractor
// to its text fallback.
func tablesFromContent(content pdf.Content) []sds.Table {
	if len(content.Text) == 0 {
		return nil
	}

	runs := make([]pdf.Text, len(content.Text))
	copy(runs, content.Text)

	// Reading order: top to bottom, then left to right within a line.
	sort.SliceStable(runs, func(i, j int) bool {
		if math.Abs(runs[i].Y-runs[j].Y) > rowTolerance {
			return runs[i].Y > runs[j].Y
		}
		return runs[i].X < runs[j].X
	})

	var lines [][]pdf.Text
	for _, run := range runs {
		if n := len(lines); n > 0 && math.Abs(lines[n-1][0].Y-run.Y) <= rowTolerance {
			lines[n-1] = append(lines[n-1], run)
			continue
		}
		lines = append(lines, []pdf.Text{run})
	}

	var tables []sds.Table
	var current []sds.Row

	flush := func() {
		if len(current) >= minTableRows {
			tables = append(tables, sds.Table{Rows: current})
		}
		current = nil
	}

	for _, line := range lines {
		cells := splitLineIntoCells(line)
		if len(cells) < 2 {
			flush()
			continue
		}

		row := make(sds.Row, 0, len(cells))
		for i := range cells {
			row = append(row, &cells[i])
		}
		current = append(current, row)
	}
	flush()

	return tables
}

// splitLineIntoCells merges a line's text runs into cell strings, starting a
// new cell whenever the horizontal gap to the previous run exceeds the column
// gap threshold.
func splitLineIntoCells(line []pdf.Text) []string {
	var cells []string
	var cell strings.Builder
	prevEnd := math.Inf(-1)

	for _, run := range line {
		text := run.S
		if strings.TrimSpace(text) == "" {
			prevEnd = run.X + run.W
			continue
		}

		gap := run.X - prevEnd
		switch {
		case cell.Len() == 0:
			// First run of the first cell.
		case gap > minColumnGap:
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		case gap > 1.0:
			cell.WriteString(" ")
		}

		cell.WriteString(text)
		prevEnd = run.X + run.W
	}

	if cell.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cell.String()))
	}

	return cells
}
