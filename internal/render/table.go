package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	styleWorker = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	styleCell = lipgloss.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Center)
)

// Table renders workers as rows and weeks as columns, each item on its own background.
func Table(doc *Document) string {
	rows := doc.rows()

	cells := make([][]string, len(rows))

	for ix, row := range rows {
		cells[ix] = make([]string, 0, len(row.Cells)+1)
		cells[ix] = append(cells[ix], row.Label)

		for _, cell := range row.Cells {
			cells[ix] = append(cells[ix], cell.Item)
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(doc.headers()...).
		Rows(cells...).
		StyleFunc(
			func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return styleHeader
				}

				if col == 0 {
					return styleWorker
				}

				if row < 0 || row >= len(rows) || col-1 >= len(rows[row].Cells) {
					return styleCell
				}

				cell := rows[row].Cells[col-1]
				if cell.Item == "" {
					return styleCell
				}

				return styleCell.
					Background(lipgloss.Color(cell.Color)).
					Foreground(lipgloss.Color("#000000"))
			},
		).
		String()
}
