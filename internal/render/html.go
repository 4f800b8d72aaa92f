package render

import (
	"html/template"
	"io"
	"regexp"
)

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]+)$`)

// IsValidColor accepts hex colors and CSS color names.
func IsValidColor(color string) bool {
	return colorPattern.MatchString(color)
}

var templateHTML = template.Must(
	template.New("roadmap").Parse(`<table style="border-collapse: collapse; width: 100%; text-align: center;">
  <thead>
    <tr>
      {{- range .Headers}}
      <th style="border: 1px solid black;">{{.}}</th>
      {{- end}}
    </tr>
  </thead>
  <tbody>
    {{- range .Rows}}
    <tr>
      <td style="font-weight: bold; border: 1px solid black;">{{.Label}}</td>
      {{- range .Cells}}
      <td style="border: 1px solid black; background-color: {{.Background}};">{{.Item}}</td>
      {{- end}}
    </tr>
    {{- end}}
  </tbody>
</table>
`),
)

type htmlCell struct {
	Item       string
	Background template.CSS
}

type htmlRow struct {
	Label string
	Cells []htmlCell
}

// HTML writes the roadmap as a standalone table, one colored cell per worker-week.
func HTML(w io.Writer, doc *Document) error {
	rows := doc.rows()

	data := struct {
		Headers []string
		Rows    []htmlRow
	}{
		Headers: doc.headers(),
		Rows:    make([]htmlRow, len(rows)),
	}

	for ix, row := range rows {
		data.Rows[ix] = htmlRow{
			Label: row.Label,
			Cells: make([]htmlCell, len(row.Cells)),
		}

		for cellIndex, cell := range row.Cells {
			background := ColorUnassigned

			if IsValidColor(cell.Color) {
				background = cell.Color
			}

			data.Rows[ix].Cells[cellIndex] = htmlCell{
				Item:       cell.Item,
				Background: template.CSS(background),
			}
		}
	}

	return templateHTML.Execute(w, data)
}
