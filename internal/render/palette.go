package render

import "github.com/TudorHulban/roadmap"

const ColorUnassigned = "white"

// DefaultPalette holds muted background colors, reused cyclically.
var DefaultPalette = []string{
	"#b3e5fc",
	"#ffccbc",
	"#c8e6c9",
	"#f8bbd0",
	"#b2dfdb",
}

// AssignColors gives each item the next palette color in the order the grid is read,
// worker row by worker row. The same roadmap always gets the same colors.
func AssignColors(grid roadmap.Roadmap, palette []string) map[string]string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	result := make(map[string]string)

	for ix, itemName := range grid.Items() {
		result[itemName] = palette[ix%len(palette)]
	}

	return result
}
