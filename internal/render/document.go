// Package render turns a roadmap into something people read:
// a terminal table, an HTML page, or JSON / YAML documents.
package render

import (
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"

	"github.com/TudorHulban/roadmap"
)

// Document is the labelled view of one roadmap.
type Document struct {
	StartDate string         `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	Weeks     []DocumentWeek `json:"weeks"               yaml:"weeks"`
	Spans     []DocumentSpan `json:"spans"               yaml:"spans"`
	TeamSize  int            `json:"teamSize"            yaml:"teamSize"`

	grid   roadmap.Roadmap
	colors map[string]string
}

type DocumentWeek struct {
	Label string       `json:"label"           yaml:"label"`
	Start string       `json:"start,omitempty" yaml:"start,omitempty"`
	Slots roadmap.Week `json:"slots"           yaml:"slots"`
	Index int          `json:"index"           yaml:"index"`
}

type DocumentSpan struct {
	Name       string `json:"name"                 yaml:"name"`
	FinishesBy string `json:"finishesBy,omitempty" yaml:"finishesBy,omitempty"`
	FirstWeek  int    `json:"firstWeek"            yaml:"firstWeek"`
	LastWeek   int    `json:"lastWeek"             yaml:"lastWeek"`
	Slots      int    `json:"slots"                yaml:"slots"`
}

type ParamsNewDocument struct {
	StartDate time.Time
	Roadmap   roadmap.Roadmap
	Palette   []string

	TeamSize int
}

func NewDocument(params *ParamsNewDocument) (*Document, error) {
	if params.TeamSize < 1 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewDocument",
				Issue: goerrors.ErrInvalidInput{
					InputName:  "TeamSize",
					InputValue: params.TeamSize,
				},
			}
	}

	// every week must hold one slot per engineer, rows are read by worker index
	for ix, week := range params.Roadmap {
		if len(week) != params.TeamSize {
			return nil,
				goerrors.ErrValidation{
					Caller: "NewDocument",
					Issue: goerrors.ErrInvalidInput{
						InputName:  fmt.Sprintf("Roadmap week %d", ix),
						InputValue: len(week),
					},
				}
		}
	}

	result := Document{
		TeamSize: params.TeamSize,
		Weeks:    make([]DocumentWeek, len(params.Roadmap)),
		Spans:    make([]DocumentSpan, 0),

		grid:   params.Roadmap,
		colors: AssignColors(params.Roadmap, params.Palette),
	}

	if !params.StartDate.IsZero() {
		result.StartDate = params.StartDate.Format(DateLayout)
	}

	for ix, week := range params.Roadmap {
		result.Weeks[ix] = DocumentWeek{
			Index: ix,
			Label: WeekLabel(params.StartDate, ix),
			Slots: week,
		}

		if !params.StartDate.IsZero() {
			result.Weeks[ix].Start = WeekStart(params.StartDate, ix).Format(DateLayout)
		}
	}

	for _, span := range params.Roadmap.Spans() {
		documentSpan := DocumentSpan{
			Name:      span.Name,
			FirstWeek: span.FirstWeek,
			LastWeek:  span.LastWeek,
			Slots:     span.Slots,
		}

		if !params.StartDate.IsZero() {
			documentSpan.FinishesBy = WeekStart(params.StartDate, span.LastWeek+1).Format(DateLayout)
		}

		result.Spans = append(result.Spans, documentSpan)
	}

	return &result,
		nil
}

// Color is the background for the item, ColorUnassigned for empty slots.
func (doc *Document) Color(slot roadmap.Slot) string {
	itemName, isAssigned := slot.Item()
	if !isAssigned {
		return ColorUnassigned
	}

	if color, exists := doc.colors[itemName]; exists {
		return color
	}

	return ColorUnassigned
}

func (doc *Document) Roadmap() roadmap.Roadmap {
	return doc.grid
}

type documentCell struct {
	Item  string
	Color string
}

type documentRow struct {
	Label string
	Cells []documentCell
}

// rows lays the roadmap out with one row per worker and one column per week.
func (doc *Document) rows() []documentRow {
	result := make([]documentRow, doc.TeamSize)

	for worker := range doc.TeamSize {
		row := documentRow{
			Label: WorkerLabel(worker),
			Cells: make([]documentCell, len(doc.grid)),
		}

		for weekIndex, slot := range doc.grid.WorkerRow(worker) {
			itemName, _ := slot.Item()

			row.Cells[weekIndex] = documentCell{
				Item:  itemName,
				Color: doc.Color(slot),
			}
		}

		result[worker] = row
	}

	return result
}

func (doc *Document) headers() []string {
	result := make([]string, 0, len(doc.Weeks)+1)
	result = append(result, "Engineer / Week")

	for _, week := range doc.Weeks {
		result = append(result, week.Label)
	}

	return result
}
