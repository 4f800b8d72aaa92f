package roadmap

import (
	"fmt"
	"strings"
)

// ItemSpan summarises when an item is worked on.
type ItemSpan struct {
	Name string

	FirstWeek int
	LastWeek  int // the item completes at the end of this week
	Slots     int // worker-weeks assigned
}

// Weeks is the calendar length of the span, gaps included.
func (span ItemSpan) Weeks() int {
	return span.LastWeek - span.FirstWeek + 1
}

// Spans lists items in order of first appearance, scanning weeks then slots.
func (r Roadmap) Spans() []ItemSpan {
	positions := make(map[string]int)
	result := make([]ItemSpan, 0)

	for weekIndex, week := range r {
		for _, slot := range week {
			itemName, isAssigned := slot.Item()
			if !isAssigned {
				continue
			}

			position, exists := positions[itemName]
			if !exists {
				positions[itemName] = len(result)

				result = append(
					result,
					ItemSpan{
						Name:      itemName,
						FirstWeek: weekIndex,
						LastWeek:  weekIndex,
						Slots:     1,
					},
				)

				continue
			}

			result[position].LastWeek = weekIndex
			result[position].Slots++
		}
	}

	return result
}

// Utilization is the number of assigned slots per week.
func (r Roadmap) Utilization() []int {
	result := make([]int, len(r))

	for ix, week := range r {
		result[ix] = week.Assigned()
	}

	return result
}

// Items lists distinct item names scanning one worker row at a time,
// the order a worker by week grid is read in.
func (r Roadmap) Items() []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for worker := range r.TeamSize() {
		for _, week := range r {
			itemName, isAssigned := week[worker].Item()
			if !isAssigned || seen[itemName] {
				continue
			}

			seen[itemName] = true

			result = append(result, itemName)
		}
	}

	return result
}

// WorkerRow is the worker's assignment across all weeks.
func (r Roadmap) WorkerRow(worker int) []Slot {
	result := make([]Slot, len(r))

	for ix, week := range r {
		result[ix] = week[worker]
	}

	return result
}

func (r Roadmap) String() string {
	var sb strings.Builder

	sb.WriteString("Roadmap{\n")

	for ix, week := range r {
		cells := make([]string, len(week))

		for slotIndex, slot := range week {
			cells[slotIndex] = slot.String()
		}

		sb.WriteString(
			fmt.Sprintf(
				"\tWeek %d: [%s]\n",

				ix+1,
				strings.Join(cells, ", "),
			),
		)
	}

	sb.WriteString("}")

	return sb.String()
}
