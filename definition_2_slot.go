package roadmap

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Slot is one worker's assignment for one week, either an item name or unassigned.
// The zero value is unassigned.
type Slot struct {
	item     string
	assigned bool
}

var Unassigned = Slot{}

func Assigned(itemName string) Slot {
	return Slot{
		item:     itemName,
		assigned: true,
	}
}

// Item returns the assigned item name and false for unassigned slots.
func (s Slot) Item() (string, bool) {
	return s.item,
		s.assigned
}

func (s Slot) IsAssigned() bool {
	return s.assigned
}

func (s Slot) String() string {
	return ternary(
		s.assigned,

		s.item,
		"-",
	)
}

func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.assigned {
		return []byte("null"),
			nil
	}

	return json.Marshal(s.item)
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = Unassigned

		return nil
	}

	var itemName string

	if errUnmarshal := json.Unmarshal(data, &itemName); errUnmarshal != nil {
		return errUnmarshal
	}

	*s = Assigned(itemName)

	return nil
}

func (s Slot) MarshalYAML() (any, error) {
	if !s.assigned {
		return nil,
			nil
	}

	return s.item,
		nil
}

func (s *Slot) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*s = Unassigned

		return nil
	}

	var itemName string

	if errDecode := node.Decode(&itemName); errDecode != nil {
		return errDecode
	}

	*s = Assigned(itemName)

	return nil
}

// Week holds one slot per worker, indexed by worker.
type Week []Slot

func NewWeek(teamSize int) Week {
	return make(Week, teamSize)
}

// UnmarshalYAML decodes through pointers, yaml skips null elements decoded into structs.
func (w *Week) UnmarshalYAML(node *yaml.Node) error {
	var itemNames []*string

	if errDecode := node.Decode(&itemNames); errDecode != nil {
		return errDecode
	}

	result := NewWeek(len(itemNames))

	for ix, itemName := range itemNames {
		if itemName != nil {
			result[ix] = Assigned(*itemName)
		}
	}

	*w = result

	return nil
}

// Assigned counts the slots holding an item.
func (w Week) Assigned() int {
	var result int

	for _, slot := range w {
		if slot.assigned {
			result++
		}
	}

	return result
}

// CountFor counts the slots assigned to the item.
func (w Week) CountFor(itemName string) int {
	var result int

	for _, slot := range w {
		if slot.assigned && slot.item == itemName {
			result++
		}
	}

	return result
}

// Roadmap is the week by week assignment, week zero first.
type Roadmap []Week

// TeamSize is the slot count of the weeks, zero for an empty roadmap.
func (r Roadmap) TeamSize() int {
	if len(r) == 0 {
		return 0
	}

	return len(r[0])
}
