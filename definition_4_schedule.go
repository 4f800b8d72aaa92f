package roadmap

import (
	"cmp"
	"fmt"
	"slices"
)

// allocationState is the working copy of one Schedule call, keyed by input index.
type allocationState struct {
	items []WorkItem
	order []int // input indexes, ascending priority, stable

	remaining        []int
	assignedThisWeek []int

	totalRemaining int
}

func newAllocationState(items []WorkItem) *allocationState {
	state := allocationState{
		items:            items,
		order:            make([]int, len(items)),
		remaining:        make([]int, len(items)),
		assignedThisWeek: make([]int, len(items)),
	}

	for ix, item := range items {
		state.order[ix] = ix
		state.remaining[ix] = item.Size
		state.totalRemaining = state.totalRemaining + item.Size
	}

	slices.SortStableFunc(
		state.order,
		func(a, b int) int {
			return cmp.Compare(items[a].Priority, items[b].Priority)
		},
	)

	return &state
}

// nextEligible scans from the highest priority item on every call.
func (state *allocationState) nextEligible() (int, bool) {
	for _, ix := range state.order {
		if state.remaining[ix] > 0 && state.assignedThisWeek[ix] < state.items[ix].MaxTracks {
			return ix,
				true
		}
	}

	return -1,
		false
}

func (state *allocationState) allocateWeek(teamSize int) (Week, int) {
	week := NewWeek(teamSize)

	clear(state.assignedThisWeek)

	var allocated int

	for slot := range week {
		ix, found := state.nextEligible()
		if !found {
			break // eligibility only shrinks within a week, remaining slots stay unassigned
		}

		week[slot] = Assigned(state.items[ix].Name)

		state.remaining[ix]--
		state.assignedThisWeek[ix]++
		state.totalRemaining--

		allocated++
	}

	return week,
		allocated
}

// Schedule assigns teamSize interchangeable workers to items week by week.
// Every slot goes to the highest priority item with remaining size that is below
// its MaxTracks cap for the week. Input is validated upfront, on error no roadmap is returned.
func Schedule(items []WorkItem, teamSize int) (Roadmap, error) {
	if errTeam := validateTeamSize(teamSize); errTeam != nil {
		return nil,
			errTeam
	}

	if errItems := validateItems(items); errItems != nil {
		return nil,
			errItems
	}

	state := newAllocationState(items)

	result := make(Roadmap, 0, weeksLowerBound(state.totalRemaining, teamSize))

	// total remaining strictly decreases every week, so it also bounds the week count
	for weeksLeft := state.totalRemaining; state.totalRemaining > 0; weeksLeft-- {
		week, allocated := state.allocateWeek(teamSize)
		if allocated == 0 || weeksLeft == 0 {
			return nil,
				fmt.Errorf(
					"%w: week %d, remaining %d",

					ErrNoProgress,
					len(result),
					state.totalRemaining,
				)
		}

		result = append(result, week)
	}

	return result,
		nil
}

func weeksLowerBound(totalSize, teamSize int) int {
	return (totalSize + teamSize - 1) / teamSize
}

// ByPriority returns a copy ordered the way Schedule considers items.
func ByPriority(items []WorkItem) []WorkItem {
	result := slices.Clone(items)

	slices.SortStableFunc(
		result,
		func(a, b WorkItem) int {
			return cmp.Compare(a.Priority, b.Priority)
		},
	)

	return result
}
