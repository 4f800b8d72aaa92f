package roadmap

import (
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

// ScheduleRequest bundles a scheduling run.
// StartDate only labels weeks, it never influences allocation.
type ScheduleRequest struct {
	StartDate time.Time
	Items     []WorkItem

	TeamSize int
}

func (req *ScheduleRequest) IsValid() error {
	if errTeam := validateTeamSize(req.TeamSize); errTeam != nil {
		return errTeam
	}

	return validateItems(req.Items)
}

func (req *ScheduleRequest) GenerateRoadmap() (Roadmap, error) {
	return Schedule(req.Items, req.TeamSize)
}

// WeekStart is the calendar date labelling the week index.
func (req *ScheduleRequest) WeekStart(week int) time.Time {
	return req.StartDate.AddDate(0, 0, 7*week)
}

func validateTeamSize(teamSize int) error {
	if teamSize >= 1 {
		return nil
	}

	return fmt.Errorf(
		"%w: %w",

		ErrInvalidTeamSize,
		goerrors.ErrInvalidInput{
			Caller:     "Schedule",
			InputName:  "teamSize",
			InputValue: teamSize,
			Issue: fmt.Errorf(
				"got %d",
				teamSize,
			),
		},
	)
}
