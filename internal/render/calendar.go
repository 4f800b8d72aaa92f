package render

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// WeekStart is the start date plus seven days per week index.
func WeekStart(start time.Time, week int) time.Time {
	return start.AddDate(0, 0, 7*week)
}

// WeekLabel numbers weeks from one, with the start date when one is known.
func WeekLabel(start time.Time, week int) string {
	if start.IsZero() {
		return fmt.Sprintf("Week %d", week+1)
	}

	return fmt.Sprintf(
		"Week %d (%s)",

		week+1,
		WeekStart(start, week).Format(DateLayout),
	)
}

func WorkerLabel(worker int) string {
	return fmt.Sprintf("Engineer %d", worker+1)
}
