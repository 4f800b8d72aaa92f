package roadmap

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTeamSize = errors.New("team size must be at least one")
	ErrInvalidItem     = errors.New("invalid backlog item")
	ErrDuplicateItem   = errors.New("duplicate backlog item name")

	// ErrNoProgress is returned when a week allocates no slot while work remains.
	// Validated input cannot produce it.
	ErrNoProgress = errors.New("week allocated no slots while work remains")
)

// ItemError locates a rejected backlog item.
// Kind is ErrInvalidItem or ErrDuplicateItem, Issue names the offending field.
type ItemError struct {
	Kind  error
	Issue error
	Name  string

	Index int
}

func (e *ItemError) Error() string {
	return fmt.Sprintf(
		"%s at index %d (%q): %s",

		e.Kind,
		e.Index,
		e.Name,
		e.Issue,
	)
}

// Unwrap exposes ErrInvalidItem for every item error, so duplicates match it too.
func (e *ItemError) Unwrap() []error {
	result := []error{ErrInvalidItem}

	if e.Kind != nil && e.Kind != ErrInvalidItem {
		result = append(result, e.Kind)
	}

	if e.Issue != nil {
		result = append(result, e.Issue)
	}

	return result
}
