package roadmap

import (
	"fmt"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// WorkItem is a backlog entry.
// Size is remaining effort in worker-weeks, MaxTracks caps the workers it may take per week.
type WorkItem struct {
	Name        string
	Description string

	Priority  int // lower is scheduled first
	Size      int
	MaxTracks int
}

type ParamsNewWorkItem struct {
	Name        string `valid:"required"`
	Description string

	Priority  int
	Size      int
	MaxTracks int
}

func NewWorkItem(params *ParamsNewWorkItem) (*WorkItem, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Roadmap",
				Caller:      "NewWorkItem",
				Issue:       errValidation,
			}
	}

	item := WorkItem{
		Name:        strings.TrimSpace(params.Name),
		Description: params.Description,
		Priority:    params.Priority,
		Size:        params.Size,
		MaxTracks:   params.MaxTracks,
	}

	if errValidation := item.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &item,
		nil
}

// IsValid rejects items the allocator cannot guarantee progress on.
func (item *WorkItem) IsValid() error {
	if len(strings.TrimSpace(item.Name)) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - WorkItem",
			Issue: goerrors.ErrNilInput{
				InputName: "Name",
			},
		}
	}

	if item.Size < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - WorkItem",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Size",
			},
		}
	}

	if item.MaxTracks < 1 {
		return goerrors.ErrValidation{
			Caller: "IsValid - WorkItem",
			Issue: goerrors.ErrInvalidInput{
				Caller:     "IsValid - WorkItem",
				InputName:  "MaxTracks",
				InputValue: item.MaxTracks,
				Issue: fmt.Errorf(
					"max tracks %d below one",
					item.MaxTracks,
				),
			},
		}
	}

	return nil
}

func (item WorkItem) String() string {
	return fmt.Sprintf(
		"WorkItem{Name: %q, Priority: %d, Size: %d, MaxTracks: %d}",

		item.Name,
		item.Priority,
		item.Size,
		item.MaxTracks,
	)
}

// validateItems checks every item and name uniqueness before any allocation happens.
func validateItems(items []WorkItem) error {
	seen := make(map[string]int, len(items))

	for ix := range items {
		item := &items[ix]

		if errValidation := item.IsValid(); errValidation != nil {
			return &ItemError{
				Kind:  ErrInvalidItem,
				Issue: errValidation,
				Name:  item.Name,
				Index: ix,
			}
		}

		if previous, exists := seen[item.Name]; exists {
			return &ItemError{
				Kind: ErrDuplicateItem,
				Issue: goerrors.ErrInvalidInput{
					Caller:     "validateItems",
					InputName:  "Name",
					InputValue: item.Name,
					Issue: fmt.Errorf(
						"name already used at index %d",
						previous,
					),
				},
				Name:  item.Name,
				Index: ix,
			}
		}

		seen[item.Name] = ix
	}

	return nil
}
