package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/TudorHulban/roadmap/internal/logging"
	"github.com/TudorHulban/roadmap/internal/render"
)

// ValidationError is a single invalid setting.
type ValidationError struct {
	Value   any
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))

	for ix, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", ix+1, err.Error())
	}

	return sb.String()
}

// Validate returns every problem found, not only the first.
// A zero team size is allowed here since not every command schedules.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTeam()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateTeam() []ValidationError {
	var errors []ValidationError

	if c.Team.Size < 0 {
		errors = append(errors, ValidationError{
			Field:   KeyTeamSize,
			Value:   c.Team.Size,
			Message: "must be non-negative",
		})
	}

	if date := strings.TrimSpace(c.Team.StartDate); date != "" {
		if _, errParse := time.Parse(render.DateLayout, date); errParse != nil {
			errors = append(errors, ValidationError{
				Field:   KeyStartDate,
				Value:   c.Team.StartDate,
				Message: "must be a date formatted " + render.DateLayout,
			})
		}
	}

	return errors
}

func (c *Config) validateOutput() []ValidationError {
	var errors []ValidationError

	if _, errFormat := render.ParseFormat(c.Output.Format); errFormat != nil {
		formats := make([]string, 0, len(render.Formats()))

		for _, format := range render.Formats() {
			formats = append(formats, string(format))
		}

		errors = append(errors, ValidationError{
			Field:   KeyOutputFormat,
			Value:   c.Output.Format,
			Message: "must be one of: " + strings.Join(formats, ", "),
		})
	}

	for ix, color := range c.Output.Palette {
		if !render.IsValidColor(color) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", KeyOutputPalette, ix),
				Value:   color,
				Message: "must be a hex color or a color name",
			})
		}
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	if c.Logging.Level == "" ||
		slices.Contains(logging.ValidLevels(), strings.ToUpper(c.Logging.Level)) {
		return nil
	}

	return []ValidationError{
		{
			Field:   KeyLogLevel,
			Value:   c.Logging.Level,
			Message: "must be one of: " + strings.ToLower(strings.Join(logging.ValidLevels(), ", ")),
		},
	}
}
