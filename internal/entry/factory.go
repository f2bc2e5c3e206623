// Package entry builds validated entries from raw field values. Factories
// never panic on bad input; every failure comes back as a
// *schema.ValidationError listing all violated constraints.
package entry

import (
	"github.com/google/uuid"

	"github.com/yourname/moodtracker/internal"
	"github.com/yourname/moodtracker/internal/collection"
	"github.com/yourname/moodtracker/internal/schema"
)

// MediaOption customizes a media entry before validation.
type MediaOption func(*internal.MediaEntry)

// WithID supplies a caller-chosen identifier instead of a generated one.
func WithID(id string) MediaOption {
	return func(e *internal.MediaEntry) { e.ID = id }
}

// WithTitle attaches a display title.
func WithTitle(title string) MediaOption {
	return func(e *internal.MediaEntry) { e.Title = title }
}

// NewHappinessEntry validates date and happiness and returns the entry, or a
// *schema.ValidationError naming every violated constraint.
func NewHappinessEntry(date string, happiness int) (internal.HappinessEntry, error) {
	record := map[string]interface{}{
		"date":      date,
		"happiness": happiness,
	}

	res := schema.HappinessSchema.Validate(record)
	errs := appendCalendarCheck(res.Errors, date)
	if len(errs) > 0 {
		return internal.HappinessEntry{}, schema.NewValidationError(errs)
	}
	return internal.HappinessEntry{Date: date, Happiness: happiness}, nil
}

// NewMediaEntry validates the fields and returns the entry, generating a
// UUID when no WithID option is given.
func NewMediaEntry(date, mediaType string, duration int, opts ...MediaOption) (internal.MediaEntry, error) {
	e := internal.MediaEntry{
		Date:     date,
		Type:     mediaType,
		Duration: duration,
	}
	for _, opt := range opts {
		opt(&e)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	record := map[string]interface{}{
		"id":       e.ID,
		"date":     e.Date,
		"type":     e.Type,
		"duration": e.Duration,
	}
	if e.Title != "" {
		record["title"] = e.Title
	}

	res := schema.MediaSchema.Validate(record)
	errs := appendCalendarCheck(res.Errors, e.Date)
	if len(errs) > 0 {
		return internal.MediaEntry{}, schema.NewValidationError(errs)
	}
	return e, nil
}

// appendCalendarCheck adds the calendar-validity failure for dates that
// already passed the shape pattern, so 2024-02-30 is still rejected while a
// malformed string reports only its pattern error.
func appendCalendarCheck(errs []string, date string) []string {
	if schema.IsDateFormat(date) {
		if _, err := collection.ParseDate(date); err != nil {
			errs = append(errs, "Field date must be a valid calendar date")
		}
	}
	return errs
}
