package schema

import "regexp"

const (
	DatePattern = `^\d{4}-\d{2}-\d{2}$`
	UUIDPattern = `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`
)

// MediaTypes is the allowed set for MediaEntry.Type.
var MediaTypes = []string{"book", "video", "podcast", "music"}

var (
	happinessMin = -2
	happinessMax = 2
	durationMin  = 1
)

var HappinessSchema = &Schema{
	Required: []string{"date", "happiness"},
	Properties: map[string]Property{
		"date":      {Type: "string", Pattern: DatePattern},
		"happiness": {Type: "integer", Minimum: &happinessMin, Maximum: &happinessMax},
	},
	AdditionalProperties: false,
}

var MediaSchema = &Schema{
	Required: []string{"date", "type", "duration"},
	Properties: map[string]Property{
		"id":       {Type: "string", Pattern: UUIDPattern},
		"date":     {Type: "string", Pattern: DatePattern},
		"type":     {Type: "string", Enum: MediaTypes},
		"duration": {Type: "integer", Minimum: &durationMin},
		"title":    {Type: "string"},
	},
	AdditionalProperties: false,
}

var dateRe = regexp.MustCompile(DatePattern)

// IsDateFormat reports whether s has the YYYY-MM-DD shape. It says nothing
// about calendar validity; see collection.ParseDate for that.
func IsDateFormat(s string) bool {
	return dateRe.MatchString(s)
}
