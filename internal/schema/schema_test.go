package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHappinessRecord(t *testing.T) {
	res := HappinessSchema.Validate(map[string]interface{}{
		"date":      "2024-10-23",
		"happiness": 2,
	})
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidateMissingRequiredFields(t *testing.T) {
	res := HappinessSchema.Validate(map[string]interface{}{})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		"Missing required field: date",
		"Missing required field: happiness",
	}, res.Errors)
}

func TestValidateAdditionalProperty(t *testing.T) {
	res := HappinessSchema.Validate(map[string]interface{}{
		"date":      "2024-10-23",
		"happiness": 0,
		"note":      "great day",
	})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Additional property not allowed: note"}, res.Errors)
}

func TestValidateHappinessRange(t *testing.T) {
	tests := []struct {
		name      string
		happiness interface{}
		want      string
	}{
		{"below minimum", -3, "Field happiness must be at least -2"},
		{"above maximum", 3, "Field happiness must be at most 2"},
		{"fractional", 1.5, "Field happiness must be an integer"},
		{"string", "2", "Field happiness must be an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := HappinessSchema.Validate(map[string]interface{}{
				"date":      "2024-10-23",
				"happiness": tt.happiness,
			})
			assert.False(t, res.Valid)
			assert.Equal(t, []string{tt.want}, res.Errors)
		})
	}
}

func TestValidateJSONDecodedIntegers(t *testing.T) {
	// JSON numbers decode as float64; integral values must pass.
	res := HappinessSchema.Validate(map[string]interface{}{
		"date":      "2024-10-23",
		"happiness": float64(-2),
	})
	assert.True(t, res.Valid)
}

func TestValidateDatePattern(t *testing.T) {
	res := HappinessSchema.Validate(map[string]interface{}{
		"date":      "23-10-2024",
		"happiness": 0,
	})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Field date does not match pattern " + DatePattern}, res.Errors)
}

func TestValidateDateType(t *testing.T) {
	res := HappinessSchema.Validate(map[string]interface{}{
		"date":      20241023,
		"happiness": 0,
	})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Field date must be a string"}, res.Errors)
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	res := HappinessSchema.Validate(map[string]interface{}{
		"date":      "not-a-date",
		"happiness": 9,
		"extra":     true,
	})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		"Field date does not match pattern " + DatePattern,
		"Additional property not allowed: extra",
		"Field happiness must be at most 2",
	}, res.Errors)
}

func TestValidateMediaRecord(t *testing.T) {
	res := MediaSchema.Validate(map[string]interface{}{
		"id":       "9b2e61f0-6e2a-4d83-9c5f-1a2b3c4d5e6f",
		"date":     "2024-10-20",
		"type":     "book",
		"duration": 45,
		"title":    "Dune",
	})
	assert.True(t, res.Valid)
}

func TestValidateMediaEnum(t *testing.T) {
	res := MediaSchema.Validate(map[string]interface{}{
		"id":       "9b2e61f0-6e2a-4d83-9c5f-1a2b3c4d5e6f",
		"date":     "2024-10-20",
		"type":     "bogus",
		"duration": 45,
	})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Field type must be one of: book, video, podcast, music"}, res.Errors)
}

func TestValidateMediaDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration interface{}
		want     string
	}{
		{"zero", 0, "Field duration must be at least 1"},
		{"fractional", 30.5, "Field duration must be an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := MediaSchema.Validate(map[string]interface{}{
				"id":       "9b2e61f0-6e2a-4d83-9c5f-1a2b3c4d5e6f",
				"date":     "2024-10-20",
				"type":     "book",
				"duration": tt.duration,
			})
			assert.False(t, res.Valid)
			assert.Equal(t, []string{tt.want}, res.Errors)
		})
	}
}

func TestValidateMediaIDPattern(t *testing.T) {
	res := MediaSchema.Validate(map[string]interface{}{
		"id":       "not-a-uuid",
		"date":     "2024-10-20",
		"type":     "music",
		"duration": 10,
	})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Field id does not match pattern " + UUIDPattern}, res.Errors)
}
