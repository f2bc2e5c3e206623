// Package schema implements the declarative record validator the entry
// factories run raw input through before anything reaches a collection.
package schema

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"
)

type Property struct {
	Type    string
	Enum    []string
	Pattern string
	Minimum *int
	Maximum *int
}

type Schema struct {
	Required             []string
	Properties           map[string]Property
	AdditionalProperties bool
}

// Result reports every violated constraint; Valid is true iff Errors is empty.
type Result struct {
	Valid  bool
	Errors []string
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

func compiledPattern(pattern string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[pattern]; ok {
		return re
	}
	re := regexp.MustCompile(pattern)
	patternCache[pattern] = re
	return re
}

// Validate checks record against the schema and accumulates one message per
// violated constraint; it never stops at the first failure. Required fields
// are reported in declaration order, then record keys in sorted order so the
// error list is deterministic.
func (s *Schema) Validate(record map[string]interface{}) Result {
	var errs []string

	for _, name := range s.Required {
		if _, ok := record[name]; !ok {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", name))
		}
	}

	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := record[key]
		prop, ok := s.Properties[key]
		if !ok {
			if !s.AdditionalProperties {
				errs = append(errs, fmt.Sprintf("Additional property not allowed: %s", key))
			}
			continue
		}

		switch prop.Type {
		case "string":
			str, ok := value.(string)
			if !ok {
				errs = append(errs, fmt.Sprintf("Field %s must be a string", key))
				continue
			}
			if len(prop.Enum) > 0 && !containsString(prop.Enum, str) {
				errs = append(errs, fmt.Sprintf("Field %s must be one of: %s", key, strings.Join(prop.Enum, ", ")))
			}
			if prop.Pattern != "" && !compiledPattern(prop.Pattern).MatchString(str) {
				errs = append(errs, fmt.Sprintf("Field %s does not match pattern %s", key, prop.Pattern))
			}
		case "integer":
			n, ok := integerValue(value)
			if !ok {
				errs = append(errs, fmt.Sprintf("Field %s must be an integer", key))
				continue
			}
			if prop.Minimum != nil && n < *prop.Minimum {
				errs = append(errs, fmt.Sprintf("Field %s must be at least %d", key, *prop.Minimum))
			}
			if prop.Maximum != nil && n > *prop.Maximum {
				errs = append(errs, fmt.Sprintf("Field %s must be at most %d", key, *prop.Maximum))
			}
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// integerValue accepts native ints and JSON-decoded numbers, which arrive as
// float64. Fractional values, NaN and infinities are not integers.
func integerValue(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float32:
		return integerValue(float64(n))
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
