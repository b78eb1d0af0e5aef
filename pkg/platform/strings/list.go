// Package strings parses list-valued query parameters.
package strings

import (
	"strings"
)

// SplitList splits comma separated values, as in ?status=pending,reviewing. Values
// are trimmed and lowercased; empty and repeated values are dropped and the first
// occurrence order is kept. Repeated parameters may be passed as separate raws.
func SplitList(raws ...string) []string {
	var parts []string
	for _, raw := range raws {
		parts = append(parts, strings.Split(raw, ",")...)
	}
	return DedupeAndTrimLower(parts)
}

// DedupeAndTrimLower trims and lowercases each value, dropping empties and repeats.
func DedupeAndTrimLower(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
