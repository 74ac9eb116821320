package model

import (
	"encoding/json"
	"strings"
)

// TagList is an ordered set of idea tags. Clients may submit tags either as
// a JSON array of strings or as a single comma-separated string; both forms
// decode into a TagList.
type TagList []string

// UnmarshalJSON accepts `["a","b"]` or `"a, b"`.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = strings.Split(raw, ",")
	return nil
}

// Normalize trims every tag, drops empties, and removes duplicates while
// preserving first-seen order. A nil or all-empty input yields an empty,
// non-nil list so it serializes as [] rather than null.
func (t TagList) Normalize() TagList {
	out := make(TagList, 0, len(t))
	seen := make(map[string]struct{}, len(t))
	for _, tag := range t {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
