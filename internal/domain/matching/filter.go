// Package matching holds the pure filter predicates applied to collections
// fetched from the marketplace backend. Every criterion is an independent
// predicate; the overall filter is the logical AND of all active criteria.
// An inactive criterion (empty value, the "전체" sentinel, or a zero
// threshold) is always satisfied.
package matching

import "strings"

// All is the sentinel the UI sends for "no constraint".
const All = "전체"

type JobCriteria struct {
	Query    string
	Region   string
	Category string
	MinWage  int
}

type CandidateCriteria struct {
	Query          string
	Region         string
	Category       string
	License        string
	MinSuitability int
}

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != All
}

// textMatch is a case-insensitive substring test: the item matches when any
// of its fields contains the query.
func textMatch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// flattenCategories collects every plausible category-bearing field into one
// lower-cased list. The backend's job/candidate schema is not stable across
// call sites, so membership is tested against the union of all variants.
func flattenCategories(singulars []string, lists ...[]string) []string {
	out := make([]string, 0, len(singulars))
	for _, s := range singulars {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	for _, list := range lists {
		for _, s := range list {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, strings.ToLower(s))
			}
		}
	}
	return out
}

func categoryMatch(selected string, flattened []string) bool {
	if !active(selected) {
		return true
	}
	want := strings.ToLower(strings.TrimSpace(selected))
	for _, c := range flattened {
		if strings.Contains(c, want) {
			return true
		}
	}
	return false
}

// RegionDisplay builds the display string region + district + dong, dropping
// the dong when it is the "전체" sentinel, and falling back to the raw
// location when no structured part is present.
func RegionDisplay(region, district, dong, rawLocation string) string {
	parts := make([]string, 0, 3)
	if s := strings.TrimSpace(region); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(district); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(dong); s != "" && s != All {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return strings.TrimSpace(rawLocation)
	}
	return strings.Join(parts, " ")
}

func regionMatch(selected, display string) bool {
	if !active(selected) {
		return true
	}
	return strings.Contains(display, strings.TrimSpace(selected))
}

// thresholdMet is the inclusive lower bound test; a zero threshold is always
// satisfied.
func thresholdMet(value, threshold int) bool {
	return threshold <= 0 || value >= threshold
}
