// Package proposal owns the canonical shape of an employer-to-candidate
// proposal and the normalization boundary that produces it. The marketplace
// backend exposes the same identifier under several field-name conventions;
// every ingestion point maps raw payloads through this package once, so the
// rest of the system only ever sees canonical numeric ids.
package proposal

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is a proposal in canonical form.
type Record struct {
	JobID       int64     `json:"jobId"`
	JobseekerID int64     `json:"jobseekerId"`
	EmployerID  int64     `json:"employerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Field-name variants observed across backend endpoints, in lookup order.
var jobseekerKeys = []string{"jobseekerId", "jobSeekerId", "jobseeker_id", "seekerId", "userId"}
var jobKeys = []string{"jobId", "job_id", "jobPostingId"}
var employerKeys = []string{"employerId", "employer_id", "companyId"}

// nested object keys whose "id" member carries the jobseeker id.
var jobseekerObjectKeys = []string{"jobseeker", "jobSeeker", "user"}

// Normalize maps one raw, untyped backend element to a canonical Record.
// It reports false when no jobseeker id can be recovered in any known shape.
func Normalize(raw map[string]any) (Record, bool) {
	rec := Record{}

	id, ok := firstNumeric(raw, jobseekerKeys)
	if !ok {
		for _, k := range jobseekerObjectKeys {
			nested, isMap := raw[k].(map[string]any)
			if !isMap {
				continue
			}
			if id, ok = firstNumeric(nested, []string{"id"}); ok {
				break
			}
		}
	}
	if !ok {
		return Record{}, false
	}
	rec.JobseekerID = id

	if v, ok := firstNumeric(raw, jobKeys); ok {
		rec.JobID = v
	}
	if v, ok := firstNumeric(raw, employerKeys); ok {
		rec.EmployerID = v
	}
	if s, ok := raw["createdAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			rec.CreatedAt = t
		}
	}
	return rec, true
}

func firstNumeric(m map[string]any, keys []string) (int64, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		if id, ok := asID(v); ok {
			return id, true
		}
	}
	return 0, false
}

// asID accepts the numeric and numeric-string encodings backends emit.
func asID(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	}
	return 0, false
}

// ParseID validates a user-supplied identifier before it reaches the
// network: it must parse as a finite positive number.
func ParseID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
