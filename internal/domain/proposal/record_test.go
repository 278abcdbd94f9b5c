package proposal

import "testing"

func TestNormalize_FieldNameVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want int64
	}{
		{"camelCase", map[string]any{"jobseekerId": float64(7)}, 7},
		{"capital S variant", map[string]any{"jobSeekerId": float64(7)}, 7},
		{"snake_case", map[string]any{"jobseeker_id": float64(7)}, 7},
		{"seekerId alias", map[string]any{"seekerId": float64(7)}, 7},
		{"userId alias", map[string]any{"userId": float64(7)}, 7},
		{"string encoded", map[string]any{"jobseekerId": "7"}, 7},
		{"nested jobseeker object", map[string]any{"jobseeker": map[string]any{"id": float64(7)}}, 7},
		{"nested jobSeeker object", map[string]any{"jobSeeker": map[string]any{"id": "7"}}, 7},
		{"nested user object", map[string]any{"user": map[string]any{"id": float64(7)}}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := Normalize(tt.raw)
			if !ok {
				t.Fatal("expected a jobseeker id to be recovered")
			}
			if rec.JobseekerID != tt.want {
				t.Fatalf("jobseekerId = %d, want %d", rec.JobseekerID, tt.want)
			}
		})
	}
}

func TestNormalize_DirectKeyBeatsNestedObject(t *testing.T) {
	raw := map[string]any{
		"jobseekerId": float64(3),
		"user":        map[string]any{"id": float64(9)},
	}
	rec, ok := Normalize(raw)
	if !ok || rec.JobseekerID != 3 {
		t.Fatalf("got (%d, %v), want direct key to win with 3", rec.JobseekerID, ok)
	}
}

func TestNormalize_CompanionFields(t *testing.T) {
	raw := map[string]any{
		"jobseekerId": float64(7),
		"job_id":      float64(42),
		"companyId":   "5",
		"createdAt":   "2026-08-01T09:30:00Z",
	}
	rec, ok := Normalize(raw)
	if !ok {
		t.Fatal("expected normalization to succeed")
	}
	if rec.JobID != 42 {
		t.Errorf("jobId = %d, want 42", rec.JobID)
	}
	if rec.EmployerID != 5 {
		t.Errorf("employerId = %d, want 5", rec.EmployerID)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("createdAt not parsed")
	}
}

func TestNormalize_Unrecoverable(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"empty element", map[string]any{}},
		{"unrelated keys only", map[string]any{"jobId": float64(42)}},
		{"non-numeric string", map[string]any{"jobseekerId": "abc"}},
		{"fractional float", map[string]any{"jobseekerId": 7.5}},
		{"nested object without id", map[string]any{"user": map[string]any{"name": "kim"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Normalize(tt.raw); ok {
				t.Fatal("expected normalization to report false")
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"7", 7, true},
		{" 7 ", 7, true},
		{"", 0, false},
		{"abc", 0, false},
		{"7.5", 0, false},
		{"-3", 0, false},
		{"0", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseID(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseID(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
