package preference

// Preference is the structured job-search constraint record built up from
// chat utterances. The zero value of a field means "unconstrained"; every
// populated field must come from an explicit textual cue, never from another
// field.
type Preference struct {
	Place      string `json:"place,omitempty"`
	Category   string `json:"category,omitempty"`
	WorkDays   string `json:"workDays,omitempty"`
	StartTime  string `json:"startTime,omitempty"`
	EndTime    string `json:"endTime,omitempty"`
	HourlyWage int    `json:"hourlyWage,omitempty"`

	// Manual-only fields: carried on the record but never set by Extract.
	Gender       string `json:"gender,omitempty"`
	Age          string `json:"age,omitempty"`
	Requirements string `json:"requirements,omitempty"`
}

func (p Preference) IsEmpty() bool {
	return p == Preference{}
}

// Merge overlays partial onto base with field-level overwrite: populated
// fields of partial replace the corresponding base fields, unset fields
// leave base untouched. StartTime and EndTime travel as a linked pair.
func Merge(base, partial Preference) Preference {
	out := base
	if partial.Place != "" {
		out.Place = partial.Place
	}
	if partial.Category != "" {
		out.Category = partial.Category
	}
	if partial.WorkDays != "" {
		out.WorkDays = partial.WorkDays
	}
	if partial.StartTime != "" && partial.EndTime != "" {
		out.StartTime = partial.StartTime
		out.EndTime = partial.EndTime
	}
	if partial.HourlyWage > 0 {
		out.HourlyWage = partial.HourlyWage
	}
	if partial.Gender != "" {
		out.Gender = partial.Gender
	}
	if partial.Age != "" {
		out.Age = partial.Age
	}
	if partial.Requirements != "" {
		out.Requirements = partial.Requirements
	}
	return out
}

// Action is a navigation affordance attached to some bot replies.
type Action struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}
