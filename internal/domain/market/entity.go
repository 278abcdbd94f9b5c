package market

// Job is a posting as returned by the marketplace backend. The backend's
// schema is not stable across call sites: category data may arrive in any of
// the singular/plural fields, and pay may arrive as hourlyWage or salary.
type Job struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Category       string   `json:"category"`
	Categories     []string `json:"categories"`
	JobCategory    string   `json:"jobCategory"`
	JobCategories  []string `json:"jobCategories"`
	HourlyWage     int      `json:"hourlyWage"`
	Salary         int      `json:"salary"`
	WorkDays       string   `json:"workDays"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Qualifications []string `json:"qualifications"`
}

// Wage returns the pay figure regardless of which field the backend used.
func (j Job) Wage() int {
	if j.HourlyWage > 0 {
		return j.HourlyWage
	}
	return j.Salary
}

// Candidate is a job seeker as seen by the employer side.
type Candidate struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Location          string   `json:"location"`
	Category          string   `json:"category"`
	Categories        []string `json:"categories"`
	JobCategory       string   `json:"jobCategory"`
	JobCategories     []string `json:"jobCategories"`
	PreferredRegion   string   `json:"preferredRegion"`
	PreferredDistrict string   `json:"preferredDistrict"`
	PreferredDong     string   `json:"preferredDong"`
	Licenses          []string `json:"licenses"`
	Suitability       int      `json:"suitability"`
	DesiredWage       int      `json:"desiredWage"`
}
