package dto

type JobResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Category   string `json:"category"`
	HourlyWage int    `json:"hourly_wage"`
	WorkDays   string `json:"work_days,omitempty"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
}

type CandidateResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Region      string `json:"region"`
	Category    string `json:"category"`
	Suitability int    `json:"suitability"`
	Proposed    bool   `json:"proposed"`
}

type ProposalListResponse struct {
	EmployerID  int64   `json:"employer_id"`
	ProposedIDs []int64 `json:"proposed_ids"`
	Notice      string  `json:"notice,omitempty"`
}
