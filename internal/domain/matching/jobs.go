package matching

import "jobtalk/internal/domain/market"

// FilterJobs returns the subset of jobs satisfying every active criterion.
// It is pure and operates on the full in-memory collection of one fetch.
func FilterJobs(jobs []market.Job, c JobCriteria) []market.Job {
	out := make([]market.Job, 0, len(jobs))
	for _, j := range jobs {
		if !jobMatches(j, c) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func jobMatches(j market.Job, c JobCriteria) bool {
	if !textMatch(c.Query, j.Title, j.Company, j.Location, j.Description) {
		return false
	}
	if !regionMatch(c.Region, j.Location) {
		return false
	}
	cats := flattenCategories(
		[]string{j.Category, j.JobCategory},
		j.Categories, j.JobCategories,
	)
	if !categoryMatch(c.Category, cats) {
		return false
	}
	return thresholdMet(j.Wage(), c.MinWage)
}

// FilterCandidates returns the subset of candidates satisfying every active
// criterion.
func FilterCandidates(cands []market.Candidate, c CandidateCriteria) []market.Candidate {
	out := make([]market.Candidate, 0, len(cands))
	for _, cand := range cands {
		if !candidateMatches(cand, c) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

func candidateMatches(cand market.Candidate, c CandidateCriteria) bool {
	if !textMatch(c.Query, cand.Name, cand.Title, cand.Location, cand.Description) {
		return false
	}
	display := RegionDisplay(cand.PreferredRegion, cand.PreferredDistrict, cand.PreferredDong, cand.Location)
	if !regionMatch(c.Region, display) {
		return false
	}
	cats := flattenCategories(
		[]string{cand.Category, cand.JobCategory},
		cand.Categories, cand.JobCategories,
	)
	if !categoryMatch(c.Category, cats) {
		return false
	}
	if active(c.License) && !textMatch(c.License, cand.Licenses...) {
		return false
	}
	return thresholdMet(cand.Suitability, c.MinSuitability)
}
