package usecase

import (
	"context"
	"log"
	"strings"

	"jobtalk/internal/domain/market"
	"jobtalk/internal/domain/matching"
	"jobtalk/internal/infrastructure/upstream"
	"jobtalk/internal/preference"
)

type JobSearchParams struct {
	SessionID string
	Query     string
	Region    string
	Category  string
	MinWage   int
}

type CandidateSearchParams struct {
	Query          string
	Region         string
	Category       string
	License        string
	MinSuitability int
}

type SearchUsecase interface {
	SearchJobs(ctx context.Context, params JobSearchParams) ([]market.Job, error)
	SearchCandidates(ctx context.Context, params CandidateSearchParams) ([]market.Candidate, error)
}

type preferenceReader interface {
	History(ctx context.Context, sessionID string) (ChatSession, error)
}

// Search re-evaluates the filter on every call from the latest fetched
// collection; there is no incremental update. Session preferences seed the
// criteria, ad hoc parameters override them.
type Search struct {
	upstream upstream.Client
	chat     preferenceReader
	logger   *log.Logger
}

func NewSearchUsecase(up upstream.Client, chat preferenceReader, logger *log.Logger) *Search {
	return &Search{upstream: up, chat: chat, logger: logger}
}

func (u *Search) SearchJobs(ctx context.Context, params JobSearchParams) ([]market.Job, error) {
	criteria := matching.JobCriteria{
		Query:    params.Query,
		Region:   params.Region,
		Category: params.Category,
		MinWage:  params.MinWage,
	}

	if u.chat != nil && strings.TrimSpace(params.SessionID) != "" {
		session, err := u.chat.History(ctx, params.SessionID)
		if err == nil {
			criteria = seedFromPreference(criteria, session.Preferences)
		}
	}

	jobs, err := u.upstream.ActiveJobs(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Search] job fetch error err=%v", err)
		}
		return []market.Job{}, nil
	}
	return matching.FilterJobs(jobs, criteria), nil
}

func (u *Search) SearchCandidates(ctx context.Context, params CandidateSearchParams) ([]market.Candidate, error) {
	cands, err := u.upstream.Candidates(ctx, upstream.CandidateQuery{
		Search:         params.Query,
		Location:       params.Region,
		License:        params.License,
		MinSuitability: params.MinSuitability,
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Search] candidate fetch error err=%v", err)
		}
		return []market.Candidate{}, nil
	}

	// The backend's own filtering is not trusted across schema variants, so
	// the same predicates run again locally over the fetched collection.
	return matching.FilterCandidates(cands, matching.CandidateCriteria{
		Query:          params.Query,
		Region:         params.Region,
		Category:       params.Category,
		License:        params.License,
		MinSuitability: params.MinSuitability,
	}), nil
}

// seedFromPreference fills only the criteria the caller left blank; explicit
// parameters always win over the chat session.
func seedFromPreference(c matching.JobCriteria, p preference.Preference) matching.JobCriteria {
	if strings.TrimSpace(c.Region) == "" && p.Place != "" {
		c.Region = p.Place
	}
	if strings.TrimSpace(c.Category) == "" && p.Category != "" {
		c.Category = p.Category
	}
	if c.MinWage <= 0 && p.HourlyWage > 0 {
		c.MinWage = p.HourlyWage
	}
	return c
}

var _ SearchUsecase = (*Search)(nil)
