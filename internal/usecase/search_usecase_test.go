package usecase

import (
	"context"
	"errors"
	"testing"

	"jobtalk/internal/domain/market"
)

func searchFixtureJobs() []market.Job {
	return []market.Job{
		{ID: 1, Title: "홀 서빙", Location: "서울 강남구", Category: "서빙", HourlyWage: 13000},
		{ID: 2, Title: "주방 보조", Location: "서울 서초구", Category: "주방", HourlyWage: 11000},
		{ID: 3, Title: "홀 서빙", Location: "서울 서초구", Category: "서빙", HourlyWage: 10000},
	}
}

func TestSearchJobs_SessionPreferencesSeedCriteria(t *testing.T) {
	chat := NewChatUsecase(newFakeStore(), nil, 0, nil)
	ctx := context.Background()
	if _, _, err := chat.Submit(ctx, "s1", "강남에서 서빙 시급 12,000원"); err != nil {
		t.Fatal(err)
	}

	up := &fakeUpstream{jobs: searchFixtureJobs()}
	search := NewSearchUsecase(up, chat, nil)

	jobs, err := search.SearchJobs(ctx, JobSearchParams{SessionID: "s1"})
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != 1 {
		t.Fatalf("jobs = %+v, want only the 강남 서빙 posting", jobs)
	}
}

func TestSearchJobs_ExplicitParamsOverrideSession(t *testing.T) {
	chat := NewChatUsecase(newFakeStore(), nil, 0, nil)
	ctx := context.Background()
	if _, _, err := chat.Submit(ctx, "s1", "강남에서 서빙"); err != nil {
		t.Fatal(err)
	}

	up := &fakeUpstream{jobs: searchFixtureJobs()}
	search := NewSearchUsecase(up, chat, nil)

	jobs, err := search.SearchJobs(ctx, JobSearchParams{SessionID: "s1", Region: "서초구"})
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 || jobs[0].ID != 3 {
		t.Fatalf("jobs = %+v, want the 서초구 서빙 posting", jobs)
	}
}

func TestSearchJobs_NoSessionUsesBareCriteria(t *testing.T) {
	up := &fakeUpstream{jobs: searchFixtureJobs()}
	search := NewSearchUsecase(up, nil, nil)

	jobs, err := search.SearchJobs(context.Background(), JobSearchParams{MinWage: 11000})
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
}

func TestSearchJobs_FetchFailureYieldsEmptyResult(t *testing.T) {
	up := &fakeUpstream{jobsErr: errors.New("connection refused")}
	search := NewSearchUsecase(up, nil, nil)

	jobs, err := search.SearchJobs(context.Background(), JobSearchParams{})
	if err != nil {
		t.Fatalf("fetch failure must not surface: %v", err)
	}
	if jobs == nil || len(jobs) != 0 {
		t.Fatalf("jobs = %v, want empty non-nil slice", jobs)
	}
}

func TestSearchCandidates_RefiltersLocally(t *testing.T) {
	// The backend ignores its query parameters here; the local pass must
	// still narrow the result.
	up := &fakeUpstream{cands: []market.Candidate{
		{ID: 10, Name: "김영수", PreferredRegion: "서울", PreferredDistrict: "강남구", Suitability: 80},
		{ID: 11, Name: "박미정", PreferredRegion: "서울", PreferredDistrict: "서초구", Suitability: 90},
	}}
	search := NewSearchUsecase(up, nil, nil)

	cands, err := search.SearchCandidates(context.Background(), CandidateSearchParams{Region: "강남구"})
	if err != nil {
		t.Fatal(err)
	}
	if len(cands) != 1 || cands[0].ID != 10 {
		t.Fatalf("cands = %+v, want only the 강남구 candidate", cands)
	}
}

func TestSearchCandidates_FetchFailureYieldsEmptyResult(t *testing.T) {
	up := &fakeUpstream{candsErr: errors.New("connection refused")}
	search := NewSearchUsecase(up, nil, nil)

	cands, err := search.SearchCandidates(context.Background(), CandidateSearchParams{})
	if err != nil {
		t.Fatalf("fetch failure must not surface: %v", err)
	}
	if cands == nil || len(cands) != 0 {
		t.Fatalf("cands = %v, want empty non-nil slice", cands)
	}
}
