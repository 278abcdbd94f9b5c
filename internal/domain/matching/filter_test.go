package matching

import (
	"reflect"
	"testing"

	"jobtalk/internal/domain/market"
)

func sampleJobs() []market.Job {
	return []market.Job{
		{ID: 1, Title: "홀 서빙 직원", Company: "한식당 가온", Location: "서울 강남구 역삼동", Category: "서빙", HourlyWage: 13000},
		{ID: 2, Title: "주방 보조", Company: "분식왕", Location: "서울 서초구", JobCategories: []string{"주방", "조리"}, Salary: 11000},
		{ID: 3, Title: "매장 청소", Company: "클린존", Location: "인천 부평구", Categories: []string{"청소"}, HourlyWage: 10500},
		{ID: 4, Title: "야간 경비", Company: "세이프빌딩", Location: "서울 강남구", JobCategory: "경비", HourlyWage: 12000},
	}
}

func jobIDs(jobs []market.Job) []int64 {
	ids := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func TestFilterJobs(t *testing.T) {
	tests := []struct {
		name     string
		criteria JobCriteria
		want     []int64
	}{
		{"no criteria keeps everything", JobCriteria{}, []int64{1, 2, 3, 4}},
		{"sentinel counts as inactive", JobCriteria{Region: All, Category: All}, []int64{1, 2, 3, 4}},
		{"region substring", JobCriteria{Region: "강남구"}, []int64{1, 4}},
		{"category across variant fields", JobCriteria{Category: "조리"}, []int64{2}},
		{"category in plural list", JobCriteria{Category: "청소"}, []int64{3}},
		{"wage inclusive lower bound", JobCriteria{MinWage: 12000}, []int64{1, 4}},
		{"wage falls back to salary", JobCriteria{MinWage: 11000}, []int64{1, 2, 4}},
		{"query over text fields", JobCriteria{Query: "보조"}, []int64{2}},
		{"criteria are ANDed", JobCriteria{Region: "서울", MinWage: 12500}, []int64{1}},
		{"over-constrained yields empty", JobCriteria{Region: "부산"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := jobIDs(FilterJobs(sampleJobs(), tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterJobs ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterJobs_Idempotent(t *testing.T) {
	c := JobCriteria{Region: "서울", MinWage: 11000}
	once := FilterJobs(sampleJobs(), c)
	twice := FilterJobs(once, c)
	if !reflect.DeepEqual(jobIDs(once), jobIDs(twice)) {
		t.Fatalf("second pass changed the result: %v vs %v", jobIDs(once), jobIDs(twice))
	}
}

func TestFilterJobs_TighteningIsMonotonic(t *testing.T) {
	loose := FilterJobs(sampleJobs(), JobCriteria{Region: "서울"})
	tight := FilterJobs(sampleJobs(), JobCriteria{Region: "서울", MinWage: 12000})
	if len(tight) > len(loose) {
		t.Fatalf("tightening grew the result: %d > %d", len(tight), len(loose))
	}
	looseSet := map[int64]bool{}
	for _, id := range jobIDs(loose) {
		looseSet[id] = true
	}
	for _, id := range jobIDs(tight) {
		if !looseSet[id] {
			t.Fatalf("job %d appears only in the tighter result", id)
		}
	}
}

func sampleCandidates() []market.Candidate {
	return []market.Candidate{
		{ID: 10, Name: "김영수", PreferredRegion: "서울", PreferredDistrict: "강남구", PreferredDong: "전체", Category: "서빙", Suitability: 82},
		{ID: 11, Name: "박미정", PreferredRegion: "서울", PreferredDistrict: "서초구", PreferredDong: "방배동", JobCategories: []string{"주방"}, Licenses: []string{"조리기능사"}, Suitability: 91},
		{ID: 12, Name: "이철호", Location: "경기 성남시", Category: "경비", Suitability: 65},
	}
}

func candidateIDs(cands []market.Candidate) []int64 {
	ids := make([]int64, 0, len(cands))
	for _, c := range cands {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestFilterCandidates(t *testing.T) {
	tests := []struct {
		name     string
		criteria CandidateCriteria
		want     []int64
	}{
		{"no criteria keeps everything", CandidateCriteria{}, []int64{10, 11, 12}},
		{"region uses the display string", CandidateCriteria{Region: "강남구"}, []int64{10}},
		{"region falls back to raw location", CandidateCriteria{Region: "성남시"}, []int64{12}},
		{"license substring", CandidateCriteria{License: "조리"}, []int64{11}},
		{"suitability inclusive bound", CandidateCriteria{MinSuitability: 82}, []int64{10, 11}},
		{"category variant fields", CandidateCriteria{Category: "주방"}, []int64{11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := candidateIDs(FilterCandidates(sampleCandidates(), tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterCandidates ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegionDisplay(t *testing.T) {
	tests := []struct {
		name                           string
		region, district, dong, rawLoc string
		want                           string
	}{
		{"full triple", "서울", "강남구", "역삼동", "", "서울 강남구 역삼동"},
		{"sentinel dong dropped", "서울", "강남구", "전체", "", "서울 강남구"},
		{"missing middle part", "서울", "", "역삼동", "", "서울 역삼동"},
		{"raw location fallback", "", "", "", "경기 성남시", "경기 성남시"},
		{"all empty", "", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RegionDisplay(tt.region, tt.district, tt.dong, tt.rawLoc)
			if got != tt.want {
				t.Fatalf("RegionDisplay = %q, want %q", got, tt.want)
			}
		})
	}
}
