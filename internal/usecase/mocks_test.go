package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"jobtalk/internal/domain/market"
	"jobtalk/internal/domain/proposal"
	"jobtalk/internal/infrastructure/upstream"
	"jobtalk/internal/repository"
)

var errStoreDown = errors.New("store unavailable")

// fakeStore is an in-memory Store for tests.
type fakeStore struct {
	mu   sync.Mutex
	kv   map[string][]byte
	sets map[string]map[int64]struct{}

	failSetOps bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		kv:   make(map[string][]byte),
		sets: make(map[string]map[int64]struct{}),
	}
}

func (s *fakeStore) GetJSON(_ context.Context, key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.kv[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (s *fakeStore) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.kv[key] = b
	s.mu.Unlock()
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.kv, key)
	s.mu.Unlock()
	return nil
}

func (s *fakeStore) SetAdd(_ context.Context, key string, ids ...int64) error {
	if s.failSetOps {
		return errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.sets[key]
	if set == nil {
		set = make(map[int64]struct{})
		s.sets[key] = set
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return nil
}

func (s *fakeStore) SetRemove(_ context.Context, key string, ids ...int64) error {
	if s.failSetOps {
		return errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.sets[key], id)
	}
	return nil
}

func (s *fakeStore) SetMembers(_ context.Context, key string) ([]int64, error) {
	if s.failSetOps {
		return nil, errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, 0, len(s.sets[key]))
	for id := range s.sets[key] {
		out = append(out, id)
	}
	return out, nil
}

func (s *fakeStore) setContains(key string, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sets[key][id]
	return ok
}

var _ Store = (*fakeStore)(nil)

// fakeUpstream is a scripted upstream.Client.
type fakeUpstream struct {
	jobs    []market.Job
	jobsErr error

	cands    []market.Candidate
	candsErr error

	proposals    []proposal.Record
	proposalsErr error

	createErr error
	deleteErr error

	createCalls int
	deleteCalls int
}

func (f *fakeUpstream) ActiveJobs(context.Context) ([]market.Job, error) {
	return f.jobs, f.jobsErr
}

func (f *fakeUpstream) Candidates(context.Context, upstream.CandidateQuery) ([]market.Candidate, error) {
	return f.cands, f.candsErr
}

func (f *fakeUpstream) ProposalsByEmployer(context.Context, int64) ([]proposal.Record, error) {
	return f.proposals, f.proposalsErr
}

func (f *fakeUpstream) CreateProposal(context.Context, int64, int64, int64) error {
	f.createCalls++
	return f.createErr
}

func (f *fakeUpstream) DeleteProposal(context.Context, int64, int64, int64) error {
	f.deleteCalls++
	return f.deleteErr
}

var _ upstream.Client = (*fakeUpstream)(nil)

// fakeArchive records transcript writes.
type fakeArchive struct {
	mu      sync.Mutex
	saved   []repository.ConversationMessage
	deleted []string
	saveErr error
}

func (a *fakeArchive) SaveMessage(_ context.Context, m repository.ConversationMessage) error {
	a.mu.Lock()
	a.saved = append(a.saved, m)
	a.mu.Unlock()
	return a.saveErr
}

func (a *fakeArchive) ListBySession(context.Context, string, int) ([]repository.ConversationMessage, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]repository.ConversationMessage(nil), a.saved...), nil
}

func (a *fakeArchive) DeleteBySession(_ context.Context, sessionID string) error {
	a.mu.Lock()
	a.deleted = append(a.deleted, sessionID)
	a.mu.Unlock()
	return nil
}

var _ repository.ConversationRepository = (*fakeArchive)(nil)
