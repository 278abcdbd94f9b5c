package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"
	"time"

	"jobtalk/internal/infrastructure/upstream"
	"jobtalk/internal/ws"
)

// NoticeTTL is how long a transient notice stays current before it expires.
const NoticeTTL = 2500 * time.Millisecond

type Notice struct {
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

type ProposalUsecase interface {
	Hydrate(ctx context.Context, employerID int64) ([]int64, error)
	ProposedIDs(employerID int64) []int64
	Propose(ctx context.Context, employerID, jobID, jobseekerID int64) error
	Cancel(ctx context.Context, employerID, jobID, jobseekerID int64) error
	CurrentNotice() *Notice
}

// Proposals reconciles "has this employer proposed to this candidate" across
// the authoritative backend list, an optimistic in-memory set per employer,
// and a persisted mirror of that set. The mirror is written after every
// mutation so the state survives restarts even when the backend round-trip
// fails.
type Proposals struct {
	upstream upstream.Client
	store    Store
	logger   *log.Logger

	mu        sync.Mutex
	proposed  map[int64]map[int64]struct{}
	busy      map[string]struct{}
	notice    *Notice
	noticeGen int
}

func NewProposalUsecase(up upstream.Client, store Store, logger *log.Logger) *Proposals {
	return &Proposals{
		upstream: up,
		store:    store,
		logger:   logger,
		proposed: make(map[int64]map[int64]struct{}),
		busy:     make(map[string]struct{}),
	}
}

// cacheBucket falls back to a guest bucket when no employer is resolved, so
// unauthenticated reads still have somewhere to persist.
func cacheBucket(employerID int64) string {
	if employerID <= 0 {
		return "proposedIds:guest"
	}
	return "proposedIds:" + strconv.FormatInt(employerID, 10)
}

func pairKey(employerID, jobseekerID int64) string {
	return strconv.FormatInt(employerID, 10) + ":" + strconv.FormatInt(jobseekerID, 10)
}

// Hydrate loads the persisted mirror first, then reconciles against the
// backend's authoritative list. A backend that cannot be reached is never
// read as "no proposals": on total failure the cached set stays untouched.
func (u *Proposals) Hydrate(ctx context.Context, employerID int64) ([]int64, error) {
	cached, err := u.store.SetMembers(ctx, cacheBucket(employerID))
	if err != nil && u.logger != nil {
		u.logger.Printf("[Proposal] mirror read error employer=%d err=%v", employerID, err)
	}
	u.union(employerID, cached)

	records, err := u.upstream.ProposalsByEmployer(ctx, employerID)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Proposal] hydration fallback exhausted employer=%d err=%v", employerID, err)
		}
		return u.ProposedIDs(employerID), nil
	}

	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.JobseekerID)
	}
	u.union(employerID, ids)
	if err := u.store.SetAdd(ctx, cacheBucket(employerID), ids...); err != nil && u.logger != nil {
		u.logger.Printf("[Proposal] mirror write error employer=%d err=%v", employerID, err)
	}

	return u.ProposedIDs(employerID), nil
}

func (u *Proposals) ProposedIDs(employerID int64) []int64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	set := u.proposed[employerID]
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Propose sends a proposal. Preconditions are checked in order: resolved
// identity, selected job, pair not already proposed. On upstream failure the
// optimistic set is left untouched and only a notice is shown.
func (u *Proposals) Propose(ctx context.Context, employerID, jobID, jobseekerID int64) error {
	if employerID <= 0 {
		return ErrNoIdentity
	}
	if jobID <= 0 {
		return ErrNoJobSelected
	}
	if jobseekerID <= 0 {
		return ErrMalformedID
	}

	u.mu.Lock()
	if _, ok := u.proposed[employerID][jobseekerID]; ok {
		u.mu.Unlock()
		return ErrAlreadyProposed
	}
	key := pairKey(employerID, jobseekerID)
	if _, ok := u.busy[key]; ok {
		u.mu.Unlock()
		return ErrBusy
	}
	u.busy[key] = struct{}{}
	u.mu.Unlock()
	defer u.clearBusy(key)

	if err := u.upstream.CreateProposal(ctx, jobID, jobseekerID, employerID); err != nil {
		u.showNotice("제안을 보내지 못했어요. 잠시 후 다시 시도해 주세요.")
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	u.union(employerID, []int64{jobseekerID})
	if err := u.store.SetAdd(ctx, cacheBucket(employerID), jobseekerID); err != nil && u.logger != nil {
		u.logger.Printf("[Proposal] mirror write error employer=%d err=%v", employerID, err)
	}
	u.showNotice("제안을 보냈어요.")
	return nil
}

// Cancel withdraws a proposal. The pair leaves the optimistic set whether or
// not the delete call succeeds, so the UI can never get stuck showing a
// proposal the user tried to withdraw.
func (u *Proposals) Cancel(ctx context.Context, employerID, jobID, jobseekerID int64) error {
	if employerID <= 0 {
		return ErrNoIdentity
	}
	if jobseekerID <= 0 {
		return ErrMalformedID
	}

	key := pairKey(employerID, jobseekerID)
	u.mu.Lock()
	if _, ok := u.busy[key]; ok {
		u.mu.Unlock()
		return ErrBusy
	}
	u.busy[key] = struct{}{}
	u.mu.Unlock()
	defer u.clearBusy(key)

	if err := u.upstream.DeleteProposal(ctx, jobID, jobseekerID, employerID); err != nil && u.logger != nil {
		u.logger.Printf("[Proposal] cancel assumed despite error employer=%d jobseeker=%d err=%v", employerID, jobseekerID, err)
	}

	u.mu.Lock()
	if set, ok := u.proposed[employerID]; ok {
		delete(set, jobseekerID)
	}
	u.mu.Unlock()

	if err := u.store.SetRemove(ctx, cacheBucket(employerID), jobseekerID); err != nil && u.logger != nil {
		u.logger.Printf("[Proposal] mirror remove error employer=%d err=%v", employerID, err)
	}
	u.showNotice("제안을 취소했어요.")
	return nil
}

func (u *Proposals) CurrentNotice() *Notice {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.notice == nil {
		return nil
	}
	n := *u.notice
	return &n
}

func (u *Proposals) union(employerID int64, ids []int64) {
	if len(ids) == 0 {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	set := u.proposed[employerID]
	if set == nil {
		set = make(map[int64]struct{})
		u.proposed[employerID] = set
	}
	for _, id := range ids {
		if id > 0 {
			set[id] = struct{}{}
		}
	}
}

func (u *Proposals) clearBusy(key string) {
	u.mu.Lock()
	delete(u.busy, key)
	u.mu.Unlock()
}

// showNotice replaces any currently displayed notice and schedules its
// expiry; a newer notice invalidates the older timer via the generation
// counter.
func (u *Proposals) showNotice(text string) {
	u.mu.Lock()
	u.noticeGen++
	gen := u.noticeGen
	u.notice = &Notice{Text: text, At: time.Now().UTC()}
	u.mu.Unlock()

	ws.NotifyNotice(text)

	time.AfterFunc(NoticeTTL, func() {
		u.mu.Lock()
		if u.noticeGen == gen {
			u.notice = nil
		}
		u.mu.Unlock()
	})
}

var _ ProposalUsecase = (*Proposals)(nil)
