// internal/app/features/dashboard/view.go
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/intelhub/internal/domain/models"
	"github.com/google/uuid"
)

// State is the dashboard's position in a load cycle.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// FailureMessage is the only error text users ever see.
const FailureMessage = "Failed to load dashboard data"

// Snapshot is what the dashboard renders. Stats and RecentActivity are set
// only in StateReady.
type Snapshot struct {
	State          State                  `json:"state"`
	CycleID        string                 `json:"cycle_id,omitempty"`
	Stats          *models.DashboardStats `json:"stats,omitempty"`
	RecentActivity []models.ActivityLog   `json:"recent_activity,omitempty"`
	ManualRequests []models.ManualRequest `json:"manual_requests,omitempty"`
	Error          string                 `json:"error,omitempty"`
	LoadedAt       *time.Time             `json:"loaded_at,omitempty"`
}

// Cycle is one loading -> ready|failed pass. Its context is cancelled once a
// newer cycle begins or the view is closed.
type Cycle struct {
	ID  string
	gen uint64
	ctx context.Context
}

// Context returns the context lookups for this cycle must run under.
func (c *Cycle) Context() context.Context { return c.ctx }

// View owns the transient dashboard state for one consumer. Results from a
// superseded cycle, or arriving after Close, are dropped.
type View struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	closed bool
	snap   Snapshot
}

// NewView returns a view in StateLoading.
func NewView() *View {
	return &View{snap: Snapshot{State: StateLoading}}
}

// Begin starts a new cycle and supersedes any cycle still in flight.
func (v *View) Begin(parent context.Context) *Cycle {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel != nil {
		v.cancel()
	}
	v.gen++
	ctx, cancel := context.WithCancel(parent)
	v.cancel = cancel
	if v.closed {
		cancel()
	}

	c := &Cycle{ID: uuid.NewString(), gen: v.gen, ctx: ctx}
	v.snap = Snapshot{State: StateLoading, CycleID: c.ID}
	return c
}

// Resolve moves c to StateReady. It reports false when c is stale.
func (v *View) Resolve(c *Cycle, res Result) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.isCurrent(c) {
		return false
	}
	stats := res.Stats
	loadedAt := res.LoadedAt
	v.snap = Snapshot{
		State:          StateReady,
		CycleID:        c.ID,
		Stats:          &stats,
		RecentActivity: res.RecentActivity,
		ManualRequests: res.ManualRequests,
		LoadedAt:       &loadedAt,
	}
	v.release()
	return true
}

// Fail moves c to StateFailed, discarding anything it fetched. It reports
// false when c is stale.
func (v *View) Fail(c *Cycle) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.isCurrent(c) {
		return false
	}
	v.snap = Snapshot{State: StateFailed, CycleID: c.ID, Error: FailureMessage}
	v.release()
	return true
}

// Snapshot returns the current state.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snap
}

// Close marks the consumer as gone and cancels the in-flight cycle.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closed = true
	v.release()
}

func (v *View) isCurrent(c *Cycle) bool {
	return c != nil && !v.closed && c.gen == v.gen
}

// release cancels the current cycle context. Caller holds mu.
func (v *View) release() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}
