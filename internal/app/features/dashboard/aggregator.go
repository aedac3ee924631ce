// internal/app/features/dashboard/aggregator.go
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/intelhub/internal/app/datasource"
	"github.com/dalemusser/intelhub/internal/app/system/metrics"
	"github.com/dalemusser/intelhub/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrDataLoad is returned when any data-source lookup fails.
var ErrDataLoad = errors.New("data load failure")

// Result is a successful fetch cycle.
type Result struct {
	Stats          models.DashboardStats
	RecentActivity []models.ActivityLog
	ManualRequests []models.ManualRequest
	LoadedAt       time.Time
}

// Aggregator fetches the three collections and derives the dashboard.
type Aggregator struct {
	src     datasource.Source
	metrics *metrics.Metrics
	log     *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewAggregator builds an aggregator. timeout bounds one Load; zero means
// the caller's context is the only bound.
func NewAggregator(src datasource.Source, m *metrics.Metrics, timeout time.Duration, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		src:     src,
		metrics: m,
		log:     logger,
		timeout: timeout,
		now:     time.Now,
	}
}

// fetchResult holds the three collections. Each goroutine writes only its
// own field.
type fetchResult struct {
	users    []models.User
	logs     []models.ActivityLog
	requests []models.ManualRequest
}

// Load issues the three lookups concurrently and waits for all of them.
// The first failure cancels the others and Load returns an error wrapping
// ErrDataLoad; nothing fetched in that cycle is returned.
func (a *Aggregator) Load(ctx context.Context) (Result, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(ctx)
	var res fetchResult

	g.Go(func() error {
		users, err := a.src.Users(gctx)
		if err != nil {
			return fmt.Errorf("%s: %w", datasource.SourceUsers, err)
		}
		res.users = users
		return nil
	})
	g.Go(func() error {
		logs, err := a.src.ActivityLogs(gctx)
		if err != nil {
			return fmt.Errorf("%s: %w", datasource.SourceActivityLogs, err)
		}
		res.logs = logs
		return nil
	})
	g.Go(func() error {
		requests, err := a.src.ManualRequests(gctx)
		if err != nil {
			return fmt.Errorf("%s: %w", datasource.SourceManualRequests, err)
		}
		res.requests = requests
		return nil
	})

	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}

	return Result{
		Stats:          ComputeStats(res.users, res.requests),
		RecentActivity: RecentActivity(res.logs, RecentActivityLimit),
		ManualRequests: res.requests,
		LoadedAt:       a.now().UTC(),
	}, nil
}

// Run performs one full cycle against v and returns the settled snapshot.
// If v was superseded or closed meanwhile, the returned snapshot reflects
// whatever v holds now.
func (a *Aggregator) Run(ctx context.Context, v *View) Snapshot {
	cycle := v.Begin(ctx)
	log := a.log.With(zap.String("cycle_id", cycle.ID))

	res, err := a.Load(cycle.Context())
	switch {
	case err == nil:
		if v.Resolve(cycle, res) {
			a.metrics.IncDashboardLoad(metrics.ResultReady)
			log.Debug("dashboard loaded",
				zap.Int("total_officers", res.Stats.TotalOfficers),
				zap.Int("pending_requests", res.Stats.PendingRequests))
		}
	case cycle.Context().Err() != nil && errors.Is(err, context.Canceled):
		// Superseded, closed, or the client went away.
		v.Fail(cycle)
		a.metrics.IncDashboardLoad(metrics.ResultCanceled)
		log.Debug("dashboard load canceled", zap.Error(err))
	default:
		if v.Fail(cycle) {
			a.metrics.IncDashboardLoad(metrics.ResultFailed)
		}
		log.Error("dashboard load failed", zap.Error(err))
	}

	return v.Snapshot()
}
