// Package datasource defines the three collections the console reads and
// the decorator that instruments them.
//
// Implementations live in subpackages:
//   - mock:       fixed sample data with simulated latency (default)
//   - mongostore: live collections in MongoDB
package datasource

import (
	"context"
	"time"

	"github.com/dalemusser/intelhub/internal/app/system/metrics"
	"github.com/dalemusser/intelhub/internal/domain/models"
	"go.uber.org/zap"
)

// Source names used for metrics and logs.
const (
	SourceUsers          = "users"
	SourceActivityLogs   = "activity_logs"
	SourceManualRequests = "manual_requests"
)

// Source supplies the collections aggregated by the dashboard. Every lookup
// takes no parameters besides ctx, is side-effect free, and may fail.
type Source interface {
	Users(ctx context.Context) ([]models.User, error)
	ActivityLogs(ctx context.Context) ([]models.ActivityLog, error)
	ManualRequests(ctx context.Context) ([]models.ManualRequest, error)
}

// Instrument wraps src so every lookup is timed, counted on failure, and
// logged when it fails. A nil m or logger is allowed.
func Instrument(src Source, m *metrics.Metrics, logger *zap.Logger) Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &instrumented{next: src, m: m, log: logger}
}

type instrumented struct {
	next Source
	m    *metrics.Metrics
	log  *zap.Logger
}

func (s *instrumented) Users(ctx context.Context) ([]models.User, error) {
	start := time.Now()
	out, err := s.next.Users(ctx)
	s.observe(SourceUsers, start, len(out), err)
	return out, err
}

func (s *instrumented) ActivityLogs(ctx context.Context) ([]models.ActivityLog, error) {
	start := time.Now()
	out, err := s.next.ActivityLogs(ctx)
	s.observe(SourceActivityLogs, start, len(out), err)
	return out, err
}

func (s *instrumented) ManualRequests(ctx context.Context) ([]models.ManualRequest, error) {
	start := time.Now()
	out, err := s.next.ManualRequests(ctx)
	s.observe(SourceManualRequests, start, len(out), err)
	return out, err
}

func (s *instrumented) observe(source string, start time.Time, n int, err error) {
	s.m.ObserveFetch(source, start, err)
	if err != nil {
		s.log.Warn("data source lookup failed",
			zap.String("source", source),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return
	}
	s.log.Debug("data source lookup",
		zap.String("source", source),
		zap.Int("records", n),
		zap.Duration("elapsed", time.Since(start)))
}
