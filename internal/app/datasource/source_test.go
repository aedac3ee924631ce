package datasource_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dalemusser/intelhub/internal/app/datasource"
	"github.com/dalemusser/intelhub/internal/app/system/metrics"
	"github.com/dalemusser/intelhub/internal/domain/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubSource struct {
	logsErr error
}

func (s stubSource) Users(context.Context) ([]models.User, error) {
	return []models.User{{ID: "1"}, {ID: "2"}}, nil
}

func (s stubSource) ActivityLogs(context.Context) ([]models.ActivityLog, error) {
	if s.logsErr != nil {
		return nil, s.logsErr
	}
	return []models.ActivityLog{{ID: "1"}}, nil
}

func (s stubSource) ManualRequests(context.Context) ([]models.ManualRequest, error) {
	return nil, nil
}

func TestInstrument_PassesThroughResults(t *testing.T) {
	src := datasource.Instrument(stubSource{}, metrics.New(prometheus.NewRegistry()), zap.NewNop())

	users, err := src.Users(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)

	logs, err := src.ActivityLogs(context.Background())
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestInstrument_RecordsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	m := metrics.New(prometheus.NewRegistry())
	boom := errors.New("upstream unavailable")
	src := datasource.Instrument(stubSource{logsErr: boom}, m, zap.New(core))

	_, err := src.ActivityLogs(context.Background())
	require.ErrorIs(t, err, boom)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchFailures.WithLabelValues(datasource.SourceActivityLogs)))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "data source lookup failed", entry.Message)
	assert.Equal(t, datasource.SourceActivityLogs, entry.ContextMap()["source"])
}

func TestInstrument_NilDependencies(t *testing.T) {
	src := datasource.Instrument(stubSource{}, nil, nil)
	_, err := src.ManualRequests(context.Background())
	assert.NoError(t, err)
}
