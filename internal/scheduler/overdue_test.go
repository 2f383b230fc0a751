package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketstall/market-api/internal/config"
)

type fakeMarker struct {
	mu    sync.Mutex
	calls []time.Time
	err   error
}

func (f *fakeMarker) MarkOverdueReservations(_ context.Context, today time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, today)
	return int64(len(f.calls)), f.err
}

func testConfig() *config.SchedulerConfig {
	return &config.SchedulerConfig{
		Enabled:   true,
		OverdueAt: "00:05",
		Location:  "UTC",
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	conf := testConfig()
	conf.Location = "Mars/Olympus"
	_, err := New(conf, &fakeMarker{})
	assert.ErrorContains(t, err, "time.LoadLocation")

	conf = testConfig()
	conf.OverdueAt = "25:99"
	_, err = New(conf, &fakeMarker{})
	assert.ErrorContains(t, err, "invalid overdue_at")
}

func TestScheduler_SweepOverdue(t *testing.T) {
	conf := testConfig()
	conf.Location = "Europe/Warsaw"
	marker := &fakeMarker{}

	s, err := New(conf, marker)
	require.NoError(t, err)
	defer s.Shutdown()

	// 23:30 UTC is already the next day in Warsaw.
	s.now = func() time.Time { return time.Date(2026, 7, 1, 23, 30, 0, 0, time.UTC) }
	s.SweepOverdue()

	require.Len(t, marker.calls, 1)
	assert.Equal(t, "2026-07-02", marker.calls[0].Format("2006-01-02"))
}

func TestScheduler_SweepOverdue_Error(t *testing.T) {
	marker := &fakeMarker{err: errors.New("database is locked")}

	s, err := New(testConfig(), marker)
	require.NoError(t, err)
	defer s.Shutdown()

	assert.NotPanics(t, s.SweepOverdue)
	assert.Len(t, marker.calls, 1)
}

func TestScheduler_StartShutdown(t *testing.T) {
	s, err := New(testConfig(), &fakeMarker{})
	require.NoError(t, err)

	s.Start()
	assert.Len(t, s.cron.Jobs(), 1)
	assert.Equal(t, "overdue-sweep", s.cron.Jobs()[0].Name())
	assert.NoError(t, s.Shutdown())
}
