package jobs

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	mu    sync.Mutex
	calls []string
}

func (r *countingRefresher) Refresh(_ context.Context, city, keyword string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, city+"|"+keyword)
	return len(r.calls)
}

func TestEmptySpecDisablesSchedule(t *testing.T) {
	s := NewScheduler(&countingRefresher{}, "", "Kyiv", "", zerolog.Nop())
	require.NoError(t, s.Start())
	assert.Empty(t, s.cron.Entries())
}

func TestInvalidSpecFailsStart(t *testing.T) {
	s := NewScheduler(&countingRefresher{}, "every hour", "Kyiv", "", zerolog.Nop())
	assert.Error(t, s.Start())
}

func TestScheduledRefreshUsesDefaults(t *testing.T) {
	refresher := &countingRefresher{}
	s := NewScheduler(refresher, "0 0 */1 * * *", "Kyiv", "tour", zerolog.Nop())
	require.NoError(t, s.Start())
	defer s.Stop(0)

	require.Len(t, s.cron.Entries(), 1)
	s.cron.Entries()[0].Job.Run()

	assert.Equal(t, []string{"Kyiv|tour"}, refresher.calls)
}
