package engine

import (
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amberMocks "github.com/o6elisk/amber-scan-simple/internal/amber/mocks"
	"github.com/o6elisk/amber-scan-simple/internal/metrics"
	notifyMocks "github.com/o6elisk/amber-scan-simple/internal/notify/mocks"
	storeMocks "github.com/o6elisk/amber-scan-simple/internal/store/mocks"
)

func newSchedulerTestEngine(t *testing.T) *Engine {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	mc := amberMocks.NewMockClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	return newTestEngine(ms, mc, mn)
}

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	eng := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, 30*time.Minute, quietLogger())
	require.NoError(t, err)

	entries := sched.Entries()
	assert.Len(t, entries, 1)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_PublishesNextCycleTimestamp(t *testing.T) {
	t.Parallel()

	eng := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, 30*time.Minute, quietLogger())
	require.NoError(t, err)

	// Start so that cron populates Next times.
	sched.Start()
	defer sched.Stop()

	next := ptestutil.ToFloat64(metrics.SchedulerNextCycleTimestamp)
	assert.Greater(t, next, float64(0), "next cycle timestamp should be set")
}
