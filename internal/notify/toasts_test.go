package notify

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToasts_ActiveFiltersExpired(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	toasts := NewToasts(3*time.Second, 4)

	toasts.Notify(Notification{Message: "old", CreatedAt: base})
	toasts.Notify(Notification{Message: "new", CreatedAt: base.Add(2 * time.Second)})

	active := toasts.Active(base.Add(3 * time.Second))
	require.Len(t, active, 1)
	assert.Equal(t, "new", active[0].Message)
	assert.Equal(t, 2, toasts.Len())
}

func TestToasts_ZeroTTLNeverExpires(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	toasts := NewToasts(0, 2)
	toasts.Notify(Notification{Message: "sticky", CreatedAt: base})

	assert.Len(t, toasts.Active(base.Add(24*time.Hour)), 1)
}

func TestToasts_Prune(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	toasts := NewToasts(time.Second, 4)
	toasts.Notify(Notification{Message: "a", CreatedAt: base})
	toasts.Notify(Notification{Message: "b", CreatedAt: base.Add(time.Second)})

	removed := toasts.Prune(base.Add(1500 * time.Millisecond))

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, toasts.Len())
}

func TestToasts_CapacityDropsOldest(t *testing.T) {
	toasts := NewToasts(time.Minute, 2)
	for i := range 3 {
		toasts.Notify(Notification{Message: fmt.Sprint(i)})
	}

	drained := toasts.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, "1", drained[0].Message)
	assert.Equal(t, "2", drained[1].Message)
}

func TestToasts_DrainEmptiesQueue(t *testing.T) {
	toasts := NewToasts(time.Minute, 0)
	toasts.Notify(Notification{Message: "x"})

	assert.Len(t, toasts.Drain(), 1)
	assert.Empty(t, toasts.Drain())
	assert.Zero(t, toasts.Len())
}

func TestToasts_StampsMissingTime(t *testing.T) {
	toasts := NewToasts(time.Minute, 1)
	toasts.Notify(Notification{Message: "x"})

	assert.False(t, toasts.Drain()[0].CreatedAt.IsZero())
}

func TestToasts_ConcurrentNotify(t *testing.T) {
	toasts := NewToasts(time.Minute, 100)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Error(toasts, fmt.Sprint(i))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, toasts.Len())
}
