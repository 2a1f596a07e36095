package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestManager_GetCreatesAndReuses(t *testing.T) {
	m := NewManager(zap.NewNop())

	first := m.Get("session-a")
	second := m.Get("session-a")
	other := m.Get("session-b")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, m.Len())
}

func TestManager_PurgeIdleDropsStaleCarts(t *testing.T) {
	m := NewManager(zap.NewNop())
	m.Get("stale")

	time.Sleep(5 * time.Millisecond)
	purged := m.PurgeIdle(time.Millisecond)

	assert.Equal(t, 1, purged)
	assert.Equal(t, 0, m.Len())
}

func TestManager_PurgeIdleKeepsActiveCarts(t *testing.T) {
	m := NewManager(zap.NewNop())
	m.Get("active")

	purged := m.PurgeIdle(time.Hour)

	assert.Equal(t, 0, purged)
	assert.Equal(t, 1, m.Len())
}

func TestManager_PurgeIdleSkipsSubmittingCarts(t *testing.T) {
	m := NewManager(zap.NewNop())
	c := m.Get("submitting")
	require.True(t, c.BeginSubmission())

	time.Sleep(5 * time.Millisecond)
	purged := m.PurgeIdle(time.Millisecond)

	assert.Equal(t, 0, purged)
	assert.Equal(t, 1, m.Len())

	c.EndSubmission()
	assert.Equal(t, 1, m.PurgeIdle(time.Millisecond))
}
