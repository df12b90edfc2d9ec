package impl

import (
	"testing"
	"time"

	domainerrors "eventpulse/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceGuard_WrapsFailures(t *testing.T) {
	guard := newSourceGuard(newTestEngagementConfig(), newDiscardLogger(), "favorites")

	_, err := guardedFetch(guard, "favorites", func() ([]int, error) {
		return nil, errors.New("timeout")
	})

	var dsErr *domainerrors.DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, "favorites", dsErr.Source())

	got, err := guardedFetch(guard, "favorites", func() ([]int, error) {
		return []int{1, 2}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestSourceGuard_OpensAfterConsecutiveFailures(t *testing.T) {
	cfg := newTestEngagementConfig()
	cfg.BreakerFailureThreshold = 2
	cfg.BreakerOpenTimeout = time.Hour
	guard := newSourceGuard(cfg, newDiscardLogger(), "popularity")

	calls := 0
	failing := func() (int, error) {
		calls++

		return 0, errors.New("feed down")
	}

	for range 2 {
		_, err := guardedFetch(guard, "popularity", failing)
		require.Error(t, err)
	}

	_, err := guardedFetch(guard, "popularity", failing)
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, calls, "an open breaker does not call the source")
}

func TestSourceGuard_UnknownSource(t *testing.T) {
	guard := newSourceGuard(newTestEngagementConfig(), newDiscardLogger())

	_, err := guardedFetch(guard, "nope", func() (int, error) { return 1, nil })

	assert.Error(t, err)
}
