package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

func resultWith(ids ...string) FetchResult {
	appointments := make([]domain.Appointment, len(ids))
	for i, id := range ids {
		appointments[i] = domain.Appointment{ID: id, Status: domain.StatusScheduled}
	}
	return FetchResult{
		Appointments: appointments,
		StatusStats:  domain.StatusStats{domain.StatusScheduled: len(ids)},
		Pagination:   domain.PaginationInfo{Page: 1, TotalPages: 1, Total: len(ids), Limit: 10},
	}
}

func TestStore_DefaultState(t *testing.T) {
	s := New()
	snap := s.Snapshot()

	assert.True(t, snap.Filter.Equal(domain.DefaultFilterSpec()))
	assert.Empty(t, snap.Appointments)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	assert.Nil(t, snap.LastFetchedAt)
}

func TestStore_BeginFetchAppliesTransition(t *testing.T) {
	s := New()

	gen, filter := s.BeginFetch(func(f domain.FilterSpec) domain.FilterSpec { return f.WithLimit(25) })

	assert.Equal(t, uint64(1), gen)
	assert.Equal(t, 25, filter.Limit)
	assert.Equal(t, 25, s.Filter().Limit)
	assert.True(t, s.Snapshot().Loading)
}

func TestStore_LatestGenerationWins(t *testing.T) {
	s := New()

	genA, _ := s.BeginFetch(nil)
	genB, _ := s.BeginFetch(nil)

	require.True(t, s.CommitFetch(genB, resultWith("b1", "b2")))
	// A resolves after B and must be discarded
	require.False(t, s.CommitFetch(genA, resultWith("a1")))

	snap := s.Snapshot()
	require.Len(t, snap.Appointments, 2)
	assert.Equal(t, "b1", snap.Appointments[0].ID)
	assert.False(t, snap.Loading)
}

func TestStore_StaleFailureIgnored(t *testing.T) {
	s := New()

	genA, _ := s.BeginFetch(nil)
	genB, _ := s.BeginFetch(nil)

	require.True(t, s.CommitFetch(genB, resultWith("b1")))
	assert.False(t, s.FailFetch(genA, "timeout"))

	assert.Empty(t, s.Snapshot().Error)
}

func TestStore_FailureKeepsPreviousData(t *testing.T) {
	s := New()

	gen, _ := s.BeginFetch(nil)
	require.True(t, s.CommitFetch(gen, resultWith("x1", "x2")))

	gen, _ = s.BeginFetch(nil)
	require.True(t, s.FailFetch(gen, "server unavailable"))

	snap := s.Snapshot()
	assert.Len(t, snap.Appointments, 2)
	assert.Equal(t, "server unavailable", snap.Error)
	assert.False(t, snap.Loading)
}

func TestStore_SuccessClearsError(t *testing.T) {
	s := New()

	gen, _ := s.BeginFetch(nil)
	s.FailFetch(gen, "boom")
	gen, _ = s.BeginFetch(nil)
	s.CommitFetch(gen, resultWith("ok"))

	snap := s.Snapshot()
	assert.Empty(t, snap.Error)
	assert.NotNil(t, snap.LastFetchedAt)
}

func TestStore_CommitClampsPage(t *testing.T) {
	s := New()

	gen, _ := s.BeginFetch(func(f domain.FilterSpec) domain.FilterSpec { return f.WithPage(9) })
	s.CommitFetch(gen, FetchResult{Pagination: domain.PaginationInfo{Page: 3, TotalPages: 3, Total: 25, Limit: 10}})

	assert.Equal(t, 3, s.Filter().Page)
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := New()
	gen, _ := s.BeginFetch(nil)
	s.CommitFetch(gen, resultWith("a"))

	snap := s.Snapshot()
	snap.Appointments[0].ID = "mutated"
	snap.StatusStats[domain.StatusCancelled] = 100

	again := s.Snapshot()
	assert.Equal(t, "a", again.Appointments[0].ID)
	assert.NotContains(t, again.StatusStats, domain.StatusCancelled)
}

func TestStore_Appointment(t *testing.T) {
	s := New()
	gen, _ := s.BeginFetch(nil)
	s.CommitFetch(gen, resultWith("a", "b"))

	a, ok := s.Appointment("b")
	assert.True(t, ok)
	assert.Equal(t, "b", a.ID)

	_, ok = s.Appointment("zzz")
	assert.False(t, ok)
}
