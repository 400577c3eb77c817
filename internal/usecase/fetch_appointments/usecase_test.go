package fetch_appointments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/integrations/barberapi"
	"github.com/m04kA/SMC-BarberDashboard/internal/state"
	"github.com/m04kA/SMC-BarberDashboard/pkg/logger"
)

type call struct {
	filter domain.FilterSpec
	page   *barberapi.AppointmentPage
	err    error
}

// fakeClient отдает ответы по очереди, каждый вызов можно задержать
type fakeClient struct {
	mu      sync.Mutex
	calls   []domain.FilterSpec
	results []call
	gates   map[int]chan struct{}
	entered chan int
}

func (f *fakeClient) ListBusinessAppointments(ctx context.Context, _ string, filter domain.FilterSpec) (*barberapi.AppointmentPage, error) {
	f.mu.Lock()
	idx := len(f.calls)
	f.calls = append(f.calls, filter)
	res := f.results[idx]
	gate := f.gates[idx]
	f.mu.Unlock()

	if f.entered != nil {
		f.entered <- idx
	}
	if gate != nil {
		<-gate
	}
	return res.page, res.err
}

type staleCounter struct {
	mu sync.Mutex
	n  int
}

func (s *staleCounter) IncStaleResponse() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
}

func pageOf(ids ...string) *barberapi.AppointmentPage {
	appointments := make([]domain.Appointment, len(ids))
	for i, id := range ids {
		appointments[i] = domain.Appointment{ID: id, Status: domain.StatusScheduled}
	}
	return &barberapi.AppointmentPage{
		Appointments: appointments,
		StatusStats:  domain.StatusStats{domain.StatusScheduled: len(ids)},
		Pagination:   domain.PaginationInfo{Page: 1, TotalPages: 1, Total: len(ids), Limit: domain.DefaultLimit},
	}
}

func ids(appointments []domain.Appointment) []string {
	out := make([]string, len(appointments))
	for i, a := range appointments {
		out[i] = a.ID
	}
	return out
}

func TestUseCase_Execute_Success(t *testing.T) {
	client := &fakeClient{results: []call{{page: pageOf("a1", "a2")}}}
	store := state.New()
	uc := NewUseCase(client, store, &staleCounter{}, logger.NewNop())

	filter := domain.DefaultFilterSpec().WithBarber("b1")
	applied, err := uc.Execute(context.Background(), "biz-1", filter)
	require.NoError(t, err)
	assert.True(t, applied)

	require.Len(t, client.calls, 1)
	assert.True(t, filter.Equal(client.calls[0]))

	snap := store.Snapshot()
	assert.Equal(t, []string{"a1", "a2"}, ids(snap.Appointments))
	assert.Equal(t, 2, snap.StatusStats[domain.StatusScheduled])
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	assert.NotNil(t, snap.LastFetchedAt)
	assert.True(t, filter.Equal(snap.Filter))
}

func TestUseCase_EmptyBusinessID(t *testing.T) {
	client := &fakeClient{}
	uc := NewUseCase(client, state.New(), &staleCounter{}, logger.NewNop())

	_, err := uc.Refresh(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, client.calls)
}

func TestUseCase_FailureKeepsPreviousData(t *testing.T) {
	client := &fakeClient{results: []call{
		{page: pageOf("a1")},
		{err: fmt.Errorf("%w: status 503", barberapi.ErrServer)},
	}}
	store := state.New()
	uc := NewUseCase(client, store, &staleCounter{}, logger.NewNop())

	_, err := uc.Refresh(context.Background(), "biz")
	require.NoError(t, err)

	applied, err := uc.Refresh(context.Background(), "biz")
	assert.True(t, applied)
	assert.ErrorIs(t, err, ErrUpstream)

	snap := store.Snapshot()
	assert.Equal(t, []string{"a1"}, ids(snap.Appointments))
	assert.Equal(t, "barbershop API is unavailable", snap.Error)
	assert.False(t, snap.Loading)
}

func TestUseCase_Unauthorized(t *testing.T) {
	client := &fakeClient{results: []call{{err: barberapi.ErrUnauthorized}}}
	store := state.New()
	uc := NewUseCase(client, store, &staleCounter{}, logger.NewNop())

	_, err := uc.Refresh(context.Background(), "biz")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.NotEmpty(t, store.Snapshot().Error)
}

// Запросы A и B отправлены по порядку, A завершается после B: в состоянии остается B
func TestUseCase_LatestGenerationWins(t *testing.T) {
	gateA := make(chan struct{})
	gateB := make(chan struct{})
	client := &fakeClient{
		results: []call{{page: pageOf("from-a")}, {page: pageOf("from-b")}},
		gates:   map[int]chan struct{}{0: gateA, 1: gateB},
		entered: make(chan int, 2),
	}
	store := state.New()
	stale := &staleCounter{}
	uc := NewUseCase(client, store, stale, logger.NewNop())

	type outcome struct {
		applied bool
		err     error
	}
	doneA := make(chan outcome, 1)
	doneB := make(chan outcome, 1)

	go func() {
		applied, err := uc.ExecuteTransition(context.Background(), "biz", func(f domain.FilterSpec) domain.FilterSpec {
			return f.WithBarber("a")
		})
		doneA <- outcome{applied, err}
	}()
	require.Equal(t, 0, <-client.entered)

	go func() {
		applied, err := uc.ExecuteTransition(context.Background(), "biz", func(f domain.FilterSpec) domain.FilterSpec {
			return f.WithBarber("b")
		})
		doneB <- outcome{applied, err}
	}()
	require.Equal(t, 1, <-client.entered)

	close(gateB)
	resB := <-doneB
	require.NoError(t, resB.err)
	assert.True(t, resB.applied)

	close(gateA)
	resA := <-doneA
	require.NoError(t, resA.err)
	assert.False(t, resA.applied)

	snap := store.Snapshot()
	assert.Equal(t, []string{"from-b"}, ids(snap.Appointments))
	require.NotNil(t, snap.Filter.BarberID)
	assert.Equal(t, "b", *snap.Filter.BarberID)
	assert.False(t, snap.Loading)
	assert.Equal(t, 1, stale.n)
}

// Поздняя ошибка устаревшего запроса не затирает состояние более нового
func TestUseCase_StaleFailureIgnored(t *testing.T) {
	gateA := make(chan struct{})
	client := &fakeClient{
		results: []call{{err: errors.New("boom")}, {page: pageOf("fresh")}},
		gates:   map[int]chan struct{}{0: gateA},
		entered: make(chan int, 2),
	}
	store := state.New()
	stale := &staleCounter{}
	uc := NewUseCase(client, store, stale, logger.NewNop())

	done := make(chan bool, 1)
	go func() {
		applied, _ := uc.Refresh(context.Background(), "biz")
		done <- applied
	}()
	<-client.entered

	applied, err := uc.Refresh(context.Background(), "biz")
	<-client.entered
	require.NoError(t, err)
	require.True(t, applied)

	close(gateA)
	assert.False(t, <-done)

	snap := store.Snapshot()
	assert.Equal(t, []string{"fresh"}, ids(snap.Appointments))
	assert.Empty(t, snap.Error)
	assert.Equal(t, 1, stale.n)
}
