package list_transitions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/pkg/logger"
)

type fakeJournal struct {
	got     *domain.JournalFilter
	entries []*domain.JournalEntry
	err     error
}

func (f *fakeJournal) List(_ context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error) {
	f.got = &filter
	return f.entries, f.err
}

func serve(j JournalReader, target string) *httptest.ResponseRecorder {
	h := NewHandler("biz-1", j, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Lists(t *testing.T) {
	reason := "client asked"
	j := &fakeJournal{entries: []*domain.JournalEntry{{
		ID:            "j-1",
		AppointmentID: "a-1",
		BusinessID:    "biz-1",
		Action:        domain.ActionCancel,
		ActorID:       "owner-7",
		Comment:       &reason,
		Outcome:       domain.OutcomeSuccess,
		CreatedAt:     time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC),
	}}}

	rec := serve(j, "/transitions?limit=5&appointmentId=a-1")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "biz-1", j.got.BusinessID)
	assert.Equal(t, 5, j.got.Limit)
	require.NotNil(t, j.got.AppointmentID)
	assert.Equal(t, "a-1", *j.got.AppointmentID)

	var body []TransitionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "cancel", body[0].Action)
	assert.Equal(t, "success", body[0].Outcome)
}

func TestHandle_EmptyJournal(t *testing.T) {
	rec := serve(&fakeJournal{}, "/transitions")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_InvalidLimit(t *testing.T) {
	j := &fakeJournal{}
	assert.Equal(t, http.StatusBadRequest, serve(j, "/transitions?limit=abc").Code)
	assert.Equal(t, http.StatusBadRequest, serve(j, "/transitions?limit=-1").Code)
	assert.Nil(t, j.got)
}

func TestHandle_JournalError(t *testing.T) {
	rec := serve(&fakeJournal{err: errors.New("db down")}, "/transitions")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
