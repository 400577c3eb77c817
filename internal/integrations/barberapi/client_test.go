package barberapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/session"
	"github.com/m04kA/SMC-BarberDashboard/pkg/logger"
	"github.com/m04kA/SMC-BarberDashboard/pkg/metrics"
	"github.com/m04kA/SMC-BarberDashboard/pkg/ptr"
)

type staticToken string

func (s staticToken) Token(context.Context) string { return string(s) }

type recordingTerminator struct {
	mu      sync.Mutex
	reasons []string
}

func (r *recordingTerminator) Terminate(_ context.Context, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reasons = append(r.reasons, reason)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingTerminator) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	term := &recordingTerminator{}
	var m *metrics.Metrics
	client := NewClient(srv.URL+"/", 2*time.Second, staticToken("secret"), term, m, logger.NewNop())
	return client, term
}

const listBody = `{
	"appointments": [
		{
			"_id": "a1",
			"dateTime": "2025-10-15T10:00:00Z",
			"duration": 30,
			"status": "scheduled",
			"businessId": "biz-1",
			"barberId": {"_id": "b1", "name": "Ivan"},
			"serviceId": "s1",
			"clientId": {"_id": "c1", "firstName": "Oleg"},
			"totalPrice": 1500,
			"reminders": {"dayBeforeSent": true, "hourBeforeSent": false}
		},
		{
			"_id": "a2",
			"dateTime": "2025-10-15T11:00:00Z",
			"duration": 45,
			"status": "cancelled",
			"businessId": "biz-1",
			"barberId": "b2",
			"serviceId": "s2",
			"clientId": "c2",
			"totalPrice": 2000,
			"cancellationReason": "client sick",
			"cancelledBy": "business",
			"cancelledAt": "2025-10-14T09:00:00Z"
		}
	],
	"total": 12,
	"page": 2,
	"totalPages": 6,
	"statusStats": {"scheduled": 7, "cancelled": 5}
}`

func TestClient_ListBusinessAppointments(t *testing.T) {
	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	filter := domain.DefaultFilterSpec().
		WithStatus(ptr.Ptr(domain.StatusScheduled)).
		WithBarber("b1").
		WithDateRange(&from, nil).
		WithLimit(2).
		WithPage(2)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/appointments/business/biz-1", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "2", q.Get("limit"))
		assert.Equal(t, "scheduled", q.Get("status"))
		assert.Equal(t, "b1", q.Get("barberId"))
		assert.Equal(t, "2025-10-01", q.Get("from"))
		assert.False(t, q.Has("to"))

		_, _ = io.WriteString(w, listBody)
	})

	page, err := client.ListBusinessAppointments(context.Background(), "biz-1", filter)
	require.NoError(t, err)

	require.Len(t, page.Appointments, 2)
	first := page.Appointments[0]
	assert.Equal(t, "a1", first.ID)
	assert.Equal(t, domain.StatusScheduled, first.Status)
	assert.Equal(t, "b1", first.BarberID)
	require.NotNil(t, first.BarberName)
	assert.Equal(t, "Ivan", *first.BarberName)
	require.NotNil(t, first.ClientName)
	assert.Equal(t, "Oleg", *first.ClientName)
	assert.True(t, first.Reminders.DayBeforeSent)
	assert.Nil(t, first.Cancellation)

	second := page.Appointments[1]
	assert.Equal(t, "b2", second.BarberID)
	assert.Nil(t, second.BarberName)
	require.NotNil(t, second.Cancellation)
	assert.Equal(t, "client sick", second.Cancellation.Reason)
	assert.Equal(t, domain.CancelledByBusiness, second.Cancellation.CancelledBy)

	assert.Equal(t, domain.PaginationInfo{Page: 2, TotalPages: 6, Total: 12, Limit: 2}, page.Pagination)
	assert.Equal(t, 7, page.StatusStats[domain.StatusScheduled])
	assert.Equal(t, 5, page.StatusStats[domain.StatusCancelled])
}

func TestClient_ListBusinessAppointments_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing appointments", body: `{"total": 0, "page": 1, "totalPages": 0}`},
		{name: "null appointments", body: `{"appointments": null, "total": 0, "page": 1, "totalPages": 0}`},
		{name: "missing totalPages", body: `{"appointments": [], "total": 0, "page": 1}`},
		{name: "page zero", body: `{"appointments": [], "total": 0, "page": 0, "totalPages": 0}`},
		{name: "unknown status", body: `{"appointments": [{"_id": "x", "dateTime": "2025-10-15T10:00:00Z", "status": "archived"}], "total": 1, "page": 1, "totalPages": 1}`},
		{name: "missing id", body: `{"appointments": [{"dateTime": "2025-10-15T10:00:00Z", "status": "scheduled"}], "total": 1, "page": 1, "totalPages": 1}`},
		{name: "missing dateTime", body: `{"appointments": [{"_id": "x", "status": "scheduled"}], "total": 1, "page": 1, "totalPages": 1}`},
		{name: "not json", body: `<html>oops</html>`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})

			page, err := client.ListBusinessAppointments(context.Background(), "biz-1", domain.DefaultFilterSpec())
			assert.Nil(t, page)
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestClient_StatusCodeMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrAppointmentNotFound},
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrRejected},
		{name: "conflict", status: http.StatusConflict, wantErr: ErrRejected},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrServer},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, term := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, `{"success": false, "message": "nope"}`)
			})

			err := client.CompleteAppointment(context.Background(), "a1", "", "owner-1")
			assert.ErrorIs(t, err, tt.wantErr)

			if tt.status == http.StatusUnauthorized {
				assert.Len(t, term.reasons, 1)
			} else {
				assert.Empty(t, term.reasons)
			}
		})
	}
}

func TestClient_RejectedCarriesMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message": "appointment already completed"}`)
	})

	err := client.CancelAppointment(context.Background(), "a1", "closed", domain.CancelledByBusiness)
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "appointment already completed")
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	var m *metrics.Metrics
	client := NewClient(url, time.Second, staticToken(""), &recordingTerminator{}, m, logger.NewNop())

	_, err := client.ListBusinessAppointments(context.Background(), "biz", domain.DefaultFilterSpec())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClient_CompleteAppointment(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/appointments/a1/complete", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "trim beard", body["barberNotes"])
		assert.Equal(t, "owner-1", body["completedBy"])

		_, _ = io.WriteString(w, `{"success": true}`)
	})

	require.NoError(t, client.CompleteAppointment(context.Background(), "a1", "trim beard", "owner-1"))
}

func TestClient_CancelAppointment(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/appointments/a9/cancel", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "barber ill", body["reason"])
		assert.Equal(t, "business", body["cancelledBy"])

		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.CancelAppointment(context.Background(), "a9", "barber ill", domain.CancelledByBusiness))
}

func TestClient_GetPeriodStats(t *testing.T) {
	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments/stats/period", r.URL.Path)
		assert.Equal(t, "biz-1", r.URL.Query().Get("businessId"))
		assert.Equal(t, "week", r.URL.Query().Get("period"))
		assert.Equal(t, "2025-10-01", r.URL.Query().Get("from"))

		_, _ = io.WriteString(w, `{"success": true, "data": [
			{"period": "2025-W40", "date": "2025-09-29", "count": 10},
			{"period": "2025-W41", "date": "2025-10-06", "count": 20}
		]}`)
	})

	points, err := client.GetPeriodStats(context.Background(), PeriodStatsQuery{
		BusinessID: "biz-1",
		Period:     domain.PeriodWeek,
		From:       &from,
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.PeriodDataPoint{
		{Period: "2025-W40", Date: "2025-09-29", Count: 10},
		{Period: "2025-W41", Date: "2025-10-06", Count: 20},
	}, points)
}

func TestClient_GetPeriodStats_Failures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "success false", body: `{"success": false, "message": "bad period"}`, wantErr: ErrRejected},
		{name: "missing data", body: `{"success": true}`, wantErr: ErrInvalidResponse},
		{name: "missing count", body: `{"success": true, "data": [{"period": "x", "date": "2025-10-01"}]}`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.GetPeriodStats(context.Background(), PeriodStatsQuery{BusinessID: "b", Period: domain.PeriodDay})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_GetDashboard(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analytics/dashboard", r.URL.Path)
		assert.Equal(t, "month", r.URL.Query().Get("period"))

		_, _ = io.WriteString(w, `{"success": true, "data": {
			"summary": {"totalAppointments": 40, "completedAppointments": 30, "cancelledAppointments": 5, "totalRevenue": 400, "averageRating": 4.8, "newClients": 6},
			"topServices": [{"_id": "s1", "name": "Fade", "revenue": 300, "appointments": 20}, {"_id": "s2", "name": "Beard", "revenue": 100, "appointments": 10}],
			"topBarbers": [{"id": "b1", "name": "Ivan", "revenue": 400, "appointments": 30}]
		}}`)
	})

	dash, err := client.GetDashboard(context.Background(), "biz-1", domain.PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, 40, dash.Summary.TotalAppointments)
	assert.InDelta(t, 4.8, dash.Summary.AverageRating, 1e-9)
	require.Len(t, dash.TopServices, 2)
	assert.Equal(t, "s1", dash.TopServices[0].ID)
	assert.Equal(t, "Fade", dash.TopServices[0].Name)
	require.Len(t, dash.TopBarbers, 1)
	assert.Equal(t, "b1", dash.TopBarbers[0].ID)
}

func TestClient_GetReport(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analytics/reports", r.URL.Path)
		assert.Equal(t, "revenue", r.URL.Query().Get("type"))
		assert.Equal(t, "barber", r.URL.Query().Get("groupBy"))

		_, _ = io.WriteString(w, `{"success": true, "data": {"type": "revenue", "groupBy": "barber", "rows": [
			{"_id": "b1", "label": "Ivan", "revenue": 100, "appointments": 2},
			{"_id": "b2", "revenue": 300, "appointments": 6}
		]}}`)
	})

	report, err := client.GetReport(context.Background(), ReportQuery{BusinessID: "biz", Type: "revenue", GroupBy: "barber"})
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Ivan", report.Rows[0].Label)
	assert.Equal(t, "b2", report.Rows[1].Label)
	assert.Equal(t, "barber", report.GroupBy)
}

func TestClient_RequestTokenRejectionKeepsStaticSession(t *testing.T) {
	var (
		mu      sync.Mutex
		headers []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		headers = append(headers, r.Header.Get("Authorization"))
		mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer static" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"appointments":[],"total":0,"page":1,"totalPages":0}`)
	}))
	t.Cleanup(srv.Close)

	manager := session.NewManager("static", logger.NewNop())
	var m *metrics.Metrics
	client := NewClient(srv.URL, 2*time.Second, manager, manager, m, logger.NewNop())

	ctx := context.Background()
	filter := domain.DefaultFilterSpec()

	_, err := client.ListBusinessAppointments(ctx, "biz-1", filter)
	require.NoError(t, err)

	_, err = client.ListBusinessAppointments(session.WithToken(ctx, "stale-user-token"), "biz-1", filter)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = client.ListBusinessAppointments(ctx, "biz-1", filter)
	require.NoError(t, err)

	assert.False(t, manager.Status().Expired)
	assert.Equal(t, []string{"Bearer static", "Bearer stale-user-token", "Bearer static"}, headers)
}

func TestClient_StaticTokenRejectionExpiresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	manager := session.NewManager("static", logger.NewNop())
	var m *metrics.Metrics
	client := NewClient(srv.URL, 2*time.Second, manager, manager, m, logger.NewNop())

	_, err := client.ListBusinessAppointments(context.Background(), "biz-1", domain.DefaultFilterSpec())
	require.ErrorIs(t, err, ErrUnauthorized)

	assert.True(t, manager.Status().Expired)
	assert.Empty(t, manager.Token(context.Background()))
}
