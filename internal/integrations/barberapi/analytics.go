package barberapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

// GetPeriodStats получает количество записей по периодам
// GET /appointments/stats/period?businessId&period&from&to
func (c *Client) GetPeriodStats(ctx context.Context, q PeriodStatsQuery) ([]domain.PeriodDataPoint, error) {
	query := url.Values{}
	query.Set("businessId", q.BusinessID)
	query.Set("period", string(q.Period))
	setDate(query, "from", formatDate(q.From))
	setDate(query, "to", formatDate(q.To))

	var resp periodStatsResponse
	err := c.do(ctx, request{
		endpoint: "period_stats",
		method:   http.MethodGet,
		path:     "/appointments/stats/period",
		query:    query,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, fmt.Errorf("%w: period stats: %s", ErrRejected, resp.Message)
	}

	return toPeriodDataPoints(&resp)
}

// GetDashboard получает сводку и рейтинги услуг и барберов
// GET /analytics/dashboard?businessId&period
func (c *Client) GetDashboard(ctx context.Context, businessID string, period domain.Period) (*Dashboard, error) {
	query := url.Values{}
	query.Set("businessId", businessID)
	query.Set("period", string(period))

	var resp dashboardResponse
	err := c.do(ctx, request{
		endpoint: "analytics_dashboard",
		method:   http.MethodGet,
		path:     "/analytics/dashboard",
		query:    query,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, fmt.Errorf("%w: dashboard: %s", ErrRejected, resp.Message)
	}

	return toDashboard(&resp)
}

// GetReport получает отчет аналитики
// GET /analytics/reports?businessId&type&from&to&groupBy
func (c *Client) GetReport(ctx context.Context, q ReportQuery) (*Report, error) {
	query := url.Values{}
	query.Set("businessId", q.BusinessID)
	query.Set("type", q.Type)
	setDate(query, "from", formatDate(q.From))
	setDate(query, "to", formatDate(q.To))
	if q.GroupBy != "" {
		query.Set("groupBy", q.GroupBy)
	}

	var resp reportResponse
	err := c.do(ctx, request{
		endpoint: "analytics_report",
		method:   http.MethodGet,
		path:     "/analytics/reports",
		query:    query,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, fmt.Errorf("%w: report: %s", ErrRejected, resp.Message)
	}

	return toReport(&resp)
}

func setDate(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
