package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/integrations/barberapi"
	"github.com/m04kA/SMC-BarberDashboard/internal/service/analytics/models"
)

// Service сервис аналитики дашборда
// Загружает данные из API (через кэш) и прогоняет их через агрегаторы.
// Ошибки аналитики не затрагивают состояние списка записей.
type Service struct {
	client AnalyticsClient
	cache  Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(client AnalyticsClient, cache Cache, logger Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// PeriodSummary возвращает точки графика и сводную статистику за период
func (s *Service) PeriodSummary(ctx context.Context, q models.PeriodQuery) (*models.PeriodSummary, error) {
	if err := validateBusiness(q.BusinessID); err != nil {
		return nil, err
	}
	if _, ok := domain.ParsePeriod(string(q.Period)); !ok {
		return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, q.Period)
	}
	if err := validateRange(q.From, q.To); err != nil {
		return nil, err
	}

	key := cacheKey("period", q.BusinessID, string(q.Period), dateKey(q.From), dateKey(q.To))

	var points []domain.PeriodDataPoint
	if !s.cached(ctx, key, &points) {
		var err error
		points, err = s.client.GetPeriodStats(ctx, barberapi.PeriodStatsQuery{
			BusinessID: q.BusinessID,
			Period:     q.Period,
			From:       q.From,
			To:         q.To,
		})
		if err != nil {
			return nil, s.mapError("PeriodSummary", err)
		}
		s.store(ctx, key, points)
	}

	return &models.PeriodSummary{
		Period: string(q.Period),
		Points: models.FromDomainChartPoints(ChartPoints(points, q.Period)),
		Stats:  models.FromDomainSummaryStats(Summarize(points)),
	}, nil
}

// Dashboard возвращает сводку бизнеса и рейтинги услуг и барберов с долями
func (s *Service) Dashboard(ctx context.Context, businessID string, period domain.Period) (*models.Dashboard, error) {
	if err := validateBusiness(businessID); err != nil {
		return nil, err
	}
	if _, ok := domain.ParsePeriod(string(period)); !ok {
		return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, period)
	}

	key := cacheKey("dashboard", businessID, string(period))

	var dash barberapi.Dashboard
	if !s.cached(ctx, key, &dash) {
		fetched, err := s.client.GetDashboard(ctx, businessID, period)
		if err != nil {
			return nil, s.mapError("Dashboard", err)
		}
		dash = *fetched
		s.store(ctx, key, dash)
	}

	return &models.Dashboard{
		Period: string(period),
		Summary: models.Summary{
			TotalAppointments:     dash.Summary.TotalAppointments,
			CompletedAppointments: dash.Summary.CompletedAppointments,
			CancelledAppointments: dash.Summary.CancelledAppointments,
			TotalRevenue:          dash.Summary.TotalRevenue,
			AverageRating:         dash.Summary.AverageRating,
			NewClients:            dash.Summary.NewClients,
		},
		TopServices: models.FromDomainShares(Shares(dash.TopServices)),
		TopBarbers:  models.FromDomainShares(Shares(dash.TopBarbers)),
	}, nil
}

// Report возвращает отчет с долями выручки и записей по строкам
func (s *Service) Report(ctx context.Context, q models.ReportQuery) (*models.Report, error) {
	if err := validateBusiness(q.BusinessID); err != nil {
		return nil, err
	}
	q.Type = strings.TrimSpace(q.Type)
	if q.Type == "" {
		return nil, fmt.Errorf("%w: report type is required", ErrInvalidInput)
	}
	if err := validateRange(q.From, q.To); err != nil {
		return nil, err
	}

	key := cacheKey("report", q.BusinessID, q.Type, q.GroupBy, dateKey(q.From), dateKey(q.To))

	var report barberapi.Report
	if !s.cached(ctx, key, &report) {
		fetched, err := s.client.GetReport(ctx, barberapi.ReportQuery{
			BusinessID: q.BusinessID,
			Type:       q.Type,
			From:       q.From,
			To:         q.To,
			GroupBy:    q.GroupBy,
		})
		if err != nil {
			return nil, s.mapError("Report", err)
		}
		report = *fetched
		s.store(ctx, key, report)
	}

	entities := make([]domain.RankedEntity, len(report.Rows))
	for i, row := range report.Rows {
		entities[i] = domain.RankedEntity{ID: row.Key, Name: row.Label, Revenue: row.Revenue, Appointments: row.Appointments}
	}

	result := &models.Report{
		Type:    report.Type,
		GroupBy: report.GroupBy,
		Rows:    models.FromDomainShares(Shares(entities)),
	}
	for _, e := range entities {
		result.TotalRevenue += e.Revenue
		result.TotalAppointments += e.Appointments
	}

	return result, nil
}

// cached читает значение из кэша. Ошибка кэша считается промахом.
func (s *Service) cached(ctx context.Context, key string, dest interface{}) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn("Analytics: cache get key=%s: %v", key, err)
		return false
	}
	return found
}

func (s *Service) store(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn("Analytics: cache set key=%s: %v", key, err)
	}
}

func (s *Service) mapError(op string, err error) error {
	if errors.Is(err, barberapi.ErrUnauthorized) {
		s.logger.Warn("Analytics.%s: session expired", op)
		return ErrSessionExpired
	}
	s.logger.Error("Analytics.%s: %v", op, err)
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

func validateBusiness(businessID string) error {
	if strings.TrimSpace(businessID) == "" {
		return fmt.Errorf("%w: business id is required", ErrInvalidInput)
	}
	return nil
}

func validateRange(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}
	return nil
}

func cacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func dateKey(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(domain.DateFormat)
}
