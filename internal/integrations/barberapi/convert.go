package barberapi

import (
	"fmt"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

// toAppointmentPage проверяет схему ответа списка и конвертирует его в доменные модели
// Обязательные поля: appointments, total, page, totalPages
func toAppointmentPage(resp *listAppointmentsResponse, limit int) (*AppointmentPage, error) {
	switch {
	case resp.Appointments == nil:
		return nil, fmt.Errorf("%w: missing appointments", ErrInvalidResponse)
	case resp.Total == nil:
		return nil, fmt.Errorf("%w: missing total", ErrInvalidResponse)
	case resp.Page == nil:
		return nil, fmt.Errorf("%w: missing page", ErrInvalidResponse)
	case resp.TotalPages == nil:
		return nil, fmt.Errorf("%w: missing totalPages", ErrInvalidResponse)
	}

	if *resp.Page < 1 || *resp.TotalPages < 0 || *resp.Total < 0 {
		return nil, fmt.Errorf("%w: inconsistent pagination page=%d totalPages=%d total=%d",
			ErrInvalidResponse, *resp.Page, *resp.TotalPages, *resp.Total)
	}

	dtos := *resp.Appointments
	appointments := make([]domain.Appointment, 0, len(dtos))
	for i := range dtos {
		a, err := toDomainAppointment(&dtos[i])
		if err != nil {
			return nil, fmt.Errorf("%w: appointments[%d]: %v", ErrInvalidResponse, i, err)
		}
		appointments = append(appointments, a)
	}

	// Счетчики по статусам принимаются как есть, включая неизвестные статусы
	stats := make(domain.StatusStats, len(resp.StatusStats))
	for status, count := range resp.StatusStats {
		stats[domain.AppointmentStatus(status)] = count
	}

	return &AppointmentPage{
		Appointments: appointments,
		StatusStats:  stats,
		Pagination: domain.PaginationInfo{
			Page:       *resp.Page,
			TotalPages: *resp.TotalPages,
			Total:      *resp.Total,
			Limit:      limit,
		},
	}, nil
}

// toDomainAppointment конвертирует запись API в доменную модель с валидацией
func toDomainAppointment(dto *appointmentDTO) (domain.Appointment, error) {
	id := dto.MongoID
	if id == "" {
		id = dto.ID
	}
	if id == "" {
		return domain.Appointment{}, fmt.Errorf("missing id")
	}

	status, err := domain.ParseAppointmentStatus(dto.Status)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("appointment %s: %w: %q", id, err, dto.Status)
	}

	if dto.DateTime == nil {
		return domain.Appointment{}, fmt.Errorf("appointment %s: missing dateTime", id)
	}

	a := domain.Appointment{
		ID:              id,
		ScheduledAt:     *dto.DateTime,
		DurationMinutes: dto.Duration,
		Status:          status,
		BusinessID:      dto.Business.ID,
		BarberID:        dto.Barber.ID,
		ServiceID:       dto.Service.ID,
		ClientID:        dto.Client.ID,
		BarberName:      dto.Barber.Name,
		ServiceName:     dto.Service.Name,
		ClientName:      dto.Client.Name,
		TotalPrice:      dto.TotalPrice,
		ClientNotes:     dto.ClientNotes,
		BarberNotes:     dto.BarberNotes,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}

	if dto.Reminders != nil {
		a.Reminders = domain.Reminders{
			DayBeforeSent:  dto.Reminders.DayBeforeSent,
			HourBeforeSent: dto.Reminders.HourBeforeSent,
		}
	}

	if dto.CancellationReason != nil || dto.CancelledBy != nil || dto.CancelledAt != nil {
		c := &domain.Cancellation{CancelledAt: dto.CancelledAt}
		if dto.CancellationReason != nil {
			c.Reason = *dto.CancellationReason
		}
		if dto.CancelledBy != nil {
			c.CancelledBy = *dto.CancelledBy
		}
		a.Cancellation = c
	}

	return a, nil
}

// toPeriodDataPoints проверяет и конвертирует временной ряд. Порядок сохраняется.
func toPeriodDataPoints(resp *periodStatsResponse) ([]domain.PeriodDataPoint, error) {
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrInvalidResponse)
	}

	dtos := *resp.Data
	points := make([]domain.PeriodDataPoint, len(dtos))
	for i, dto := range dtos {
		if dto.Count == nil {
			return nil, fmt.Errorf("%w: data[%d]: missing count", ErrInvalidResponse, i)
		}
		points[i] = domain.PeriodDataPoint{
			Period: dto.Period,
			Date:   dto.Date,
			Count:  *dto.Count,
		}
	}
	return points, nil
}

func toRankedEntities(dtos []rankedEntityDTO) []domain.RankedEntity {
	entities := make([]domain.RankedEntity, len(dtos))
	for i, dto := range dtos {
		id := dto.MongoID
		if id == "" {
			id = dto.ID
		}
		entities[i] = domain.RankedEntity{
			ID:           id,
			Name:         dto.Name,
			Revenue:      dto.Revenue,
			Appointments: dto.Appointments,
		}
	}
	return entities
}

func toDashboard(resp *dashboardResponse) (*Dashboard, error) {
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrInvalidResponse)
	}
	if resp.Data.Summary == nil {
		return nil, fmt.Errorf("%w: missing summary", ErrInvalidResponse)
	}

	s := resp.Data.Summary
	return &Dashboard{
		Summary: DashboardSummary{
			TotalAppointments:     s.TotalAppointments,
			CompletedAppointments: s.CompletedAppointments,
			CancelledAppointments: s.CancelledAppointments,
			TotalRevenue:          s.TotalRevenue,
			AverageRating:         s.AverageRating,
			NewClients:            s.NewClients,
		},
		TopServices: toRankedEntities(resp.Data.TopServices),
		TopBarbers:  toRankedEntities(resp.Data.TopBarbers),
	}, nil
}

func toReport(resp *reportResponse) (*Report, error) {
	if resp.Data == nil || resp.Data.Rows == nil {
		return nil, fmt.Errorf("%w: missing report rows", ErrInvalidResponse)
	}

	rows := make([]ReportRow, len(*resp.Data.Rows))
	for i, dto := range *resp.Data.Rows {
		label := dto.Label
		if label == "" {
			label = dto.Key
		}
		rows[i] = ReportRow{
			Key:          dto.Key,
			Label:        label,
			Revenue:      dto.Revenue,
			Appointments: dto.Appointments,
		}
	}

	return &Report{
		Type:    resp.Data.Type,
		GroupBy: resp.Data.GroupBy,
		Rows:    rows,
	}, nil
}
