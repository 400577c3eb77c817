package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/state"
	"github.com/m04kA/SMC-BarberDashboard/pkg/pagination"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// FilterUpdate набор изменений фильтра, применяется одним переходом
// Порядок применения: reset, status, barberId, from/to, limit, page.
type FilterUpdate struct {
	Reset     bool       `json:"reset,omitempty"`
	Status    *string    `json:"status,omitempty"`   // "" - снять фильтр
	BarberID  *string    `json:"barberId,omitempty"` // "" - снять фильтр
	DateRange *DateRange `json:"dateRange,omitempty"`
	Limit     *int       `json:"limit,omitempty"`
	Page      *int       `json:"page,omitempty"`
}

// DateRange диапазон дат, любая граница может отсутствовать
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Response модели

// FilterResponse текущий фильтр
type FilterResponse struct {
	Status   *string `json:"status,omitempty"`
	BarberID *string `json:"barberId,omitempty"`
	From     *string `json:"from,omitempty"` // "2025-10-15"
	To       *string `json:"to,omitempty"`
	Page     int     `json:"page"`
	Limit    int     `json:"limit"`
}

// AppointmentResponse запись в списке дашборда
type AppointmentResponse struct {
	ID              string    `json:"id"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	EndsAt          time.Time `json:"endsAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	BarberID        string    `json:"barberId"`
	ServiceID       string    `json:"serviceId"`
	ClientID        string    `json:"clientId"`

	// Денормализованные данные
	BarberName  *string `json:"barberName,omitempty"`
	ServiceName *string `json:"serviceName,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`

	TotalPrice  float64 `json:"totalPrice"`
	ClientNotes *string `json:"clientNotes,omitempty"`
	BarberNotes *string `json:"barberNotes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledBy        *string `json:"cancelledBy,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CanComplete bool `json:"canComplete"`
	CanCancel   bool `json:"canCancel"`
}

// PaginationResponse метаданные пагинации и последовательность страниц для UI
type PaginationResponse struct {
	Page         int                `json:"page"`
	TotalPages   int                `json:"totalPages"`
	Total        int                `json:"total"`
	Limit        int                `json:"limit"`
	HasPrevious  bool               `json:"hasPrevious"`
	HasNext      bool               `json:"hasNext"`
	PreviousPage int                `json:"previousPage"`
	NextPage     int                `json:"nextPage"`
	Pages        []pagination.Token `json:"pages"`
}

// ViewResponse состояние списка записей дашборда
type ViewResponse struct {
	Filter        FilterResponse        `json:"filter"`
	Appointments  []AppointmentResponse `json:"appointments"`
	StatusStats   map[string]int        `json:"statusStats"`
	StatusTotal   int                   `json:"statusTotal"` // сумма по всем статусам
	Pagination    PaginationResponse    `json:"pagination"`
	Loading       bool                  `json:"loading"`
	Error         *string               `json:"error,omitempty"`
	LastFetchedAt *time.Time            `json:"lastFetchedAt,omitempty"`
}

// Методы конвертации

// FromSnapshot конвертирует снимок состояния в DTO
func FromSnapshot(s state.Snapshot) *ViewResponse {
	resp := &ViewResponse{
		Filter:        FromDomainFilter(s.Filter),
		Appointments:  make([]AppointmentResponse, len(s.Appointments)),
		StatusStats:   make(map[string]int, len(s.StatusStats)),
		StatusTotal:   s.StatusStats.Total(),
		Pagination:    FromDomainPagination(s.Pagination),
		Loading:       s.Loading,
		LastFetchedAt: s.LastFetchedAt,
	}

	for i := range s.Appointments {
		resp.Appointments[i] = FromDomainAppointment(&s.Appointments[i])
	}
	for status, count := range s.StatusStats {
		resp.StatusStats[string(status)] = count
	}
	if s.Error != "" {
		msg := s.Error
		resp.Error = &msg
	}

	return resp
}

// FromDomainFilter конвертирует фильтр в DTO
func FromDomainFilter(f domain.FilterSpec) FilterResponse {
	resp := FilterResponse{
		BarberID: f.BarberID,
		Page:     f.Page,
		Limit:    f.Limit,
	}
	if f.Status != nil {
		status := string(*f.Status)
		resp.Status = &status
	}
	if f.DateFrom != nil {
		from := f.DateFrom.Format(domain.DateFormat)
		resp.From = &from
	}
	if f.DateTo != nil {
		to := f.DateTo.Format(domain.DateFormat)
		resp.To = &to
	}
	return resp
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:              a.ID,
		ScheduledAt:     a.ScheduledAt,
		EndsAt:          a.EndsAt(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		BarberID:        a.BarberID,
		ServiceID:       a.ServiceID,
		ClientID:        a.ClientID,
		BarberName:      a.BarberName,
		ServiceName:     a.ServiceName,
		ClientName:      a.ClientName,
		TotalPrice:      a.TotalPrice,
		ClientNotes:     a.ClientNotes,
		BarberNotes:     a.BarberNotes,
		CanComplete:     a.CanBeCompleted(),
		CanCancel:       a.CanBeCancelled(),
	}

	if c := a.Cancellation; c != nil {
		reason, by := c.Reason, c.CancelledBy
		resp.CancellationReason = &reason
		resp.CancelledBy = &by
		// Конвертируем CancelledAt в строку ISO 8601
		if c.CancelledAt != nil {
			cancelledStr := c.CancelledAt.Format(time.RFC3339)
			resp.CancelledAt = &cancelledStr
		}
	}

	return resp
}

// FromDomainPagination конвертирует пагинацию в DTO вместе с последовательностью страниц
func FromDomainPagination(p domain.PaginationInfo) PaginationResponse {
	pages := pagination.Pages(p.Page, p.TotalPages)
	if pages == nil {
		pages = []pagination.Token{}
	}

	return PaginationResponse{
		Page:         p.Page,
		TotalPages:   p.TotalPages,
		Total:        p.Total,
		Limit:        p.Limit,
		HasPrevious:  p.HasPrevious(),
		HasNext:      p.HasNext(),
		PreviousPage: p.PreviousPage(),
		NextPage:     p.NextPage(),
		Pages:        pages,
	}
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s, err := domain.ParseAppointmentStatus(status)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return s, nil
}
