package barberapi

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

// Результирующие модели клиента

// AppointmentPage одна страница списка записей бизнеса
type AppointmentPage struct {
	Appointments []domain.Appointment
	StatusStats  domain.StatusStats
	Pagination   domain.PaginationInfo
}

// PeriodStatsQuery параметры запроса статистики по периодам
type PeriodStatsQuery struct {
	BusinessID string
	Period     domain.Period
	From       *time.Time
	To         *time.Time
}

// DashboardSummary сводные показатели бизнеса за период
type DashboardSummary struct {
	TotalAppointments     int
	CompletedAppointments int
	CancelledAppointments int
	TotalRevenue          float64
	AverageRating         float64
	NewClients            int
}

// Dashboard ответ аналитики для главного экрана
type Dashboard struct {
	Summary     DashboardSummary
	TopServices []domain.RankedEntity
	TopBarbers  []domain.RankedEntity
}

// ReportQuery параметры запроса отчета
type ReportQuery struct {
	BusinessID string
	Type       string
	From       *time.Time
	To         *time.Time
	GroupBy    string
}

// ReportRow строка отчета
type ReportRow struct {
	Key          string
	Label        string
	Revenue      float64
	Appointments int
}

// Report отчет аналитики
type Report struct {
	Type    string
	GroupBy string
	Rows    []ReportRow
}

// Модели протокола API

// refDTO ссылка на связанную сущность: строка с ID или заполненный объект {_id, name}
type refDTO struct {
	ID   string
	Name *string
}

// UnmarshalJSON принимает как "id", так и {"_id": "...", "name": "..."}
func (r *refDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}

	var obj struct {
		MongoID   string  `json:"_id"`
		ID        string  `json:"id"`
		Name      *string `json:"name"`
		FirstName *string `json:"firstName"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	r.ID = obj.MongoID
	if r.ID == "" {
		r.ID = obj.ID
	}
	r.Name = obj.Name
	if r.Name == nil {
		r.Name = obj.FirstName
	}
	return nil
}

type remindersDTO struct {
	DayBeforeSent  bool `json:"dayBeforeSent"`
	HourBeforeSent bool `json:"hourBeforeSent"`
}

type appointmentDTO struct {
	MongoID            string        `json:"_id"`
	ID                 string        `json:"id"`
	DateTime           *time.Time    `json:"dateTime"`
	Duration           int           `json:"duration"`
	Status             string        `json:"status"`
	Business           refDTO        `json:"businessId"`
	Barber             refDTO        `json:"barberId"`
	Service            refDTO        `json:"serviceId"`
	Client             refDTO        `json:"clientId"`
	TotalPrice         float64       `json:"totalPrice"`
	ClientNotes        *string       `json:"clientNotes"`
	BarberNotes        *string       `json:"barberNotes"`
	CancellationReason *string       `json:"cancellationReason"`
	CancelledBy        *string       `json:"cancelledBy"`
	CancelledAt        *time.Time    `json:"cancelledAt"`
	Reminders          *remindersDTO `json:"reminders"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

type listAppointmentsResponse struct {
	Appointments *[]appointmentDTO `json:"appointments"`
	Total        *int              `json:"total"`
	Page         *int              `json:"page"`
	TotalPages   *int              `json:"totalPages"`
	StatusStats  map[string]int    `json:"statusStats"`
}

type completeAppointmentRequest struct {
	BarberNotes string `json:"barberNotes"`
	CompletedBy string `json:"completedBy"`
}

type cancelAppointmentRequest struct {
	Reason      string `json:"reason"`
	CancelledBy string `json:"cancelledBy"`
}

type periodDataPointDTO struct {
	Period string `json:"period"`
	Date   string `json:"date"`
	Count  *int   `json:"count"`
}

type periodStatsResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    *[]periodDataPointDTO `json:"data"`
}

type rankedEntityDTO struct {
	MongoID      string  `json:"_id"`
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Revenue      float64 `json:"revenue"`
	Appointments int     `json:"appointments"`
}

type dashboardSummaryDTO struct {
	TotalAppointments     int     `json:"totalAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
	CancelledAppointments int     `json:"cancelledAppointments"`
	TotalRevenue          float64 `json:"totalRevenue"`
	AverageRating         float64 `json:"averageRating"`
	NewClients            int     `json:"newClients"`
}

type dashboardDataDTO struct {
	Summary     *dashboardSummaryDTO `json:"summary"`
	TopServices []rankedEntityDTO    `json:"topServices"`
	TopBarbers  []rankedEntityDTO    `json:"topBarbers"`
}

type dashboardResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    *dashboardDataDTO `json:"data"`
}

type reportRowDTO struct {
	Key          string  `json:"_id"`
	Label        string  `json:"label"`
	Revenue      float64 `json:"revenue"`
	Appointments int     `json:"appointments"`
}

type reportDataDTO struct {
	Type    string          `json:"type"`
	GroupBy string          `json:"groupBy"`
	Rows    *[]reportRowDTO `json:"rows"`
}

type reportResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *reportDataDTO `json:"data"`
}

// errorResponse модель ошибки API
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
