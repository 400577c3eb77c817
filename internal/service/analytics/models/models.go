package models

import (
	"time"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

// Request модели

// PeriodQuery параметры графика по периодам
type PeriodQuery struct {
	BusinessID string
	Period     domain.Period
	From       *time.Time
	To         *time.Time
}

// ReportQuery параметры отчета
type ReportQuery struct {
	BusinessID string
	Type       string
	From       *time.Time
	To         *time.Time
	GroupBy    string
}

// Response модели

// ChartPoint точка графика
type ChartPoint struct {
	Label string `json:"label"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// SummaryStats сводная статистика ряда
type SummaryStats struct {
	Total   int     `json:"total"`
	Average float64 `json:"average"`
	Growth  float64 `json:"growth"` // проценты
	Peak    int     `json:"peak"`
	Lowest  int     `json:"lowest"`
}

// PeriodSummary точки графика и сводная статистика
type PeriodSummary struct {
	Period string       `json:"period"`
	Points []ChartPoint `json:"points"`
	Stats  SummaryStats `json:"stats"`
}

// Summary сводные показатели бизнеса
type Summary struct {
	TotalAppointments     int     `json:"totalAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
	CancelledAppointments int     `json:"cancelledAppointments"`
	TotalRevenue          float64 `json:"totalRevenue"`
	AverageRating         float64 `json:"averageRating"`
	NewClients            int     `json:"newClients"`
}

// RankedShare сущность рейтинга с долями в процентах
type RankedShare struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Revenue          float64 `json:"revenue"`
	Appointments     int     `json:"appointments"`
	RevenueShare     float64 `json:"revenueShare"`
	AppointmentShare float64 `json:"appointmentShare"`
}

// Dashboard сводка и рейтинги с долями
type Dashboard struct {
	Period      string        `json:"period"`
	Summary     Summary       `json:"summary"`
	TopServices []RankedShare `json:"topServices"`
	TopBarbers  []RankedShare `json:"topBarbers"`
}

// Report отчет с долями и итогами
type Report struct {
	Type              string        `json:"type"`
	GroupBy           string        `json:"groupBy,omitempty"`
	Rows              []RankedShare `json:"rows"`
	TotalRevenue      float64       `json:"totalRevenue"`
	TotalAppointments int           `json:"totalAppointments"`
}

// Методы конвертации

// FromDomainChartPoints конвертирует точки графика в DTO
func FromDomainChartPoints(points []domain.ChartPoint) []ChartPoint {
	out := make([]ChartPoint, len(points))
	for i, p := range points {
		out[i] = ChartPoint{Label: p.Label, Date: p.Date, Count: p.Count}
	}
	return out
}

// FromDomainSummaryStats конвертирует сводную статистику в DTO
func FromDomainSummaryStats(s domain.SummaryStats) SummaryStats {
	return SummaryStats{
		Total:   s.Total,
		Average: s.Average,
		Growth:  s.Growth,
		Peak:    s.Peak,
		Lowest:  s.Lowest,
	}
}

// FromDomainShares конвертирует доли рейтинга в DTO с сохранением порядка
func FromDomainShares(shares []domain.RankedShare) []RankedShare {
	out := make([]RankedShare, len(shares))
	for i, s := range shares {
		out[i] = RankedShare{
			ID:               s.ID,
			Name:             s.Name,
			Revenue:          s.Revenue,
			Appointments:     s.Appointments,
			RevenueShare:     s.RevenueShare,
			AppointmentShare: s.AppointmentShare,
		}
	}
	return out
}
