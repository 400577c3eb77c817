package update_filter

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/service/dashboard/models"
)

// UpdateFilterRequest тело запроса изменения фильтра
// Отсутствующее поле не меняется, пустая строка снимает фильтр.
// Даты задаются парой: если передана хотя бы одна граница, диапазон заменяется целиком.
type UpdateFilterRequest struct {
	Reset    bool    `json:"reset"`
	Status   *string `json:"status"`
	BarberID *string `json:"barberId"`
	From     *string `json:"from"` // "2025-10-15"
	To       *string `json:"to"`
	Page     *int    `json:"page"`
	Limit    *int    `json:"limit"`
}

// ToServiceRequest конвертирует тело запроса в модель сервиса
func (r *UpdateFilterRequest) ToServiceRequest() (*models.FilterUpdate, error) {
	req := &models.FilterUpdate{
		Reset:    r.Reset,
		Status:   r.Status,
		BarberID: r.BarberID,
		Page:     r.Page,
		Limit:    r.Limit,
	}

	if r.From != nil || r.To != nil {
		from, err := parseDate(r.From)
		if err != nil {
			return nil, err
		}
		to, err := parseDate(r.To)
		if err != nil {
			return nil, err
		}
		req.DateRange = &models.DateRange{From: from, To: to}
	}

	return req, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}
