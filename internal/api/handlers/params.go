package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

// QueryDate разбирает необязательный query параметр в формате YYYY-MM-DD
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// QueryInt разбирает необязательный целочисленный query параметр
func QueryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
