package fetch_appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/integrations/barberapi"
	"github.com/m04kA/SMC-BarberDashboard/internal/state"
)

// UseCase координатор загрузки списка записей
// Каждый вызов получает поколение в контейнере состояния. Применяется только ответ
// последнего поколения, более ранние ответы отбрасываются.
type UseCase struct {
	client  AppointmentsClient
	store   StateStore
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client AppointmentsClient, store StateStore, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		client:  client,
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute загружает список с указанным фильтром.
// Возвращает true, если результат попал в состояние.
func (uc *UseCase) Execute(ctx context.Context, businessID string, filter domain.FilterSpec) (bool, error) {
	return uc.ExecuteTransition(ctx, businessID, func(domain.FilterSpec) domain.FilterSpec {
		return filter
	})
}

// Refresh повторно загружает список с текущим фильтром
func (uc *UseCase) Refresh(ctx context.Context, businessID string) (bool, error) {
	return uc.ExecuteTransition(ctx, businessID, nil)
}

// ExecuteTransition атомарно применяет переход фильтра и загружает список.
// Ошибка загрузки фиксируется в состоянии, предыдущие данные остаются видимыми.
func (uc *UseCase) ExecuteTransition(ctx context.Context, businessID string, transition state.Transition) (bool, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return false, fmt.Errorf("%w: business id is required", ErrInvalidInput)
	}

	generation, filter := uc.store.BeginFetch(transition)
	uc.logger.Info("FetchAppointments: business=%s, generation=%d, page=%d, limit=%d",
		businessID, generation, filter.Page, filter.Limit)

	page, err := uc.client.ListBusinessAppointments(ctx, businessID, filter)
	if err != nil {
		applied := uc.store.FailFetch(generation, errorMessage(err))
		if !applied {
			uc.discarded(generation)
		}

		if errors.Is(err, barberapi.ErrUnauthorized) {
			uc.logger.Warn("FetchAppointments: business=%s: session expired", businessID)
			return applied, ErrSessionExpired
		}
		uc.logger.Error("FetchAppointments: business=%s, generation=%d: %v", businessID, generation, err)
		return applied, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	applied := uc.store.CommitFetch(generation, state.FetchResult{
		Appointments: page.Appointments,
		StatusStats:  page.StatusStats,
		Pagination:   page.Pagination,
	})
	if !applied {
		uc.discarded(generation)
		return false, nil
	}

	uc.logger.Info("FetchAppointments: business=%s, generation=%d: %d appointments, page %d of %d",
		businessID, generation, len(page.Appointments), page.Pagination.Page, page.Pagination.TotalPages)
	return true, nil
}

func (uc *UseCase) discarded(generation uint64) {
	uc.metrics.IncStaleResponse()
	uc.logger.Info("FetchAppointments: generation=%d superseded, response discarded", generation)
}

// errorMessage сообщение об ошибке для отображения в дашборде
func errorMessage(err error) string {
	switch {
	case errors.Is(err, barberapi.ErrUnauthorized):
		return "session expired, please sign in again"
	case errors.Is(err, barberapi.ErrNetwork):
		return "barbershop API is unreachable"
	case errors.Is(err, barberapi.ErrServer):
		return "barbershop API is unavailable"
	case errors.Is(err, barberapi.ErrInvalidResponse):
		return "barbershop API returned an unexpected response"
	default:
		return err.Error()
	}
}
