package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/service/dashboard/models"
	"github.com/m04kA/SMC-BarberDashboard/internal/state"
	"github.com/m04kA/SMC-BarberDashboard/internal/usecase/fetch_appointments"
)

// Service сервис списка записей дашборда одного бизнеса
// Каждое изменение фильтра применяется к контейнеру состояния и запускает полную перезагрузку списка.
type Service struct {
	businessID string
	fetcher    Fetcher
	state      StateReader
	logger     Logger
}

// NewService создает новый экземпляр сервиса дашборда
func NewService(businessID string, fetcher Fetcher, state StateReader, logger Logger) *Service {
	return &Service{
		businessID: businessID,
		fetcher:    fetcher,
		state:      state,
		logger:     logger,
	}
}

// View возвращает текущее состояние без обращения к API
func (s *Service) View() *models.ViewResponse {
	return models.FromSnapshot(s.state.Snapshot())
}

// Refresh перезагружает список с текущим фильтром
func (s *Service) Refresh(ctx context.Context) (*models.ViewResponse, error) {
	s.logger.Info("Refresh: business=%s", s.businessID)
	return s.apply(ctx, "Refresh", nil)
}

// SetStatus устанавливает фильтр по статусу, nil снимает фильтр
func (s *Service) SetStatus(ctx context.Context, status *domain.AppointmentStatus) (*models.ViewResponse, error) {
	return s.apply(ctx, "SetStatus", func(f domain.FilterSpec) domain.FilterSpec {
		return f.WithStatus(status)
	})
}

// SetBarber устанавливает фильтр по барберу, пустая строка снимает фильтр
func (s *Service) SetBarber(ctx context.Context, barberID string) (*models.ViewResponse, error) {
	return s.apply(ctx, "SetBarber", func(f domain.FilterSpec) domain.FilterSpec {
		return f.WithBarber(barberID)
	})
}

// SetDateRange устанавливает диапазон дат
func (s *Service) SetDateRange(ctx context.Context, from, to *time.Time) (*models.ViewResponse, error) {
	return s.apply(ctx, "SetDateRange", func(f domain.FilterSpec) domain.FilterSpec {
		return f.WithDateRange(from, to)
	})
}

// SetPage переходит на страницу, номер ограничивается последним известным числом страниц
func (s *Service) SetPage(ctx context.Context, page int) (*models.ViewResponse, error) {
	totalPages := s.state.Snapshot().Pagination.TotalPages
	return s.apply(ctx, "SetPage", func(f domain.FilterSpec) domain.FilterSpec {
		return f.WithPage(page).ClampPage(totalPages)
	})
}

// SetLimit устанавливает размер страницы
func (s *Service) SetLimit(ctx context.Context, limit int) (*models.ViewResponse, error) {
	return s.apply(ctx, "SetLimit", func(f domain.FilterSpec) domain.FilterSpec {
		return f.WithLimit(limit)
	})
}

// Reset сбрасывает фильтр к значениям по умолчанию
func (s *Service) Reset(ctx context.Context) (*models.ViewResponse, error) {
	return s.apply(ctx, "Reset", func(f domain.FilterSpec) domain.FilterSpec {
		return f.Reset()
	})
}

// ApplyFilter применяет набор изменений одним переходом и одной загрузкой
func (s *Service) ApplyFilter(ctx context.Context, req *models.FilterUpdate) (*models.ViewResponse, error) {
	transition, err := s.buildTransition(req)
	if err != nil {
		s.logger.Warn("ApplyFilter: business=%s: %v", s.businessID, err)
		return nil, err
	}
	return s.apply(ctx, "ApplyFilter", transition)
}

func (s *Service) buildTransition(req *models.FilterUpdate) (state.Transition, error) {
	var status *domain.AppointmentStatus
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		parsed, err := models.ToDomainStatus(strings.TrimSpace(*req.Status))
		if err != nil {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		status = &parsed
	}

	if req.DateRange != nil && req.DateRange.From != nil && req.DateRange.To != nil &&
		req.DateRange.From.After(*req.DateRange.To) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	if req.Page != nil && *req.Page < 1 {
		return nil, fmt.Errorf("%w: page must be positive", ErrInvalidInput)
	}
	if req.Limit != nil && (*req.Limit < 1 || *req.Limit > domain.MaxLimit) {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, domain.MaxLimit)
	}

	totalPages := s.state.Snapshot().Pagination.TotalPages

	return func(f domain.FilterSpec) domain.FilterSpec {
		if req.Reset {
			f = f.Reset()
		}
		if req.Status != nil {
			f = f.WithStatus(status)
		}
		if req.BarberID != nil {
			f = f.WithBarber(*req.BarberID)
		}
		if req.DateRange != nil {
			f = f.WithDateRange(req.DateRange.From, req.DateRange.To)
		}
		if req.Limit != nil {
			f = f.WithLimit(*req.Limit)
		}
		if req.Page != nil {
			// Число страниц известно только для прежнего набора фильтров
			if filterChanged(req) {
				f = f.WithPage(*req.Page)
			} else {
				f = f.WithPage(*req.Page).ClampPage(totalPages)
			}
		}
		return f
	}, nil
}

func filterChanged(req *models.FilterUpdate) bool {
	return req.Reset || req.Status != nil || req.BarberID != nil || req.DateRange != nil || req.Limit != nil
}

// apply запускает загрузку и возвращает состояние после нее
func (s *Service) apply(ctx context.Context, op string, transition state.Transition) (*models.ViewResponse, error) {
	_, err := s.fetcher.ExecuteTransition(ctx, s.businessID, transition)
	view := s.View()
	if err == nil {
		return view, nil
	}

	switch {
	case errors.Is(err, fetch_appointments.ErrSessionExpired):
		s.logger.Warn("%s: business=%s: session expired", op, s.businessID)
		return view, ErrSessionExpired
	case errors.Is(err, fetch_appointments.ErrInvalidInput):
		s.logger.Error("%s: business=%s: %v", op, s.businessID, err)
		return view, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		s.logger.Warn("%s: business=%s: %v", op, s.businessID, err)
		return view, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
