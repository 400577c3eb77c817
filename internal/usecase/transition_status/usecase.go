package transition_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/integrations/barberapi"
	"github.com/m04kA/SMC-BarberDashboard/pkg/ptr"
)

// UseCase use case для изменения статуса записи (завершение и отмена)
// Состояние не меняется оптимистично: после успешного изменения список перезагружается целиком.
type UseCase struct {
	client       AppointmentsClient
	state        StateReader
	fetcher      Fetcher
	journal      Journal
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client AppointmentsClient,
	state StateReader,
	fetcher Fetcher,
	journal Journal,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		state:        state,
		fetcher:      fetcher,
		journal:      journal,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Complete отмечает запись выполненной
func (uc *UseCase) Complete(ctx context.Context, req *CompleteRequest) (*Response, error) {
	if err := validateCompleteRequest(req); err != nil {
		uc.logger.Warn("CompleteAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CompleteAppointment: business=%s, appointment=%s, actor=%s",
		req.BusinessID, req.AppointmentID, req.ActorID)

	if err := uc.checkTransition(req.AppointmentID, domain.StatusCompleted); err != nil {
		return nil, err
	}

	err := uc.client.CompleteAppointment(ctx, req.AppointmentID, req.Notes, req.ActorID)

	var comment *string
	if req.Notes != "" {
		comment = ptr.Ptr(req.Notes)
	}
	uc.record(ctx, req.BusinessID, req.AppointmentID, domain.ActionComplete, req.ActorID, comment, err)

	if err != nil {
		return nil, uc.mapClientError("CompleteAppointment", req.AppointmentID, err)
	}

	return uc.refresh(ctx, req.BusinessID, req.AppointmentID, domain.StatusCompleted), nil
}

// Cancel отменяет запись от имени бизнеса
func (uc *UseCase) Cancel(ctx context.Context, req *CancelRequest) (*Response, error) {
	if err := validateCancelRequest(req); err != nil {
		uc.logger.Warn("CancelAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CancelAppointment: business=%s, appointment=%s, actor=%s",
		req.BusinessID, req.AppointmentID, req.ActorID)

	if err := uc.checkTransition(req.AppointmentID, domain.StatusCancelled); err != nil {
		return nil, err
	}

	err := uc.client.CancelAppointment(ctx, req.AppointmentID, req.Reason, domain.CancelledByBusiness)
	uc.record(ctx, req.BusinessID, req.AppointmentID, domain.ActionCancel, req.ActorID, ptr.Ptr(req.Reason), err)

	if err != nil {
		return nil, uc.mapClientError("CancelAppointment", req.AppointmentID, err)
	}

	return uc.refresh(ctx, req.BusinessID, req.AppointmentID, domain.StatusCancelled), nil
}

// checkTransition проверяет переход по локально известному статусу.
// Запись, отсутствующая на текущей странице, проверяется только на стороне API.
func (uc *UseCase) checkTransition(appointmentID string, next domain.AppointmentStatus) error {
	current, ok := uc.state.Appointment(appointmentID)
	if !ok {
		return nil
	}

	if !current.Status.CanTransitionTo(next) {
		uc.logger.Warn("TransitionStatus: appointment=%s cannot move from %s to %s",
			appointmentID, current.Status, next)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
	}
	return nil
}

func (uc *UseCase) mapClientError(op, appointmentID string, err error) error {
	switch {
	case errors.Is(err, barberapi.ErrAppointmentNotFound):
		uc.logger.Warn("%s: appointment=%s not found", op, appointmentID)
		return ErrAppointmentNotFound
	case errors.Is(err, barberapi.ErrUnauthorized):
		uc.logger.Warn("%s: session expired", op)
		return ErrSessionExpired
	case errors.Is(err, barberapi.ErrRejected):
		uc.logger.Warn("%s: appointment=%s rejected: %v", op, appointmentID, err)
		return fmt.Errorf("%w: %v", ErrRejected, err)
	default:
		uc.logger.Error("%s: appointment=%s: %v", op, appointmentID, err)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}

// refresh перезагружает список. Ошибка перезагрузки не делает изменение неуспешным.
func (uc *UseCase) refresh(ctx context.Context, businessID, appointmentID string, status domain.AppointmentStatus) *Response {
	resp := &Response{
		AppointmentID: appointmentID,
		Status:        status,
	}

	applied, err := uc.fetcher.Refresh(ctx, businessID)
	if err != nil {
		uc.logger.Warn("TransitionStatus: appointment=%s updated, refresh failed: %v", appointmentID, err)
		resp.RefreshError = err.Error()
		return resp
	}

	resp.Refreshed = applied
	return resp
}

func (uc *UseCase) record(
	ctx context.Context,
	businessID, appointmentID string,
	action domain.TransitionAction,
	actorID string,
	comment *string,
	callErr error,
) {
	entry := &domain.JournalEntry{
		AppointmentID: appointmentID,
		BusinessID:    businessID,
		Action:        action,
		ActorID:       actorID,
		Comment:       comment,
		Outcome:       domain.OutcomeSuccess,
		CreatedAt:     uc.timeProvider.Now(),
	}
	if callErr != nil {
		entry.Outcome = domain.OutcomeFailure
		entry.Error = ptr.Ptr(callErr.Error())
	}

	if err := uc.journal.Record(ctx, entry); err != nil {
		uc.logger.Error("TransitionStatus: failed to journal %s for appointment=%s: %v", action, appointmentID, err)
	}
}
