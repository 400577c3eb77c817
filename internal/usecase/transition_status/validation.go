package transition_status

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

// validateCompleteRequest проверяет запрос на завершение и нормализует поля
func validateCompleteRequest(req *CompleteRequest) error {
	if err := normalizeCommon(&req.BusinessID, &req.AppointmentID); err != nil {
		return err
	}

	req.ActorID = strings.TrimSpace(req.ActorID)
	if req.ActorID == "" {
		return fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}

	req.Notes = strings.TrimSpace(req.Notes)
	if len([]rune(req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateCancelRequest проверяет запрос на отмену и нормализует поля
func validateCancelRequest(req *CancelRequest) error {
	if err := normalizeCommon(&req.BusinessID, &req.AppointmentID); err != nil {
		return err
	}

	req.Reason = strings.TrimSpace(req.Reason)
	if req.Reason == "" {
		return fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}
	if len([]rune(req.Reason)) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	req.ActorID = strings.TrimSpace(req.ActorID)
	return nil
}

func normalizeCommon(businessID, appointmentID *string) error {
	*businessID = strings.TrimSpace(*businessID)
	if *businessID == "" {
		return fmt.Errorf("%w: business id is required", ErrInvalidInput)
	}

	*appointmentID = strings.TrimSpace(*appointmentID)
	if *appointmentID == "" {
		return fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	return nil
}
