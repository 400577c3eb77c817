package barberapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

// ListBusinessAppointments получает страницу записей бизнеса с учетом фильтра
// GET /appointments/business/{businessId}?page&limit&status&barberId&from&to
func (c *Client) ListBusinessAppointments(ctx context.Context, businessID string, filter domain.FilterSpec) (*AppointmentPage, error) {
	var resp listAppointmentsResponse
	err := c.do(ctx, request{
		endpoint: "list_appointments",
		method:   http.MethodGet,
		path:     "/appointments/business/" + url.PathEscape(businessID),
		query:    filter.ToQuery(),
	}, &resp)
	if err != nil {
		return nil, err
	}

	page, err := toAppointmentPage(&resp, filter.Limit)
	if err != nil {
		c.log.Error("ListBusinessAppointments: business=%s: %v", businessID, err)
		return nil, err
	}

	return page, nil
}

// CompleteAppointment отмечает запись выполненной
// PUT /appointments/{id}/complete
func (c *Client) CompleteAppointment(ctx context.Context, appointmentID, barberNotes, completedBy string) error {
	err := c.do(ctx, request{
		endpoint: "complete_appointment",
		method:   http.MethodPut,
		path:     fmt.Sprintf("/appointments/%s/complete", url.PathEscape(appointmentID)),
		body: completeAppointmentRequest{
			BarberNotes: barberNotes,
			CompletedBy: completedBy,
		},
		notFound: ErrAppointmentNotFound,
	}, nil)
	if err != nil {
		return err
	}

	c.log.Info("CompleteAppointment: appointment=%s completed by=%s", appointmentID, completedBy)
	return nil
}

// CancelAppointment отменяет запись с указанием причины
// DELETE /appointments/{id}/cancel
func (c *Client) CancelAppointment(ctx context.Context, appointmentID, reason, cancelledBy string) error {
	err := c.do(ctx, request{
		endpoint: "cancel_appointment",
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/appointments/%s/cancel", url.PathEscape(appointmentID)),
		body: cancelAppointmentRequest{
			Reason:      reason,
			CancelledBy: cancelledBy,
		},
		notFound: ErrAppointmentNotFound,
	}, nil)
	if err != nil {
		return err
	}

	c.log.Info("CancelAppointment: appointment=%s cancelled by=%s", appointmentID, cancelledBy)
	return nil
}
