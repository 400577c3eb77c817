package domain

import "time"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// AllStatuses lists every status known to the dashboard, in display order
var AllStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// transitions holds the lifecycle edges known to the dashboard.
// confirmed and in_progress are set by other clients; their edges are left to the backend.
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// ParseAppointmentStatus validates a raw status string
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// IsValid returns true if the status is one of AllStatuses
func (s AppointmentStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true for statuses that never transition further
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// CanTransitionTo reports whether the dashboard may move an appointment from s to next.
// Terminal statuses never move. A status without known edges may move to any
// terminal status and the backend makes the final decision.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s.IsTerminal() {
		return false
	}

	allowed, known := transitions[s]
	if !known {
		return next.IsTerminal()
	}

	for _, a := range allowed {
		if a == next {
			return true
		}
	}
	return false
}

// Cancellation holds cancellation metadata of an appointment
type Cancellation struct {
	Reason      string
	CancelledBy string
	CancelledAt *time.Time
}

// Reminders holds reminder delivery flags
type Reminders struct {
	DayBeforeSent  bool
	HourBeforeSent bool
}

// Appointment represents a single appointment as shown on the dashboard
type Appointment struct {
	ID              string
	ScheduledAt     time.Time
	DurationMinutes int
	Status          AppointmentStatus

	BusinessID string
	BarberID   string
	ServiceID  string
	ClientID   string

	// Denormalized names, present when the backend populates references
	BarberName  *string
	ServiceName *string
	ClientName  *string

	TotalPrice  float64
	ClientNotes *string
	BarberNotes *string

	Cancellation *Cancellation
	Reminders    Reminders

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndsAt returns the scheduled end of the appointment
func (a *Appointment) EndsAt() time.Time {
	return a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// CanBeCompleted returns true if the appointment may be marked completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status.CanTransitionTo(StatusCompleted)
}

// CanBeCancelled returns true if the appointment may be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status.CanTransitionTo(StatusCancelled)
}

// StatusStats holds appointment counters per status bucket as reported by the backend
type StatusStats map[AppointmentStatus]int

// Total returns the sum over all buckets
func (s StatusStats) Total() int {
	total := 0
	for _, count := range s {
		total += count
	}
	return total
}
