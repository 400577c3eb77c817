package domain

import "time"

// TransitionAction a status mutation issued from the dashboard
type TransitionAction string

const (
	ActionComplete TransitionAction = "complete"
	ActionCancel   TransitionAction = "cancel"
)

// TransitionOutcome result of a status mutation
type TransitionOutcome string

const (
	OutcomeSuccess TransitionOutcome = "success"
	OutcomeFailure TransitionOutcome = "failure"
)

// JournalEntry one recorded status mutation
type JournalEntry struct {
	ID            string
	AppointmentID string
	BusinessID    string
	Action        TransitionAction
	ActorID       string
	Comment       *string
	Outcome       TransitionOutcome
	Error         *string
	CreatedAt     time.Time
}

// JournalFilter selection of journal entries, newest first
type JournalFilter struct {
	BusinessID    string
	AppointmentID *string
	Limit         int
}
