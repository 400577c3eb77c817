package domain

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// FilterSpec query constraints applied to the business appointment list.
// All With* methods are pure transitions: they return a new spec and never
// modify the receiver.
type FilterSpec struct {
	Status   *AppointmentStatus
	BarberID *string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Limit    int
}

// DefaultFilterSpec returns the filter used when the dashboard is opened
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}
}

// WithStatus sets or clears (nil) the status filter and resets the page
func (f FilterSpec) WithStatus(status *AppointmentStatus) FilterSpec {
	next := f.clone()
	if status != nil {
		s := *status
		next.Status = &s
	} else {
		next.Status = nil
	}
	next.Page = DefaultPage
	return next
}

// WithBarber sets the barber filter and resets the page. Blank id clears the filter.
func (f FilterSpec) WithBarber(barberID string) FilterSpec {
	next := f.clone()
	barberID = strings.TrimSpace(barberID)
	if barberID == "" {
		next.BarberID = nil
	} else {
		next.BarberID = &barberID
	}
	next.Page = DefaultPage
	return next
}

// WithDateRange sets the date range and resets the page.
// Either bound may be nil. A reversed range is swapped.
func (f FilterSpec) WithDateRange(from, to *time.Time) FilterSpec {
	next := f.clone()
	next.DateFrom = copyTime(from)
	next.DateTo = copyTime(to)
	if next.DateFrom != nil && next.DateTo != nil && next.DateFrom.After(*next.DateTo) {
		next.DateFrom, next.DateTo = next.DateTo, next.DateFrom
	}
	next.Page = DefaultPage
	return next
}

// WithPage sets the page. Nothing else is reset. Pages below 1 become 1.
func (f FilterSpec) WithPage(page int) FilterSpec {
	next := f.clone()
	if page < DefaultPage {
		page = DefaultPage
	}
	next.Page = page
	return next
}

// WithLimit sets the page size and resets the page.
// Non-positive limits fall back to DefaultLimit, large ones are capped at MaxLimit.
func (f FilterSpec) WithLimit(limit int) FilterSpec {
	next := f.clone()
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	next.Limit = limit
	next.Page = DefaultPage
	return next
}

// Reset returns the default spec
func (f FilterSpec) Reset() FilterSpec {
	return DefaultFilterSpec()
}

// ClampPage keeps the page inside [1, totalPages]. totalPages <= 0 means unknown.
func (f FilterSpec) ClampPage(totalPages int) FilterSpec {
	next := f.clone()
	if totalPages > 0 && next.Page > totalPages {
		next.Page = totalPages
	}
	if next.Page < DefaultPage {
		next.Page = DefaultPage
	}
	return next
}

// Equal compares two specs by value
func (f FilterSpec) Equal(other FilterSpec) bool {
	return f.Page == other.Page &&
		f.Limit == other.Limit &&
		equalPtr(f.Status, other.Status) &&
		equalPtr(f.BarberID, other.BarberID) &&
		equalTime(f.DateFrom, other.DateFrom) &&
		equalTime(f.DateTo, other.DateTo)
}

// ToQuery renders the filter as list endpoint query parameters
func (f FilterSpec) ToQuery() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(f.Page))
	q.Set("limit", strconv.Itoa(f.Limit))
	if f.Status != nil {
		q.Set("status", string(*f.Status))
	}
	if f.BarberID != nil {
		q.Set("barberId", *f.BarberID)
	}
	if f.DateFrom != nil {
		q.Set("from", f.DateFrom.Format(DateFormat))
	}
	if f.DateTo != nil {
		q.Set("to", f.DateTo.Format(DateFormat))
	}
	return q
}

func (f FilterSpec) clone() FilterSpec {
	next := f
	if f.Status != nil {
		s := *f.Status
		next.Status = &s
	}
	if f.BarberID != nil {
		b := *f.BarberID
		next.BarberID = &b
	}
	next.DateFrom = copyTime(f.DateFrom)
	next.DateTo = copyTime(f.DateTo)
	return next
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
