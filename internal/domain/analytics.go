package domain

// Period granularity of a time series bucket
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod validates a raw period string
func ParsePeriod(s string) (Period, bool) {
	switch p := Period(s); p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return p, true
	default:
		return "", false
	}
}

// PeriodDataPoint one bucket of a backend-supplied time series
type PeriodDataPoint struct {
	Period string // backend label of the bucket
	Date   string // ISO date of the bucket start
	Count  int
}

// ChartPoint a time series bucket ready for charting
type ChartPoint struct {
	Label string
	Date  string
	Count int
}

// SummaryStats derived statistics over an ordered PeriodDataPoint sequence
type SummaryStats struct {
	Total   int
	Average float64
	Growth  float64 // percent, first bucket to last bucket
	Peak    int
	Lowest  int
}

// RankedEntity a service or barber with its aggregated metrics, as ranked by the backend
type RankedEntity struct {
	ID           string
	Name         string
	Revenue      float64
	Appointments int
}

// RankedShare a ranked entity with its percentage of the total
type RankedShare struct {
	RankedEntity
	RevenueShare     float64
	AppointmentShare float64
}
