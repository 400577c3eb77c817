package analytics

import "github.com/m04kA/SMC-BarberDashboard/internal/domain"

// Shares вычисляет долю каждой сущности в общей выручке и общем числе записей, в процентах.
// При нулевой сумме доли равны 0. Порядок входа сохраняется, сортировки и дедупликации нет.
func Shares(entities []domain.RankedEntity) []domain.RankedShare {
	var totalRevenue float64
	var totalAppointments int
	for _, e := range entities {
		totalRevenue += e.Revenue
		totalAppointments += e.Appointments
	}

	out := make([]domain.RankedShare, len(entities))
	for i, e := range entities {
		out[i] = domain.RankedShare{
			RankedEntity:     e,
			RevenueShare:     percent(e.Revenue, totalRevenue),
			AppointmentShare: percent(float64(e.Appointments), float64(totalAppointments)),
		}
	}
	return out
}

func percent(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}
