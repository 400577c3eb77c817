package analytics

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

// Summarize вычисляет сводную статистику по упорядоченному временному ряду.
// Пустой ряд дает нулевую статистику. Рост считается от первого бакета к последнему
// и равен 0, если первый бакет пустой.
func Summarize(points []domain.PeriodDataPoint) domain.SummaryStats {
	if len(points) == 0 {
		return domain.SummaryStats{}
	}

	stats := domain.SummaryStats{
		Peak:   points[0].Count,
		Lowest: points[0].Count,
	}
	for _, p := range points {
		stats.Total += p.Count
		if p.Count > stats.Peak {
			stats.Peak = p.Count
		}
		if p.Count < stats.Lowest {
			stats.Lowest = p.Count
		}
	}

	stats.Average = float64(stats.Total) / float64(len(points))

	first, last := points[0].Count, points[len(points)-1].Count
	if first != 0 {
		stats.Growth = float64(last-first) / float64(first) * 100
	}

	return stats
}

// ChartPoints конвертирует ряд в точки графика с подписями периода. Порядок сохраняется.
func ChartPoints(points []domain.PeriodDataPoint, period domain.Period) []domain.ChartPoint {
	out := make([]domain.ChartPoint, len(points))
	for i, p := range points {
		out[i] = domain.ChartPoint{
			Label: FormatPeriodLabel(period, p.Date, p.Period),
			Date:  p.Date,
			Count: p.Count,
		}
	}
	return out
}

// FormatPeriodLabel форматирует подпись бакета:
// day "02 Jan", week "W41 2025", month "Oct 2025", year "2025".
// Если дату не удалось разобрать, возвращается подпись от API.
func FormatPeriodLabel(period domain.Period, date, fallback string) string {
	t, ok := parseBucketDate(date)
	if !ok {
		if fallback != "" {
			return fallback
		}
		return date
	}

	switch period {
	case domain.PeriodDay:
		return t.Format("02 Jan")
	case domain.PeriodWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("W%d %d", week, year)
	case domain.PeriodMonth:
		return t.Format("Jan 2006")
	case domain.PeriodYear:
		return t.Format("2006")
	default:
		return t.Format(domain.DateFormat)
	}
}

func parseBucketDate(date string) (time.Time, bool) {
	for _, layout := range []string{domain.DateFormat, time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
