package delivery

import (
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

// GenerateCalendarDays строит сетку месяца для календаря
// От воскресенья в день 1-го числа или до него, до субботы в последний день месяца или после него
// Длина всегда кратна 7
func GenerateCalendarDays(monthAnchor time.Time) []time.Time {
	loc := monthAnchor.Location()
	year, month := monthAnchor.Year(), monthAnchor.Month()

	// Считаем по гражданским датам в UTC: локальной полуночи может не быть из-за перевода часов
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()
	lastOfMonth := time.Date(year, month, daysInMonth, 0, 0, 0, 0, time.UTC)

	leading := int(firstOfMonth.Weekday())
	trailing := int(time.Saturday - lastOfMonth.Weekday())
	total := leading + daysInMonth + trailing

	days := make([]time.Time, total)
	for i := range days {
		days[i] = time.Date(year, month, 1-leading+i, 0, 0, 0, 0, loc)
	}

	return days
}

// CalendarDays размечает сетку месяца для выбранной корзины
func (p *Planner) CalendarDays(monthAnchor time.Time, prepHours int) []domain.CalendarDay {
	anchor := dateOnlyIn(monthAnchor, p.settings.Location)
	grid := GenerateCalendarDays(anchor)

	result := make([]domain.CalendarDay, len(grid))
	for i, day := range grid {
		inMonth := day.Month() == anchor.Month() && day.Year() == anchor.Year()
		result[i] = domain.CalendarDay{
			Date:     day,
			InMonth:  inMonth,
			IsToday:  p.IsToday(day),
			Disabled: !inMonth || !p.IsDateSelectable(day, prepHours),
		}
	}

	return result
}
