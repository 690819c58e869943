package list_appointments

import (
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	"github.com/avlasova/GCA-SchedulingService/pkg/timewindow"
)

// filterByWeek оставляет записи, дата начала которых попадает в неделю
// с воскресенья по субботу, содержащую сегодняшний день.
// Границы включительные: запись в субботу 23:00 входит в неделю,
// запись в воскресенье 00:01 следующей недели - уже нет.
func filterByWeek(appointments []*domain.Appointment, today time.Time) []*domain.Appointment {
	first, last := timewindow.WeekBounds(today)

	result := make([]*domain.Appointment, 0)
	for _, app := range appointments {
		startDate := truncateToDay(app.Start)
		if !startDate.Before(first) && !startDate.After(last) {
			result = append(result, app)
		}
	}

	return result
}

// filterByMonth оставляет записи текущего месяца. Отбор идет через
// timewindow.InMonth со всеми его особенностями: сравниваются номер дня
// и название месяца, год не участвует.
func filterByMonth(appointments []*domain.Appointment, today time.Time) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)
	for _, app := range appointments {
		if timewindow.InMonth(app.Start, today) {
			result = append(result, app)
		}
	}

	return result
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
