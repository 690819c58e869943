package top_customers

import (
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	"github.com/avlasova/GCA-SchedulingService/pkg/timewindow"
)

// minutesByCustomer суммирует длительность записей текущего месяца
// по клиентам. Отбор по месяцу идет через timewindow.InMonth.
func minutesByCustomer(appointments []*domain.Appointment, today time.Time) map[int64]int64 {
	totals := make(map[int64]int64)
	for _, app := range appointments {
		if !timewindow.InMonth(app.Start, today) {
			continue
		}
		totals[app.CustomerID] += app.DurationMinutes()
	}

	return totals
}

// extractLeader выбирает клиента с максимальной суммой минут и удаляет его
// из totals. При равенстве сумм побеждает меньший идентификатор клиента.
// Нулевые суммы не претендуют на место: возвращается (0, 0).
func extractLeader(totals map[int64]int64) (customerID int64, minutes int64) {
	for id, total := range totals {
		if total > minutes || (total == minutes && total > 0 && id < customerID) {
			customerID = id
			minutes = total
		}
	}
	if minutes == 0 {
		return 0, 0
	}

	delete(totals, customerID)
	return customerID, minutes
}
