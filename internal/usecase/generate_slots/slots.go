package generate_slots

import (
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// generateBusinessHourSlots генерирует времена начала записи на указанную дату.
//
// Отсчет идет от 08:00 в таймзоне головного офиса (America/New_York) с шагом
// 15 минут. Шаг прибавляется к абсолютному моменту времени, поэтому переходы
// на летнее/зимнее время в таймзоне офиса учитываются корректно; каждый
// момент затем переводится в локальную таймзону вызывающей стороны и
// отдается как время стены.
//
// Условие остановки вычисляется по часам офиса, а не по переведенному
// времени: последний слот - тот, на котором часы офиса показывают ровно
// 22:00. Поэтому число слотов всегда (22:00-08:00)/15мин + 1 = 57,
// независимо от локальной таймзоны.
func generateBusinessHourSlots(date time.Time, local *time.Location) ([]string, error) {
	reference, err := time.LoadLocation(domain.BusinessTimezone)
	if err != nil {
		return nil, err
	}

	open := time.Date(date.Year(), date.Month(), date.Day(),
		domain.BusinessOpenHour, 0, 0, 0, reference)

	slots := make([]string, 0, 57)

	for offset := 0; ; offset += domain.SlotStepMinutes {
		instant := open.Add(time.Duration(offset) * time.Minute)
		slots = append(slots, instant.In(local).Format(domain.TimeFormat))

		// Часы офиса без учета DST: наивное время стены от 08:00
		wallMinutes := domain.BusinessOpenHour*60 + offset
		if wallMinutes/60 >= domain.BusinessCloseHour && wallMinutes%60 == 0 {
			break
		}
	}

	return slots, nil
}
