package generate_slots

import "time"

// Request модель запроса на генерацию слотов рабочего времени.
// Location - локальная таймзона вызывающей стороны, в которой
// отображаются времена слотов.
type Request struct {
	Date     time.Time
	Location *time.Location
}

// Response модель ответа со списком доступных времен начала записи.
// Слоты отсортированы хронологически; при переходе на летнее/зимнее время
// одно и то же локальное время может встретиться дважды - это ожидаемо.
type Response struct {
	Date     time.Time
	Timezone string
	Slots    []string // локальное время стены "HH:MM"
}
