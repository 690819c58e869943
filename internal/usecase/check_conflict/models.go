package check_conflict

import "time"

// Request модель запроса на проверку пересечения записей.
// ExcludeAppointmentID задается при обновлении существующей записи,
// чтобы не сравнивать запись саму с собой.
type Request struct {
	CustomerID           int64
	Start                time.Time
	End                  time.Time
	ExcludeAppointmentID *int64
}

// Response модель ответа проверки пересечения
type Response struct {
	Overlapping bool
}
