package domain

import "time"

// Appointment represents a scheduled appointment in the system
type Appointment struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Type        string
	Start       time.Time
	End         time.Time
	CustomerID  int64
	UserID      int64
	ContactID   int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the occupied time span of the appointment.
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.Start, End: a.End}
}

// DurationMinutes returns the scheduled length of the appointment in whole minutes.
func (a *Appointment) DurationMinutes() int64 {
	return a.Interval().Minutes()
}

// IsForCustomer returns true if the appointment belongs to the given customer.
func (a *Appointment) IsForCustomer(customerID int64) bool {
	return a.CustomerID == customerID
}

// IsForUser returns true if the appointment is assigned to the given user.
func (a *Appointment) IsForUser(userID int64) bool {
	return a.UserID == userID
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	CustomerID *int64     // Фильтр по клиенту (опционально)
	UserID     *int64     // Фильтр по пользователю (опционально)
	ContactID  *int64     // Фильтр по контакту (опционально)
	StartFrom  *time.Time // Начало периода по start_time (опционально)
	StartTo    *time.Time // Конец периода по start_time (опционально)
}
