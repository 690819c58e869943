package update_appointment

import (
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// Request модель запроса на обновление записи. Все поля записи
// заменяются целиком.
type Request struct {
	AppointmentID int64
	Title         string
	Description   string
	Location      string
	Type          string
	Start         time.Time
	End           time.Time
	CustomerID    int64
	UserID        int64
	ContactID     int64
}

// Response модель ответа с обновленной записью
type Response struct {
	Appointment *domain.Appointment
}

// toDomain конвертирует запрос в доменную модель записи
func (r *Request) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:          r.AppointmentID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Type:        r.Type,
		Start:       r.Start,
		End:         r.End,
		CustomerID:  r.CustomerID,
		UserID:      r.UserID,
		ContactID:   r.ContactID,
	}
}
