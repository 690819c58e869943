package create_appointment

import (
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	Title       string
	Description string
	Location    string
	Type        string
	Start       time.Time
	End         time.Time
	CustomerID  int64
	UserID      int64
	ContactID   int64
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}

// toDomain конвертирует запрос в доменную модель записи
func (r *Request) toDomain() *domain.Appointment {
	return &domain.Appointment{
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
