package create_appointment

import (
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	createAppointment "github.com/avlasova/GCA-SchedulingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type"`
	Start       string `json:"start"` // ISO 8601
	End         string `json:"end"`   // ISO 8601
	CustomerID  int64  `json:"customerId"`
	ContactID   int64  `json:"contactId"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type"`
	Start       string `json:"start"`
	End         string `json:"end"`
	CustomerID  int64  `json:"customerId"`
	UserID      int64  `json:"userId"`
	ContactID   int64  `json:"contactId"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Type:        r.Type,
		Start:       start,
		End:         end,
		CustomerID:  r.CustomerID,
		UserID:      userID,
		ContactID:   r.ContactID,
	}, nil
}

// FromDomainAppointment конвертирует доменную модель в HTTP response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Location:    a.Location,
		Type:        a.Type,
		Start:       a.Start.Format(time.RFC3339),
		End:         a.End.Format(time.RFC3339),
		CustomerID:  a.CustomerID,
		UserID:      a.UserID,
		ContactID:   a.ContactID,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}
