package list_appointments

import (
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	listAppointments "github.com/avlasova/GCA-SchedulingService/internal/usecase/list_appointments"
)

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
}

// AppointmentListResponse HTTP response model со списком записей
type AppointmentListResponse struct {
	View         string                `json:"view"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listAppointments.Response) *AppointmentListResponse {
	result := &AppointmentListResponse{
		View:         string(resp.View),
		Appointments: make([]AppointmentResponse, 0, len(resp.Appointments)),
	}

	for _, app := range resp.Appointments {
		result.Appointments = append(result.Appointments, fromDomainAppointment(app))
	}

	return result
}

func fromDomainAppointment(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
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
	}
}
