package upcoming_appointments

import (
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	upcomingAppointments "github.com/avlasova/GCA-SchedulingService/internal/usecase/upcoming_appointments"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Location   string `json:"location,omitempty"`
	Start      string `json:"start"`
	End        string `json:"end"`
	CustomerID int64  `json:"customerId"`
	ContactID  int64  `json:"contactId"`
}

// UpcomingResponse HTTP response model с ближайшими записями
type UpcomingResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *upcomingAppointments.Response) *UpcomingResponse {
	result := &UpcomingResponse{
		Appointments: make([]AppointmentResponse, 0, len(resp.Appointments)),
	}

	for _, app := range resp.Appointments {
		result.Appointments = append(result.Appointments, fromDomainAppointment(app))
	}

	return result
}

func fromDomainAppointment(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:         a.ID,
		Title:      a.Title,
		Type:       a.Type,
		Location:   a.Location,
		Start:      a.Start.Format(time.RFC3339),
		End:        a.End.Format(time.RFC3339),
		CustomerID: a.CustomerID,
		ContactID:  a.ContactID,
	}
}
