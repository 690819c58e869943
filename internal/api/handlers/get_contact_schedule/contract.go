package get_contact_schedule

import (
	"context"

	"github.com/avlasova/GCA-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByContact(ctx context.Context, contactID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
