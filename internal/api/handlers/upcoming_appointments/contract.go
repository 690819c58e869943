package upcoming_appointments

import (
	"context"

	upcomingAppointments "github.com/avlasova/GCA-SchedulingService/internal/usecase/upcoming_appointments"
)

type UpcomingAppointmentsUseCase interface {
	Execute(ctx context.Context, req *upcomingAppointments.Request) (*upcomingAppointments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
