package list_appointments

import (
	"context"
	"fmt"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// UseCase use case получения списка записей в режимах "все",
// "текущая неделя" и "текущий месяц"
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет получение списка записей в выбранном режиме.
// Исходный порядок снимка сохраняется; снимок не изменяется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	view := req.View
	if view == "" {
		view = ViewAll
	}
	if view != ViewAll && view != ViewWeek && view != ViewMonth {
		uc.logger.Warn("ListAppointments: unknown view %q", view)
		return nil, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, view)
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{})
	if err != nil {
		uc.logger.Error("ListAppointments: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	today := uc.timeProvider.Now()

	var filtered []*domain.Appointment
	switch view {
	case ViewWeek:
		filtered = filterByWeek(appointments, today)
	case ViewMonth:
		filtered = filterByMonth(appointments, today)
	default:
		filtered = appointments
	}

	uc.logger.Info("ListAppointments: view=%s, total=%d, returned=%d",
		view, len(appointments), len(filtered))

	return &Response{View: view, Appointments: filtered}, nil
}
