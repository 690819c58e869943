package upcoming_appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	"github.com/avlasova/GCA-SchedulingService/pkg/ptr"
)

// UseCase use case поиска записей пользователя, начинающихся
// в ближайшие пятнадцать минут
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

// Execute находит записи пользователя, пересекающие окно
// [сейчас, сейчас + 15 минут). Запись, начинающаяся ровно через
// пятнадцать минут, в окно не входит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидируем входные данные
	if req.UserID <= 0 {
		uc.logger.Warn("UpcomingAppointments: invalid user id %d", req.UserID)
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	// 2. Получаем записи пользователя
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		UserID: ptr.Ptr(req.UserID),
	})
	if err != nil {
		uc.logger.Error("UpcomingAppointments: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 3. Отбираем записи, пересекающие окно оповещения
	now := uc.timeProvider.Now()
	window := domain.Interval{
		Start: now,
		End:   now.Add(domain.UpcomingLookaheadMinutes * time.Minute),
	}

	upcoming := make([]*domain.Appointment, 0)
	for _, app := range appointments {
		if window.Overlaps(app.Interval()) {
			upcoming = append(upcoming, app)
		}
	}

	uc.logger.Info("UpcomingAppointments: user=%d, upcoming=%d", req.UserID, len(upcoming))

	return &Response{Appointments: upcoming}, nil
}
