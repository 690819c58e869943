package check_conflict

import (
	"context"
	"fmt"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// UseCase use case проверки пересечения интервала записи с уже
// существующими записями клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет проверку пересечения.
// Возвращает Overlapping=true, если интервал-кандидат пересекается хотя бы
// с одной записью указанного клиента. Запись с ID ExcludeAppointmentID
// пропускается. Пустой набор записей - не ошибка: пересечений нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	candidate := domain.Interval{Start: req.Start, End: req.End}

	// Снимок записей только выбранного клиента
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		CustomerID: &req.CustomerID,
	})
	if err != nil {
		uc.logger.Error("CheckConflict: failed to get appointments for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	overlapping := isOverlapping(candidate, req.ExcludeAppointmentID, appointments)

	uc.logger.Info("CheckConflict: customer=%d, start=%s, end=%s, overlapping=%t",
		req.CustomerID, req.Start.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.End.Format(domain.DateFormat+" "+domain.TimeFormat), overlapping)

	return &Response{Overlapping: overlapping}, nil
}

// isOverlapping применяет трехчастную проверку пересечения к каждой записи
func isOverlapping(candidate domain.Interval, excludeID *int64, appointments []*domain.Appointment) bool {
	for _, app := range appointments {
		if excludeID != nil && app.ID == *excludeID {
			continue
		}
		if candidate.Overlaps(app.Interval()) {
			return true
		}
	}
	return false
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !(domain.Interval{Start: req.Start, End: req.End}).IsValid() {
		return ErrInvalidInterval
	}
	return nil
}
