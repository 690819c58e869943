package count_by_type_month

import (
	"context"
	"fmt"
	"strings"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// UseCase use case подсчета записей заданного типа в заданном месяце
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

// Execute выполняет подсчет записей по типу и месяцу.
// Тип сравнивается без учета регистра, год не участвует в отборе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидируем входные данные
	if strings.TrimSpace(req.Type) == "" {
		uc.logger.Warn("CountByTypeMonth: empty type")
		return nil, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if req.Month < domain.MinReportMonth || req.Month > domain.MaxReportMonth {
		uc.logger.Warn("CountByTypeMonth: month %d out of range", req.Month)
		return nil, fmt.Errorf("%w: month must be in range %d..%d",
			ErrInvalidInput, domain.MinReportMonth, domain.MaxReportMonth)
	}

	// 2. Получаем полный снимок записей
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{})
	if err != nil {
		uc.logger.Error("CountByTypeMonth: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 3. Считаем совпадения по типу и номеру месяца начала
	count := 0
	for _, app := range appointments {
		if int(app.Start.Month()) == req.Month && strings.EqualFold(app.Type, req.Type) {
			count++
		}
	}

	uc.logger.Info("CountByTypeMonth: type=%q, month=%d, count=%d", req.Type, req.Month, count)

	return &Response{Type: req.Type, Month: req.Month, Count: count}, nil
}
