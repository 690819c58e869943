package generate_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// UseCase use case генерации доступных времен начала записи в пределах
// рабочих часов организации
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute выполняет генерацию слотов на указанную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GenerateSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	local := req.Location
	if local == nil {
		local = time.Local
	}

	slots, err := generateBusinessHourSlots(req.Date, local)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GenerateSlots: generated %d slots for date=%s, tz=%s",
		len(slots), req.Date.Format(domain.DateFormat), local.String())

	return &Response{
		Date:     req.Date,
		Timezone: local.String(),
		Slots:    slots,
	}, nil
}
