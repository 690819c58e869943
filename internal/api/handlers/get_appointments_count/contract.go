package get_appointments_count

import (
	"context"

	countByTypeMonth "github.com/avlasova/GCA-SchedulingService/internal/usecase/count_by_type_month"
)

type CountByTypeMonthUseCase interface {
	Execute(ctx context.Context, req *countByTypeMonth.Request) (*countByTypeMonth.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
