package get_top_customers

import (
	"context"

	topCustomers "github.com/avlasova/GCA-SchedulingService/internal/usecase/top_customers"
)

type TopCustomersUseCase interface {
	Execute(ctx context.Context, req *topCustomers.Request) (*topCustomers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
