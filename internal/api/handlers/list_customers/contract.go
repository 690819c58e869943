package list_customers

import (
	"context"

	"github.com/avlasova/GCA-SchedulingService/internal/service/customers/models"
)

type CustomerService interface {
	List(ctx context.Context) (*models.CustomerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
