package customers

import (
	"context"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, customerID int64) (*domain.Customer, error)
	GetAll(ctx context.Context) ([]*domain.Customer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
