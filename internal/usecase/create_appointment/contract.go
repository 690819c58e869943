package create_appointment

import (
	"context"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	"github.com/avlasova/GCA-SchedulingService/internal/usecase/check_conflict"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, customerID int64) (*domain.Customer, error)
}

// ConflictChecker интерфейс проверки пересечения интервала с записями клиента
type ConflictChecker interface {
	Execute(ctx context.Context, req *check_conflict.Request) (*check_conflict.Response, error)
}

// TxManager интерфейс для выполнения функций в сериализуемой транзакции
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
