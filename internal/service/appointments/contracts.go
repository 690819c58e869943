package appointments

import (
	"context"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, appointmentID int64) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Delete(ctx context.Context, appointmentID int64) error
}

// ContactRepository интерфейс репозитория контактов
type ContactRepository interface {
	GetByID(ctx context.Context, contactID int64) (*domain.Contact, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
