package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	appointmentstore "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/appointment"
	customerstore "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/customer"
	"github.com/avlasova/GCA-SchedulingService/internal/usecase/check_conflict"
	"github.com/avlasova/GCA-SchedulingService/pkg/ptr"
)

// UseCase use case обновления записи с проверкой пересечений
// внутри сериализуемой транзакции
type UseCase struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	conflictChecker ConflictChecker
	txManager       TxManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	conflictChecker ConflictChecker,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		conflictChecker: conflictChecker,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет обновление записи.
// При проверке пересечений сама обновляемая запись исключается:
// запись не конфликтует со своим прежним интервалом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидируем входные данные
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.Appointment

	// 2. Проверяем запись, клиента, пересечения и обновляем в транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID); err != nil {
			if errors.Is(err, appointmentstore.ErrAppointmentNotFound) {
				return fmt.Errorf("%w: appointment %d", ErrAppointmentNotFound, req.AppointmentID)
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if _, err := uc.customerRepo.GetByID(txCtx, req.CustomerID); err != nil {
			if errors.Is(err, customerstore.ErrCustomerNotFound) {
				return fmt.Errorf("%w: customer %d", ErrCustomerNotFound, req.CustomerID)
			}
			return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}

		conflict, err := uc.conflictChecker.Execute(txCtx, &check_conflict.Request{
			CustomerID:           req.CustomerID,
			Start:                req.Start,
			End:                  req.End,
			ExcludeAppointmentID: ptr.Ptr(req.AppointmentID),
		})
		if err != nil {
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if conflict.Overlapping {
			return fmt.Errorf("%w: customer %d already has an appointment in this interval",
				ErrAppointmentConflict, req.CustomerID)
		}

		updated, err = uc.appointmentRepo.Update(txCtx, req.toDomain())
		if err != nil {
			if errors.Is(err, appointmentstore.ErrAppointmentNotFound) {
				return fmt.Errorf("%w: appointment %d", ErrAppointmentNotFound, req.AppointmentID)
			}
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: updated appointment %d for customer %d",
		updated.ID, updated.CustomerID)

	return &Response{Appointment: updated}, nil
}
