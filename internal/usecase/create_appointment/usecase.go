package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	customerstore "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/customer"
	"github.com/avlasova/GCA-SchedulingService/internal/usecase/check_conflict"
)

// UseCase use case создания записи с проверкой пересечений
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

// Execute выполняет создание записи.
// Проверка существования клиента, проверка пересечений и вставка идут
// в одной сериализуемой транзакции: две конкурирующие записи одного
// клиента не могут пройти проверку одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидируем входные данные
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Appointment

	// 2. Проверяем клиента, пересечения и создаем запись в транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := uc.customerRepo.GetByID(txCtx, req.CustomerID); err != nil {
			if errors.Is(err, customerstore.ErrCustomerNotFound) {
				return fmt.Errorf("%w: customer %d", ErrCustomerNotFound, req.CustomerID)
			}
			return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}

		conflict, err := uc.conflictChecker.Execute(txCtx, &check_conflict.Request{
			CustomerID: req.CustomerID,
			Start:      req.Start,
			End:        req.End,
		})
		if err != nil {
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if conflict.Overlapping {
			return fmt.Errorf("%w: customer %d already has an appointment in this interval",
				ErrAppointmentConflict, req.CustomerID)
		}

		created, err = uc.appointmentRepo.Create(txCtx, req.toDomain())
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment %d for customer %d",
		created.ID, created.CustomerID)

	return &Response{Appointment: created}, nil
}
