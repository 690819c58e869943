package top_customers

import (
	"context"
	"fmt"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// UseCase use case построения рейтинга клиентов текущего месяца
// по суммарной длительности записей
type UseCase struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute строит рейтинг клиентов текущего месяца.
func (uc *UseCase) Execute(ctx context.Context, _ *Request) (*Response, error) {
	// 1. Получаем полный снимок записей
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{})
	if err != nil {
		uc.logger.Error("TopCustomers: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 2. Суммируем минуты по клиентам в окне текущего месяца
	today := uc.timeProvider.Now()
	totals := minutesByCustomer(appointments, today)

	// 3. Извлекаем лидеров по очереди, нулевые суммы места не занимают
	var ranking domain.CustomerRanking
	for place := range ranking {
		customerID, minutes := extractLeader(totals)
		if minutes == 0 {
			break
		}

		customer, err := uc.customerRepo.GetByID(ctx, customerID)
		if err != nil {
			uc.logger.Error("TopCustomers: failed to get customer %d: %v", customerID, err)
			return nil, fmt.Errorf("%w: failed to get customer %d: %v", ErrInternal, customerID, err)
		}

		ranking[place] = &domain.RankingEntry{
			Customer:     *customer,
			TotalMinutes: minutes,
		}
	}

	uc.logger.Info("TopCustomers: built ranking for month %s", today.Month())

	return &Response{Ranking: ranking}, nil
}
