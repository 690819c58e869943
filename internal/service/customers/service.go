package customers

import (
	"context"
	"errors"
	"fmt"

	customerRepo "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/customer"
	"github.com/avlasova/GCA-SchedulingService/internal/service/customers/models"
)

// Service сервис для работы с клиентами
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// List получает список всех клиентов
func (s *Service) List(ctx context.Context) (*models.CustomerListResponse, error) {
	s.logger.Info("List: fetching all customers")

	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d customers", len(customers))
	return models.FromDomainCustomerList(customers), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, customerID int64) (*models.CustomerResponse, error) {
	s.logger.Info("GetByID: fetching customer id=%d", customerID)

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched customer id=%d", customerID)
	return models.FromDomainCustomer(customer), nil
}
