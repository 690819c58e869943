package models

import (
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// Response модели

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
	DivisionID int64  `json:"divisionId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// Методы конвертации

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}

	return &CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Address:    c.Address,
		PostalCode: c.PostalCode,
		Phone:      c.Phone,
		DivisionID: c.DivisionID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(customers)),
	}

	for _, customer := range customers {
		if converted := FromDomainCustomer(customer); converted != nil {
			resp.Customers = append(resp.Customers, *converted)
		}
	}

	return resp
}
