package list_customers

import (
	"net/http"

	"github.com/avlasova/GCA-SchedulingService/internal/api/handlers"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /customers - Failed to list customers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers - Customers retrieved successfully: count=%d", len(customers.Customers))
	handlers.RespondJSON(w, http.StatusOK, customers)
}
