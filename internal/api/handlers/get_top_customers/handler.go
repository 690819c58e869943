package get_top_customers

import (
	"net/http"

	"github.com/avlasova/GCA-SchedulingService/internal/api/handlers"
	topCustomers "github.com/avlasova/GCA-SchedulingService/internal/usecase/top_customers"
)

type Handler struct {
	useCase TopCustomersUseCase
	logger  Logger
}

func NewHandler(useCase TopCustomersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/top-customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context(), &topCustomers.Request{})
	if err != nil {
		h.logger.Error("GET /reports/top-customers - Failed to build ranking: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /reports/top-customers - Ranking retrieved: places_filled=%d", len(response.Ranking))
	handlers.RespondJSON(w, http.StatusOK, response)
}
