package get_appointments_count

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avlasova/GCA-SchedulingService/internal/api/handlers"
	countByTypeMonth "github.com/avlasova/GCA-SchedulingService/internal/usecase/count_by_type_month"
)

const (
	msgMissingType  = "тип записи обязателен"
	msgMissingMonth = "месяц обязателен"
	msgInvalidMonth = "некорректный месяц, ожидается число от 1 до 12"
)

type Handler struct {
	useCase CountByTypeMonthUseCase
	logger  Logger
}

func NewHandler(useCase CountByTypeMonthUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// CountResponse HTTP response model
type CountResponse struct {
	Type  string `json:"type"`
	Month int    `json:"month"`
	Count int    `json:"count"`
}

// Handle GET /api/v1/reports/appointments-count
// Query params: type (required), month (required, 1..12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем type из query параметров
	appType := r.URL.Query().Get("type")
	if appType == "" {
		h.logger.Warn("GET /reports/appointments-count - Missing type")
		handlers.RespondBadRequest(w, msgMissingType)
		return
	}

	// Извлекаем month из query параметров
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /reports/appointments-count - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /reports/appointments-count - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &countByTypeMonth.Request{
		Type:  appType,
		Month: month,
	})
	if err != nil {
		switch {
		case errors.Is(err, countByTypeMonth.ErrInvalidInput):
			h.logger.Warn("GET /reports/appointments-count - Invalid input: type=%q, month=%d", appType, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /reports/appointments-count - Failed to count appointments: type=%q, month=%d, error=%v",
				appType, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := CountResponse{
		Type:  result.Type,
		Month: result.Month,
		Count: result.Count,
	}

	h.logger.Info("GET /reports/appointments-count - Count retrieved: type=%q, month=%d, count=%d",
		appType, month, result.Count)
	handlers.RespondJSON(w, http.StatusOK, response)
}
