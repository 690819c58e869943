package get_available_slots

import (
	"net/http"
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/api/handlers"
	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	generateSlots "github.com/avlasova/GCA-SchedulingService/internal/usecase/generate_slots"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimezone = "некорректная таймзона, ожидается идентификатор IANA"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD), tz (optional, IANA identifier)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Извлекаем tz из query параметров; пустое значение - таймзона сервера
	var location *time.Location
	if tzStr := r.URL.Query().Get("tz"); tzStr != "" {
		location, err = time.LoadLocation(tzStr)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid timezone %q: %v", tzStr, err)
			handlers.RespondBadRequest(w, msgInvalidTimezone)
			return
		}
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &generateSlots.Request{
		Date:     date,
		Location: location,
	})
	if err != nil {
		h.logger.Error("GET /slots - Failed to generate slots: date=%q, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /slots - Slots retrieved successfully: date=%q, tz=%s, slots_count=%d",
		dateStr, result.Timezone, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
