package list_appointments

import (
	"errors"
	"net/http"

	"github.com/avlasova/GCA-SchedulingService/internal/api/handlers"
	listAppointments "github.com/avlasova/GCA-SchedulingService/internal/usecase/list_appointments"
)

const (
	msgInvalidView = "некорректный режим отображения, ожидается all, week или month"
)

type Handler struct {
	useCase ListAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase ListAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: view (optional, all|week|month, default all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view, err := listAppointments.ParseView(r.URL.Query().Get("view"))
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid view: %v", err)
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listAppointments.Request{View: view})
	if err != nil {
		switch {
		case errors.Is(err, listAppointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidView)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: view=%s, error=%v", view, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /appointments - Appointments retrieved successfully: view=%s, count=%d",
		view, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, response)
}
