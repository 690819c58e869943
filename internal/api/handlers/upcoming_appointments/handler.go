package upcoming_appointments

import (
	"errors"
	"net/http"

	"github.com/avlasova/GCA-SchedulingService/internal/api/handlers"
	"github.com/avlasova/GCA-SchedulingService/internal/api/middleware"
	upcomingAppointments "github.com/avlasova/GCA-SchedulingService/internal/usecase/upcoming_appointments"
)

const (
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidRequest = "некорректный запрос"
)

type Handler struct {
	useCase UpcomingAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase UpcomingAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/upcoming
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/upcoming - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &upcomingAppointments.Request{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, upcomingAppointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments/upcoming - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /appointments/upcoming - Failed to get upcoming appointments: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /appointments/upcoming - Upcoming appointments retrieved: user_id=%d, count=%d",
		userID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, response)
}
