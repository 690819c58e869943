package get_contact_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlasova/GCA-SchedulingService/internal/api/handlers"
	"github.com/avlasova/GCA-SchedulingService/internal/service/appointments"
)

const (
	msgInvalidContactID = "некорректный ID контакта"
	msgContactNotFound  = "контакт не найден"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/contacts/{contactId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем contactId из URL
	vars := mux.Vars(r)
	contactID, err := strconv.ParseInt(vars["contactId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /contacts/{id}/appointments - Invalid contact ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidContactID)
		return
	}

	schedule, err := h.service.GetByContact(r.Context(), contactID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrContactNotFound):
			h.logger.Warn("GET /contacts/{id}/appointments - Contact not found: contact_id=%d", contactID)
			handlers.RespondNotFound(w, msgContactNotFound)

		default:
			h.logger.Error("GET /contacts/{id}/appointments - Failed to get schedule: contact_id=%d, error=%v",
				contactID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /contacts/{id}/appointments - Schedule retrieved successfully: contact_id=%d, count=%d",
		contactID, len(schedule.Appointments))
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
