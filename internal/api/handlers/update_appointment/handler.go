package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlasova/GCA-SchedulingService/internal/api/handlers"
	"github.com/avlasova/GCA-SchedulingService/internal/api/middleware"
	updateAppointment "github.com/avlasova/GCA-SchedulingService/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени, ожидается ISO 8601"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidInterval      = "конец записи должен быть позже начала"
	msgOutsideBusinessHours = "запись выходит за рамки рабочих часов офиса"
	msgAppointmentNotFound  = "запись не найдена"
	msgCustomerNotFound     = "клиент не найден"
	msgAppointmentConflict  = "интервал пересекается с существующей записью клиента"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, userID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, updateAppointment.ErrCustomerNotFound):
			h.logger.Warn("PUT /appointments/{id} - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, updateAppointment.ErrAppointmentConflict):
			h.logger.Warn("PUT /appointments/{id} - Conflict: appointment_id=%d, customer_id=%d",
				appointmentID, req.CustomerID)
			handlers.RespondError(w, http.StatusConflict, msgAppointmentConflict)

		case errors.Is(err, updateAppointment.ErrInvalidInterval):
			h.logger.Warn("PUT /appointments/{id} - Invalid interval: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, updateAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("PUT /appointments/{id} - Outside business hours: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromDomainAppointment(result.Appointment)

	h.logger.Info("PUT /appointments/{id} - Appointment updated successfully: appointment_id=%d, user_id=%d",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
