package create_appointment

import (
	"errors"
	"net/http"

	"github.com/avlasova/GCA-SchedulingService/internal/api/handlers"
	"github.com/avlasova/GCA-SchedulingService/internal/api/middleware"
	createAppointment "github.com/avlasova/GCA-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени, ожидается ISO 8601"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidInterval      = "конец записи должен быть позже начала"
	msgOutsideBusinessHours = "запись выходит за рамки рабочих часов офиса"
	msgCustomerNotFound     = "клиент не найден"
	msgAppointmentConflict  = "интервал пересекается с существующей записью клиента"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrAppointmentConflict):
			h.logger.Warn("POST /appointments - Conflict: user_id=%d, customer_id=%d", userID, req.CustomerID)
			handlers.RespondError(w, http.StatusConflict, msgAppointmentConflict)

		case errors.Is(err, createAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInterval):
			h.logger.Warn("POST /appointments - Invalid interval: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, customer_id=%d, error=%v",
				userID, req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromDomainAppointment(result.Appointment)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d, customer_id=%d",
		result.Appointment.ID, userID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
