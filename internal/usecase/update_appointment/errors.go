package update_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInvalidInterval возвращается, когда конец записи не позже начала
	ErrInvalidInterval = errors.New("update_appointment: end must be after start")

	// ErrOutsideBusinessHours возвращается, когда запись выходит
	// за рамки рабочего дня офиса
	ErrOutsideBusinessHours = errors.New("update_appointment: outside business hours")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("update_appointment: customer not found")

	// ErrAppointmentConflict возвращается при пересечении с существующей записью клиента
	ErrAppointmentConflict = errors.New("update_appointment: appointment conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
