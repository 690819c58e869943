package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidInterval возвращается, когда конец записи не позже начала
	ErrInvalidInterval = errors.New("create_appointment: end must be after start")

	// ErrOutsideBusinessHours возвращается, когда запись выходит
	// за рамки рабочего дня офиса
	ErrOutsideBusinessHours = errors.New("create_appointment: outside business hours")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_appointment: customer not found")

	// ErrAppointmentConflict возвращается при пересечении с существующей записью клиента
	ErrAppointmentConflict = errors.New("create_appointment: appointment conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
