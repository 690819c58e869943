package update_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса на обновление записи
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.ContactID <= 0 {
		return fmt.Errorf("%w: contactID must be positive", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !(domain.Interval{Start: req.Start, End: req.End}).IsValid() {
		return ErrInvalidInterval
	}

	return validateBusinessHours(req.Start, req.End)
}

// validateBusinessHours проверяет, что запись целиком лежит в рабочем дне
// офиса в его часовом поясе. Граница закрытия включительная.
func validateBusinessHours(start, end time.Time) error {
	loc, err := time.LoadLocation(domain.BusinessTimezone)
	if err != nil {
		return fmt.Errorf("%w: failed to load business timezone: %v", ErrInternal, err)
	}

	localStart := start.In(loc)
	localEnd := end.In(loc)

	open := time.Date(localStart.Year(), localStart.Month(), localStart.Day(),
		domain.BusinessOpenHour, 0, 0, 0, loc)
	close := time.Date(localStart.Year(), localStart.Month(), localStart.Day(),
		domain.BusinessCloseHour, 0, 0, 0, loc)

	if localStart.Before(open) || localEnd.After(close) {
		return fmt.Errorf("%w: appointment must be within %02d:00-%02d:00 %s",
			ErrOutsideBusinessHours, domain.BusinessOpenHour, domain.BusinessCloseHour, domain.BusinessTimezone)
	}

	return nil
}
