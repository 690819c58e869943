package list_appointments

import (
	"fmt"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// View режим отображения списка записей
type View string

const (
	ViewAll   View = "all"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ParseView конвертирует строковый режим из query-параметра в View.
// Пустая строка трактуется как "all".
func ParseView(s string) (View, error) {
	switch s {
	case "", string(ViewAll):
		return ViewAll, nil
	case string(ViewWeek):
		return ViewWeek, nil
	case string(ViewMonth):
		return ViewMonth, nil
	default:
		return "", fmt.Errorf("%w: unknown view %q", ErrInvalidInput, s)
	}
}

// Request модель запроса на получение списка записей
type Request struct {
	View View
}

// Response модель ответа со списком записей
type Response struct {
	View         View
	Appointments []*domain.Appointment
}
