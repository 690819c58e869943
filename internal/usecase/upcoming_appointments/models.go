package upcoming_appointments

import (
	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// Request модель запроса ближайших записей пользователя
type Request struct {
	UserID int64
}

// Response модель ответа с записями, пересекающими пятнадцатиминутное
// окно от текущего момента
type Response struct {
	Appointments []*domain.Appointment
}
