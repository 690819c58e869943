package top_customers

import (
	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

// Request модель запроса рейтинга клиентов месяца. Параметров нет:
// окно отбора всегда строится вокруг текущей даты.
type Request struct{}

// Response модель ответа с рейтингом клиентов месяца.
// Незаполненные места остаются nil.
type Response struct {
	Ranking domain.CustomerRanking
}
