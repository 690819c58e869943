package count_by_type_month

// Request модель запроса на подсчет записей по типу и месяцу
type Request struct {
	// Type тип записи, сравнивается без учета регистра
	Type string
	// Month номер месяца, 1..12
	Month int
}

// Response модель ответа с количеством записей
type Response struct {
	Type  string
	Month int
	Count int
}
