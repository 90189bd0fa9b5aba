package get_available_times

// Request модель запроса на получение доступных времён
type Request struct {
	Date string // YYYY-MM-DD
}

// Response модель ответа со списком доступных времён.
// Times всегда по возрастанию; список может быть пустым.
type Response struct {
	Date  string
	Times []string
}

// WindowResponse границы выбора даты для date-picker'а
type WindowResponse struct {
	MinDate string // сегодня
	MaxDate string // сегодня + 3 календарных месяца
}
