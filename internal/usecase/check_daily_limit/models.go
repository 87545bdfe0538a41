package check_daily_limit

// Request модель запроса предварительной проверки дневного лимита
type Request struct {
	UserID     string // ID пользователя
	FacilityID string // ID объекта (лимит общий, но UI передает его)
	Date       string // Дата в формате YYYY-MM-DD
}

// Response модель ответа проверки лимита.
// Ответ советующий: настоящая проверка выполняется при создании
type Response struct {
	CanBook bool
	Reason  *string // причина отказа, только при CanBook == false
}
