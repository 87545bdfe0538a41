package domain

// Business rule constants
const (
	// MaxBookingsPerDay максимум активных бронирований пользователя
	// на одну дату по всем объектам
	MaxBookingsPerDay = 2

	// Дефолтные рабочие часы лаборатории (инклюзивная сетка 09:00..17:00)
	DefaultOpenHour  = 9
	DefaultCloseHour = 17

	// Границы рабочих часов объекта
	MinOperatingHour = 0
	MaxOperatingHour = 23

	// Границы вместимости объекта
	MinFacilityCapacity = 1
	MaxFacilityCapacity = 100

	MaxOptionsLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses список допустимых статусов бронирования
// Используется для валидации фильтров по статусу
var ValidStatuses = []BookingStatus{
	StatusUpcoming,
	StatusCompleted,
	StatusCancelled,
}
