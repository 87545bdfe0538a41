package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время в формате "HH:MM" (24-часовой формат)
// Используется для представления времени слотов без привязки к дате и таймзоне
type TimeString string

const timeStringLayout = "15:04"

// endOfDay граница конца суток: интервал последнего слота "23:00"
// заканчивается в "24:00". Postgres TIME принимает это значение
const endOfDay = TimeString("24:00")

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")
)

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromHour создает TimeString из целого часа (9 -> "09:00")
func FromHour(hour int) TimeString {
	return TimeString(fmt.Sprintf("%02d:00", hour))
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что строка соответствует формату HH:MM
// Помимо обычных времён допускается "24:00" как конец суток
func (t TimeString) Validate() error {
	if t == endOfDay {
		return nil
	}
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	// time.Parse принимает "9:00", а мы требуем ведущий ноль,
	// иначе лексикографическое сравнение времён ломается
	if parsed.Format(timeStringLayout) != string(t) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Hour возвращает часовую часть времени; для "24:00" это 24
func (t TimeString) Hour() (int, error) {
	if t == endOfDay {
		return 24, nil
	}
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour(), nil
}

// AddHours возвращает время, сдвинутое на указанное количество часов.
// Через границу суток не переходит: "23:00"+1h даёт "24:00",
// сдвиг за пределы [00:00, 24:00] - ошибка
func (t TimeString) AddHours(hours int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	hour, err := t.Hour()
	if err != nil {
		return "", err
	}

	minute := 0
	if t != endOfDay {
		parsed, _ := time.Parse(timeStringLayout, string(t))
		minute = parsed.Minute()
	}

	newHour := hour + hours
	if newHour < 0 || newHour > 24 || (newHour == 24 && minute != 0) {
		return "", fmt.Errorf("%w: %q%+dh is out of range", ErrInvalidTimeString, string(t), hours)
	}
	if newHour == 24 {
		return endOfDay, nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", newHour, minute)), nil
}

// IsBefore возвращает true, если время строго раньше other
// Лексикографическое сравнение корректно, т.к. формат HH:MM с ведущими нулями
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Postgres возвращает TIME как "15:04:05" - обрезаем секунды
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > len(timeStringLayout) {
		s = s[:len(timeStringLayout)]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
