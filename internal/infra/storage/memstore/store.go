package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
)

// Store in-memory реализация хранилища бронирований и каталога объектов.
// Используется в тестах и как dev-бэкенд без Postgres; контракт повторяет
// репозитории из internal/infra/storage.
//
// Критические секции check-then-insert обеспечиваются ключевыми мьютексами
// (аналог SELECT ... FOR UPDATE): внутри "транзакции" GetByFacilityAndDate
// захватывает ключ (facilityID, date), CountByUserAndDate - ключ (userID,
// date), TxManager освобождает их по завершении. Порядок захвата фиксирован
// пайплайном создания бронирования (сначала user, затем facility), поэтому
// взаимная блокировка невозможна
type Store struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	facilitiesMu  sync.RWMutex
	facilities    map[string]*domain.Facility
	facilityOrder []string

	keyLocksMu sync.Mutex
	keyLocks   map[string]*sync.Mutex
}

// NewStore создает пустое in-memory хранилище
func NewStore() *Store {
	return &Store{
		bookings:   make(map[string]*domain.Booking),
		facilities: make(map[string]*domain.Facility),
		keyLocks:   make(map[string]*sync.Mutex),
	}
}

// AddFacility добавляет объект в каталог (сидирование данных)
func (s *Store) AddFacility(f *domain.Facility) {
	s.facilitiesMu.Lock()
	defer s.facilitiesMu.Unlock()

	if _, exists := s.facilities[f.ID]; !exists {
		s.facilityOrder = append(s.facilityOrder, f.ID)
	}
	clone := *f
	s.facilities[f.ID] = &clone
}

// GetFacilityByID получает объект по ID
func (s *Store) GetFacilityByID(_ context.Context, id string) (*domain.Facility, error) {
	s.facilitiesMu.RLock()
	defer s.facilitiesMu.RUnlock()

	f, ok := s.facilities[id]
	if !ok {
		return nil, ErrFacilityNotFound
	}
	clone := *f
	return &clone, nil
}

// ListFacilities получает все объекты в порядке добавления
func (s *Store) ListFacilities(_ context.Context) ([]*domain.Facility, error) {
	s.facilitiesMu.RLock()
	defer s.facilitiesMu.RUnlock()

	out := make([]*domain.Facility, 0, len(s.facilityOrder))
	for _, id := range s.facilityOrder {
		clone := *s.facilities[id]
		out = append(out, &clone)
	}
	return out, nil
}

// Create создает новое бронирование
// ID присваивается здесь (uuid), если не задан вызывающей стороной
func (s *Store) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking.UserID == "" || booking.FacilityID == "" || booking.Date == "" ||
		booking.StartTime.IsZero() || booking.EndTime.IsZero() || booking.DurationHours < 1 {
		return nil, ErrInvalidBooking
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	clone := *booking
	s.bookings[booking.ID] = &clone

	return booking, nil
}

// GetByID получает бронирование по ID
func (s *Store) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

// GetByUserID получает бронирования пользователя, отсортированные
// по дате и времени начала по возрастанию
func (s *Store) GetByUserID(_ context.Context, userID string, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID != userID {
			continue
		}
		if !matchesStatus(b.Status, statuses) {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}

	sortBookings(out)
	return out, nil
}

// GetByFacilityAndDate получает бронирования объекта на дату.
// Внутри транзакции захватывает мьютекс ключа (facilityID, date) -
// in-memory эквивалент SELECT ... FOR UPDATE
func (s *Store) GetByFacilityAndDate(ctx context.Context, facilityID, date string, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	if tx := txFromContext(ctx); tx != nil {
		key := "facility|" + facilityID + "|" + date
		tx.acquire(key, s.keyLock(key))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.FacilityID != facilityID || b.Date != date {
			continue
		}
		if !matchesStatus(b.Status, statuses) {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}

	sortBookings(out)
	return out, nil
}

// CountByUserAndDate подсчитывает бронирования пользователя на дату
// с указанным статусом.
// Внутри транзакции захватывает мьютекс ключа (userID, date): два
// параллельных создания одного пользователя не должны оба пройти
// проверку дневного лимита на одном и том же счетчике
func (s *Store) CountByUserAndDate(ctx context.Context, userID, date string, status domain.BookingStatus) (int, error) {
	if tx := txFromContext(ctx); tx != nil {
		key := "user|" + userID + "|" + date
		tx.acquire(key, s.keyLock(key))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, b := range s.bookings {
		if b.UserID == userID && b.Date == date && b.Status == status {
			count++
		}
	}
	return count, nil
}

// UpdateStatus обновляет статус бронирования и возвращает обновленную запись
func (s *Store) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	b.Status = status
	b.UpdatedAt = time.Now()

	clone := *b
	return &clone, nil
}

// keyLock возвращает мьютекс для ключа, создавая при необходимости
func (s *Store) keyLock(key string) *sync.Mutex {
	s.keyLocksMu.Lock()
	defer s.keyLocksMu.Unlock()

	if m, ok := s.keyLocks[key]; ok {
		return m
	}
	m := &sync.Mutex{}
	s.keyLocks[key] = m
	return m
}

// matchesStatus возвращает true, если статус проходит фильтр
// Пустой фильтр пропускает все статусы
func matchesStatus(status domain.BookingStatus, statuses []domain.BookingStatus) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// sortBookings сортирует бронирования по (дата, время начала) по возрастанию
func sortBookings(bookings []*domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return bookings[i].StartTime.IsBefore(bookings[j].StartTime)
	})
}
