package memstore

import (
	"context"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
)

// FacilityStore адаптер каталога поверх Store с контрактом
// facility-репозитория (GetByID/List)
type FacilityStore struct {
	store *Store
}

// Facilities возвращает каталог объектов хранилища
func (s *Store) Facilities() *FacilityStore {
	return &FacilityStore{store: s}
}

// GetByID получает объект по ID
func (f *FacilityStore) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	return f.store.GetFacilityByID(ctx, id)
}

// List получает все объекты в стабильном порядке
func (f *FacilityStore) List(ctx context.Context) ([]*domain.Facility, error) {
	return f.store.ListFacilities(ctx)
}
