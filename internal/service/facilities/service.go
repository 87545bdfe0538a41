package facilities

import (
	"context"
	"errors"
	"fmt"

	facilityRepo "github.com/pradita-lab/Lab-BookingService/internal/infra/storage/facility"
	"github.com/pradita-lab/Lab-BookingService/internal/service/facilities/models"
)

// Service сервис каталога объектов
type Service struct {
	facilityRepo FacilityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(facilityRepo FacilityRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// List возвращает все объекты каталога в стабильном порядке
func (s *Service) List(ctx context.Context) (*models.FacilityListResponse, error) {
	s.logger.Info("List: fetching facilities catalog")

	facilities, err := s.facilityRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d facilities", len(facilities))
	return models.FromDomainFacilityList(facilities), nil
}

// GetByID получает объект каталога по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.FacilityResponse, error) {
	s.logger.Info("GetByID: fetching facility id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: facilityID is required", ErrInvalidInput)
	}

	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetByID: facility id=%s not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetByID: repository error for facility id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched facility id=%s", id)
	return models.FromDomainFacility(facility), nil
}
