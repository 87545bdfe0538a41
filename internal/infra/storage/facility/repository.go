package facility

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
	"github.com/pradita-lab/Lab-BookingService/pkg/dbmetrics"
	"github.com/pradita-lab/Lab-BookingService/pkg/psqlbuilder"
)

// facilityColumns полный список колонок таблицы facilities
var facilityColumns = []string{
	"id",
	"type",
	"name",
	"description",
	"note",
	"icon",
	"location",
	"open_hour",
	"close_hour",
	"capacity",
}

// Repository репозиторий каталога объектов лаборатории
// Каталог - административные данные: из сервиса только чтение
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает объект по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var facility domain.Facility
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&facility.ID,
		&facility.Type,
		&facility.Name,
		&facility.Description,
		&facility.Note,
		&facility.Icon,
		&facility.Location,
		&facility.OpenHour,
		&facility.CloseHour,
		&facility.Capacity,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %w", ErrScanRow, err)
	}

	return &facility, nil
}

// List получает все объекты в порядке добавления в каталог
func (r *Repository) List(ctx context.Context) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)
	for rows.Next() {
		var facility domain.Facility
		err := rows.Scan(
			&facility.ID,
			&facility.Type,
			&facility.Name,
			&facility.Description,
			&facility.Note,
			&facility.Icon,
			&facility.Location,
			&facility.OpenHour,
			&facility.CloseHour,
			&facility.Capacity,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		facilities = append(facilities, &facility)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return facilities, nil
}
