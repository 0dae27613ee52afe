package car

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

var carColumns = []string{
	"id",
	"name",
	"brand",
	"category",
	"plate_number",
	"passengers",
	"doors",
	"bags",
	"is_auto",
	"has_ac",
	"is_top",
	"base_daily_price",
	"photo_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий автопарка
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория автопарка
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый автомобиль в каталоге
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cars").
		Columns(
			"name",
			"brand",
			"category",
			"plate_number",
			"passengers",
			"doors",
			"bags",
			"is_auto",
			"has_ac",
			"is_top",
			"base_daily_price",
			"photo_url",
		).
		Values(
			car.Name,
			car.Brand,
			car.Category,
			car.PlateNumber,
			car.Passengers,
			car.Doors,
			car.Bags,
			car.IsAuto,
			car.HasAC,
			car.IsTop,
			car.BaseDailyPrice,
			car.PhotoURL,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&car.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return car, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	car, err := scanCar(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, err
	}

	return car, nil
}

// List получает все автомобили каталога
// Топовые машины идут первыми - так их показывает админка
func (r *Repository) List(ctx context.Context) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		OrderBy("is_top DESC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return cars, nil
}

// Update обновляет автомобиль каталога
func (r *Repository) Update(ctx context.Context, car *domain.Car) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cars").
		Set("name", car.Name).
		Set("brand", car.Brand).
		Set("category", car.Category).
		Set("plate_number", car.PlateNumber).
		Set("passengers", car.Passengers).
		Set("doors", car.Doors).
		Set("bags", car.Bags).
		Set("is_auto", car.IsAuto).
		Set("has_ac", car.HasAC).
		Set("is_top", car.IsTop).
		Set("base_daily_price", car.BaseDailyPrice).
		Set("photo_url", car.PhotoURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": car.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// Delete удаляет автомобиль из каталога
// Исторические бронирования не затрагиваются: они хранят snapshot машины
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCar(row rowScanner) (*domain.Car, error) {
	var car domain.Car
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&car.ID,
		&car.Name,
		&car.Brand,
		&car.Category,
		&car.PlateNumber,
		&car.Passengers,
		&car.Doors,
		&car.Bags,
		&car.IsAuto,
		&car.HasAC,
		&car.IsTop,
		&car.BaseDailyPrice,
		&car.PhotoURL,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan car: %v", ErrScanRow, err)
	}

	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return &car, nil
}
