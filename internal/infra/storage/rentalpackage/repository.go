package rentalpackage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

var packageColumns = []string{
	"id",
	"name",
	"online_discount_percent",
	"rating",
	"excess_upto",
	"old_prices",
	"prices",
	"perks",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога пакетов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый пакет
func (r *Repository) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	oldPricesJSON, pricesJSON, perksJSON, err := marshalFields(pkg)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrMarshalFields, err)
	}

	query, args, err := psqlbuilder.Insert("packages").
		Columns(
			"name",
			"online_discount_percent",
			"rating",
			"excess_upto",
			"old_prices",
			"prices",
			"perks",
		).
		Values(
			pkg.Name,
			pkg.OnlineDiscountPercent,
			pkg.Rating,
			pkg.ExcessUpto,
			oldPricesJSON,
			pricesJSON,
			perksJSON,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&pkg.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	pkg.CreatedAt = createdAt.Time
	pkg.UpdatedAt = updatedAt.Time

	return pkg, nil
}

// GetByID получает пакет по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	pkg, err := scanPackage(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}

	return pkg, nil
}

// List получает все пакеты каталога
func (r *Repository) List(ctx context.Context) ([]*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		OrderBy("rating DESC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packages := make([]*domain.Package, 0)
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return packages, nil
}

// Update обновляет пакет целиком, включая обе таблицы цен
func (r *Repository) Update(ctx context.Context, pkg *domain.Package) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	oldPricesJSON, pricesJSON, perksJSON, err := marshalFields(pkg)
	if err != nil {
		return fmt.Errorf("%w: Update: %v", ErrMarshalFields, err)
	}

	query, args, err := psqlbuilder.Update("packages").
		Set("name", pkg.Name).
		Set("online_discount_percent", pkg.OnlineDiscountPercent).
		Set("rating", pkg.Rating).
		Set("excess_upto", pkg.ExcessUpto).
		Set("old_prices", oldPricesJSON).
		Set("prices", pricesJSON).
		Set("perks", perksJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": pkg.ID}).
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
		return ErrPackageNotFound
	}

	return nil
}

// UpdatePrices обновляет только актуальные цены пакета
// Используется явным пересчётом онлайн-скидки в каталоге
func (r *Repository) UpdatePrices(ctx context.Context, id int64, prices domain.CategoryPrices) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pricesJSON, err := json.Marshal(prices)
	if err != nil {
		return fmt.Errorf("%w: UpdatePrices: %v", ErrMarshalFields, err)
	}

	query, args, err := psqlbuilder.Update("packages").
		Set("prices", pricesJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePrices - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePrices - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePrices - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPackageNotFound
	}

	return nil
}

// Delete удаляет пакет из каталога
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("packages").
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
		return ErrPackageNotFound
	}

	return nil
}

func marshalFields(pkg *domain.Package) (oldPrices, prices, perks []byte, err error) {
	oldPrices, err = json.Marshal(pkg.OldPrices)
	if err != nil {
		return nil, nil, nil, err
	}
	prices, err = json.Marshal(pkg.Prices)
	if err != nil {
		return nil, nil, nil, err
	}
	perks, err = json.Marshal(pkg.Perks)
	if err != nil {
		return nil, nil, nil, err
	}
	return oldPrices, prices, perks, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPackage(row rowScanner) (*domain.Package, error) {
	var pkg domain.Package
	var oldPricesJSON, pricesJSON, perksJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.OnlineDiscountPercent,
		&pkg.Rating,
		&pkg.ExcessUpto,
		&oldPricesJSON,
		&pricesJSON,
		&perksJSON,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan package: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(oldPricesJSON, &pkg.OldPrices); err != nil {
		return nil, fmt.Errorf("%w: old prices: %v", ErrUnmarshalFields, err)
	}
	if err := json.Unmarshal(pricesJSON, &pkg.Prices); err != nil {
		return nil, fmt.Errorf("%w: prices: %v", ErrUnmarshalFields, err)
	}
	if err := json.Unmarshal(perksJSON, &pkg.Perks); err != nil {
		return nil, fmt.Errorf("%w: perks: %v", ErrUnmarshalFields, err)
	}

	pkg.CreatedAt = createdAt.Time
	pkg.UpdatedAt = updatedAt.Time

	return &pkg, nil
}
