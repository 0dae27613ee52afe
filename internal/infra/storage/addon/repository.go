package addon

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

var addonColumns = []string{
	"id",
	"name",
	"description",
	"type",
	"per_day",
	"prices",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога дополнений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория дополнений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое дополнение
func (r *Repository) Create(ctx context.Context, addon *domain.AddOn) (*domain.AddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pricesJSON, err := json.Marshal(addon.Prices)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrMarshalPrices, err)
	}

	query, args, err := psqlbuilder.Insert("addons").
		Columns("name", "description", "type", "per_day", "prices").
		Values(addon.Name, addon.Description, addon.Type, addon.PerDay, pricesJSON).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&addon.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	addon.CreatedAt = createdAt.Time
	addon.UpdatedAt = updatedAt.Time

	return addon, nil
}

// GetByID получает дополнение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addonColumns...).
		From("addons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	addon, err := scanAddon(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAddonNotFound
	}
	if err != nil {
		return nil, err
	}

	return addon, nil
}

// GetByIDs получает дополнения по списку ID
// Используется при создании бронирования для снятия snapshot-ов.
// Если хотя бы одно дополнение не найдено - возвращает ErrAddonNotFound:
// для бронирования нужен полный набор выбранных позиций.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.AddOn, error) {
	if len(ids) == 0 {
		return []*domain.AddOn{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addonColumns...).
		From("addons").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	addons := make([]*domain.AddOn, 0, len(ids))
	for rows.Next() {
		addon, err := scanAddon(rows)
		if err != nil {
			return nil, err
		}
		addons = append(addons, addon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	if len(addons) != len(ids) {
		return nil, fmt.Errorf("%w: GetByIDs - requested %d, found %d", ErrAddonNotFound, len(ids), len(addons))
	}

	return addons, nil
}

// List получает все дополнения каталога
func (r *Repository) List(ctx context.Context) ([]*domain.AddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addonColumns...).
		From("addons").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	addons := make([]*domain.AddOn, 0)
	for rows.Next() {
		addon, err := scanAddon(rows)
		if err != nil {
			return nil, err
		}
		addons = append(addons, addon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return addons, nil
}

// Update обновляет дополнение
func (r *Repository) Update(ctx context.Context, addon *domain.AddOn) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pricesJSON, err := json.Marshal(addon.Prices)
	if err != nil {
		return fmt.Errorf("%w: Update: %v", ErrMarshalPrices, err)
	}

	query, args, err := psqlbuilder.Update("addons").
		Set("name", addon.Name).
		Set("description", addon.Description).
		Set("type", addon.Type).
		Set("per_day", addon.PerDay).
		Set("prices", pricesJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": addon.ID}).
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
		return ErrAddonNotFound
	}

	return nil
}

// Delete удаляет дополнение из каталога
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("addons").
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
		return ErrAddonNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAddon(row rowScanner) (*domain.AddOn, error) {
	var addon domain.AddOn
	var pricesJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&addon.ID,
		&addon.Name,
		&addon.Description,
		&addon.Type,
		&addon.PerDay,
		&pricesJSON,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan addon: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(pricesJSON, &addon.Prices); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnmarshalPrices, err)
	}

	addon.CreatedAt = createdAt.Time
	addon.UpdatedAt = updatedAt.Time

	return &addon, nil
}
