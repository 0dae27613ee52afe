package booking

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

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"user_name",
	"user_email",
	"user_phone",
	"user_nationality",
	"car_id",
	"car_name",
	"car_brand",
	"car_category",
	"car_plate_number",
	"car_passengers",
	"car_is_auto",
	"car_has_ac",
	"car_photo_url",
	"pickup_at",
	"dropoff_at",
	"pickup_location",
	"dropoff_location",
	"number_of_days",
	"selected_addons",
	"selected_package",
	"total_price",
	"is_paid",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Snapshot-поля (дополнения, пакет) сериализуются в JSONB; decimal
// маршалится строкой, поэтому цены не проходят через float.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	addonsJSON, err := json.Marshal(booking.SelectedAddOns)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - selected addons: %v", ErrMarshalSnapshot, err)
	}
	packageJSON, err := json.Marshal(booking.SelectedPackage)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - selected package: %v", ErrMarshalSnapshot, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_name",
			"user_email",
			"user_phone",
			"user_nationality",
			"car_id",
			"car_name",
			"car_brand",
			"car_category",
			"car_plate_number",
			"car_passengers",
			"car_is_auto",
			"car_has_ac",
			"car_photo_url",
			"pickup_at",
			"dropoff_at",
			"pickup_location",
			"dropoff_location",
			"number_of_days",
			"selected_addons",
			"selected_package",
			"total_price",
			"is_paid",
			"status",
		).
		Values(
			booking.User.Name,
			booking.User.Email,
			booking.User.Phone,
			booking.User.Nationality,
			booking.Car.CarID,
			booking.Car.Name,
			booking.Car.Brand,
			booking.Car.Category,
			booking.Car.PlateNumber,
			booking.Car.Passengers,
			booking.Car.IsAuto,
			booking.Car.HasAC,
			booking.Car.PhotoURL,
			booking.PickupAt,
			booking.DropoffAt,
			booking.PickupLocation,
			booking.DropoffLocation,
			booking.NumberOfDays,
			addonsJSON,
			packageJSON,
			booking.TotalPrice,
			booking.IsPaid,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBookingRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// ListWithFilter получает бронирования с фильтрацией по статусу, оплате
// и периоду дат pickup. Без фильтров возвращает все бронирования,
// отсортированные от новых к старым (как список в админке).
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.IsPaid != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_paid": *filter.IsPaid})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"pickup_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"pickup_at": *filter.EndDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBookingRow(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования
// Цена при этом не пересчитывается: total_price фиксируется при создании
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// SetPaid обновляет флаг оплаты бронирования
func (r *Repository) SetPaid(ctx context.Context, id int64, isPaid bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("is_paid", isPaid).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPaid - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetPaid")
}

// ReplaceCarSnapshot заменяет snapshot назначенного автомобиля
// Используется при переназначении машины; остальные snapshot-поля и
// total_price не трогаются
func (r *Repository) ReplaceCarSnapshot(ctx context.Context, id int64, car domain.CarSnapshot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("car_id", car.CarID).
		Set("car_name", car.Name).
		Set("car_brand", car.Brand).
		Set("car_category", car.Category).
		Set("car_plate_number", car.PlateNumber).
		Set("car_passengers", car.Passengers).
		Set("car_is_auto", car.IsAuto).
		Set("car_has_ac", car.HasAC).
		Set("car_photo_url", car.PhotoURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceCarSnapshot - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "ReplaceCarSnapshot")
}

// Delete удаляет бронирование (физическое удаление, использовать осторожно)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBookingRow сканирует строку таблицы bookings в доменную модель
func scanBookingRow(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var addonsJSON, packageJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.User.Name,
		&booking.User.Email,
		&booking.User.Phone,
		&booking.User.Nationality,
		&booking.Car.CarID,
		&booking.Car.Name,
		&booking.Car.Brand,
		&booking.Car.Category,
		&booking.Car.PlateNumber,
		&booking.Car.Passengers,
		&booking.Car.IsAuto,
		&booking.Car.HasAC,
		&booking.Car.PhotoURL,
		&booking.PickupAt,
		&booking.DropoffAt,
		&booking.PickupLocation,
		&booking.DropoffLocation,
		&booking.NumberOfDays,
		&addonsJSON,
		&packageJSON,
		&booking.TotalPrice,
		&booking.IsPaid,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(addonsJSON, &booking.SelectedAddOns); err != nil {
		return nil, fmt.Errorf("%w: selected addons: %v", ErrUnmarshalSnapshot, err)
	}
	if err := json.Unmarshal(packageJSON, &booking.SelectedPackage); err != nil {
		return nil, fmt.Errorf("%w: selected package: %v", ErrUnmarshalSnapshot, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
