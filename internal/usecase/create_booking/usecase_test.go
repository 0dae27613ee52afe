package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	packageRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rentalpackage"
)

type bookingRepoMock struct {
	create func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

func (m *bookingRepoMock) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.create(ctx, booking)
}

type carRepoMock struct {
	getByID func(ctx context.Context, id int64) (*domain.Car, error)
}

func (m *carRepoMock) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	return m.getByID(ctx, id)
}

type addonRepoMock struct {
	getByIDs func(ctx context.Context, ids []int64) ([]*domain.AddOn, error)
}

func (m *addonRepoMock) GetByIDs(ctx context.Context, ids []int64) ([]*domain.AddOn, error) {
	return m.getByIDs(ctx, ids)
}

type packageRepoMock struct {
	getByID func(ctx context.Context, id int64) (*domain.Package, error)
}

func (m *packageRepoMock) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	return m.getByID(ctx, id)
}

// txManagerMock выполняет функцию без реальной транзакции
type txManagerMock struct{}

func (m *txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type timeProviderMock struct {
	now time.Time
}

func (m *timeProviderMock) Now() time.Time {
	return m.now
}

type loggerStub struct{}

func (l *loggerStub) Info(format string, v ...interface{})  {}
func (l *loggerStub) Warn(format string, v ...interface{})  {}
func (l *loggerStub) Error(format string, v ...interface{}) {}

func allCategoryPrices(value int64) domain.CategoryPrices {
	prices := make(domain.CategoryPrices)
	for _, category := range domain.AllCategories {
		prices[category] = decimal.NewFromInt(value)
	}
	return prices
}

func validRequest(pickup time.Time) *Request {
	return &Request{
		Customer: Customer{
			Name:        "John Doe",
			Email:       "john@example.com",
			Phone:       "+971500000000",
			Nationality: "UK",
		},
		CarID:           10,
		PackageID:       3,
		AddOnIDs:        []int64{1, 2},
		PickupAt:        pickup,
		DropoffAt:       pickup.Add(72 * time.Hour),
		PickupLocation:  "Dubai Airport T1",
		DropoffLocation: "Dubai Marina",
	}
}

func newTestUseCase(t *testing.T, created **domain.Booking) *UseCase {
	t.Helper()

	uc := NewUseCase(
		&bookingRepoMock{create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			saved := *booking
			saved.ID = 42
			saved.CreatedAt = time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)
			saved.UpdatedAt = saved.CreatedAt
			if created != nil {
				*created = &saved
			}
			return &saved, nil
		}},
		&carRepoMock{getByID: func(ctx context.Context, id int64) (*domain.Car, error) {
			return &domain.Car{
				ID:       10,
				Name:     "Sunny",
				Brand:    "Nissan",
				Category: domain.CategoryEconomy,
			}, nil
		}},
		&addonRepoMock{getByIDs: func(ctx context.Context, ids []int64) ([]*domain.AddOn, error) {
			return []*domain.AddOn{
				{ID: 1, Name: "GPS", PerDay: true, Prices: allCategoryPrices(20)},
				{ID: 2, Name: "Child Seat", PerDay: false, Prices: allCategoryPrices(50)},
			}, nil
		}},
		&packageRepoMock{getByID: func(ctx context.Context, id int64) (*domain.Package, error) {
			return &domain.Package{
				ID:     3,
				Name:   "Smart Cover",
				Prices: allCategoryPrices(100),
			}, nil
		}},
		&txManagerMock{},
		&loggerStub{},
	)
	uc.timeProvider = &timeProviderMock{now: time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	var created *domain.Booking
	uc := newTestUseCase(t, &created)

	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), validRequest(pickup))

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 3, resp.NumberOfDays)
	assert.Equal(t, "410", resp.TotalPrice.String())
	assert.Equal(t, domain.CurrencyCode, resp.Currency)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.False(t, resp.IsPaid)

	// Snapshot-ы сняты с текущего состояния каталога
	require.NotNil(t, created)
	assert.Equal(t, int64(10), created.Car.CarID)
	assert.Equal(t, domain.CategoryEconomy, created.Car.Category)
	assert.Equal(t, int64(3), created.SelectedPackage.PackageID)
	require.Len(t, created.SelectedAddOns, 2)
	assert.Equal(t, "John Doe", created.User.Name)
	assert.Equal(t, "410", created.TotalPrice.String())
}

func TestExecute_PickupInPast(t *testing.T) {
	uc := newTestUseCase(t, nil)

	// Сегодня 2025-05-30, получение вчера
	pickup := time.Date(2025, 5, 29, 10, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), validRequest(pickup))

	assert.ErrorIs(t, err, ErrPickupInPast)
}

func TestExecute_PickupTodayAllowed(t *testing.T) {
	uc := newTestUseCase(t, nil)

	// Сегодня 2025-05-30, получение сегодня вечером
	pickup := time.Date(2025, 5, 30, 18, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), validRequest(pickup))

	assert.NoError(t, err)
}

func TestExecute_DropoffBeforePickup(t *testing.T) {
	uc := newTestUseCase(t, nil)

	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	req := validRequest(pickup)
	req.DropoffAt = pickup.Add(-time.Hour)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestExecute_ValidationFailed(t *testing.T) {
	uc := newTestUseCase(t, nil)
	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty customer name", func(req *Request) { req.Customer.Name = "" }},
		{"empty customer email", func(req *Request) { req.Customer.Email = "" }},
		{"malformed email", func(req *Request) { req.Customer.Email = "not-an-email" }},
		{"zero car id", func(req *Request) { req.CarID = 0 }},
		{"zero package id", func(req *Request) { req.PackageID = 0 }},
		{"empty pickup location", func(req *Request) { req.PickupLocation = "" }},
		{"empty dropoff location", func(req *Request) { req.DropoffLocation = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(pickup)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PackageNotFound(t *testing.T) {
	uc := newTestUseCase(t, nil)
	uc.packageRepo = &packageRepoMock{getByID: func(ctx context.Context, id int64) (*domain.Package, error) {
		return nil, packageRepo.ErrPackageNotFound
	}}

	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), validRequest(pickup))

	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestExecute_MissingPriceForCategory(t *testing.T) {
	uc := newTestUseCase(t, nil)
	uc.packageRepo = &packageRepoMock{getByID: func(ctx context.Context, id int64) (*domain.Package, error) {
		return &domain.Package{
			ID:   3,
			Name: "Smart Cover",
			Prices: domain.CategoryPrices{
				domain.CategorySevenSeater: decimal.NewFromInt(250),
			},
		}, nil
	}}

	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), validRequest(pickup))

	assert.ErrorIs(t, err, ErrPriceNotSet)
}

func TestExecute_TotalFixedFromSnapshots(t *testing.T) {
	var created *domain.Booking
	uc := newTestUseCase(t, &created)

	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	req := validRequest(pickup)
	req.AddOnIDs = nil

	uc.addonRepo = &addonRepoMock{getByIDs: func(ctx context.Context, ids []int64) ([]*domain.AddOn, error) {
		return nil, nil
	}}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// Без дополнений итог ровно дни × суточная цена пакета
	assert.Equal(t, "300", resp.TotalPrice.String())
	assert.Equal(t, created.TotalPrice.String(), resp.TotalPrice.String())
}
