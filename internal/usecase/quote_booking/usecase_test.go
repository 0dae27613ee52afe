package quote_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
)

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

func testCar() *domain.Car {
	return &domain.Car{
		ID:       10,
		Name:     "Sunny",
		Brand:    "Nissan",
		Category: domain.CategoryEconomy,
	}
}

func testPackage() *domain.Package {
	return &domain.Package{
		ID:     3,
		Name:   "Smart Cover",
		Prices: allCategoryPrices(100),
	}
}

func testAddons() []*domain.AddOn {
	return []*domain.AddOn{
		{ID: 1, Name: "GPS", PerDay: true, Prices: allCategoryPrices(20)},
		{ID: 2, Name: "Child Seat", PerDay: false, Prices: allCategoryPrices(50)},
	}
}

func newTestUseCase(car *domain.Car, pkg *domain.Package, addons []*domain.AddOn) *UseCase {
	return NewUseCase(
		&carRepoMock{getByID: func(ctx context.Context, id int64) (*domain.Car, error) {
			return car, nil
		}},
		&addonRepoMock{getByIDs: func(ctx context.Context, ids []int64) ([]*domain.AddOn, error) {
			return addons, nil
		}},
		&packageRepoMock{getByID: func(ctx context.Context, id int64) (*domain.Package, error) {
			return pkg, nil
		}},
		&loggerStub{},
	)
}

func TestExecute_Success(t *testing.T) {
	uc := newTestUseCase(testCar(), testPackage(), testAddons())

	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{
		CarID:     10,
		PackageID: 3,
		AddOnIDs:  []int64{1, 2},
		PickupAt:  pickup,
		DropoffAt: pickup.Add(72 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.NumberOfDays)
	assert.Equal(t, string(domain.CategoryEconomy), resp.Category)
	assert.Equal(t, "Smart Cover", resp.PackageName)
	assert.Equal(t, "100", resp.PackageDailyRate.String())
	assert.Equal(t, "300", resp.PackageCost.String())

	// 3 × 100 + 3 × 20 + 50
	assert.Equal(t, "410", resp.TotalPrice.String())
	assert.Equal(t, domain.CurrencyCode, resp.Currency)

	require.Len(t, resp.AddOns, 2)
	assert.Equal(t, "60", resp.AddOns[0].Cost.String())
	assert.True(t, resp.AddOns[0].PerDay)
	assert.Equal(t, "50", resp.AddOns[1].Cost.String())
	assert.False(t, resp.AddOns[1].PerDay)
}

func TestExecute_PartialDayRoundsUp(t *testing.T) {
	uc := newTestUseCase(testCar(), testPackage(), nil)

	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{
		CarID:     10,
		PackageID: 3,
		PickupAt:  pickup,
		DropoffAt: pickup.Add(24*time.Hour + time.Minute),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.NumberOfDays)
	assert.Equal(t, "200", resp.TotalPrice.String())
}

func TestExecute_DropoffBeforePickup(t *testing.T) {
	uc := newTestUseCase(testCar(), testPackage(), nil)

	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		CarID:     10,
		PackageID: 3,
		PickupAt:  pickup,
		DropoffAt: pickup.Add(-time.Hour),
	})

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestExecute_ValidationFailed(t *testing.T) {
	uc := newTestUseCase(testCar(), testPackage(), nil)

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "zero car id",
			req: &Request{
				PackageID: 3,
				PickupAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
				DropoffAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "zero package id",
			req: &Request{
				CarID:     10,
				PickupAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
				DropoffAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "missing pickup",
			req: &Request{
				CarID:     10,
				PackageID: 3,
				DropoffAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "negative addon id",
			req: &Request{
				CarID:     10,
				PackageID: 3,
				AddOnIDs:  []int64{-1},
				PickupAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
				DropoffAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_CarNotFound(t *testing.T) {
	uc := NewUseCase(
		&carRepoMock{getByID: func(ctx context.Context, id int64) (*domain.Car, error) {
			return nil, carRepo.ErrCarNotFound
		}},
		&addonRepoMock{getByIDs: func(ctx context.Context, ids []int64) ([]*domain.AddOn, error) {
			return nil, nil
		}},
		&packageRepoMock{getByID: func(ctx context.Context, id int64) (*domain.Package, error) {
			return testPackage(), nil
		}},
		&loggerStub{},
	)

	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		CarID:     99,
		PackageID: 3,
		PickupAt:  pickup,
		DropoffAt: pickup.Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestExecute_MissingPriceForCategory(t *testing.T) {
	pkg := &domain.Package{
		ID:   3,
		Name: "Smart Cover",
		Prices: domain.CategoryPrices{
			domain.CategoryCrossoverSUV: decimal.NewFromInt(150),
		},
	}

	uc := newTestUseCase(testCar(), pkg, nil)

	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		CarID:     10,
		PackageID: 3,
		PickupAt:  pickup,
		DropoffAt: pickup.Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrPriceNotSet)
}
