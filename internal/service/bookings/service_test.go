package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingStorage "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	carStorage "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type bookingRepoMock struct {
	getByIDFunc            func(ctx context.Context, id int64) (*domain.Booking, error)
	listWithFilterFunc     func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	updateStatusFunc       func(ctx context.Context, id int64, status domain.BookingStatus) error
	setPaidFunc            func(ctx context.Context, id int64, isPaid bool) error
	replaceCarSnapshotFunc func(ctx context.Context, id int64, car domain.CarSnapshot) error
	deleteFunc             func(ctx context.Context, id int64) error
}

func (m *bookingRepoMock) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *bookingRepoMock) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.listWithFilterFunc(ctx, filter)
}

func (m *bookingRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.updateStatusFunc(ctx, id, status)
}

func (m *bookingRepoMock) SetPaid(ctx context.Context, id int64, isPaid bool) error {
	return m.setPaidFunc(ctx, id, isPaid)
}

func (m *bookingRepoMock) ReplaceCarSnapshot(ctx context.Context, id int64, car domain.CarSnapshot) error {
	return m.replaceCarSnapshotFunc(ctx, id, car)
}

func (m *bookingRepoMock) Delete(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

type carRepoMock struct {
	getByIDFunc func(ctx context.Context, id int64) (*domain.Car, error)
}

func (m *carRepoMock) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	return m.getByIDFunc(ctx, id)
}

type loggerStub struct{}

func (loggerStub) Info(format string, v ...interface{})  {}
func (loggerStub) Warn(format string, v ...interface{})  {}
func (loggerStub) Error(format string, v ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID: 7,
		Car: domain.CarSnapshot{
			CarID:       3,
			Name:        "Yaris",
			Brand:       "Toyota",
			Category:    domain.CategoryEconomy,
			PlateNumber: "A 12345",
			Passengers:  4,
			IsAuto:      true,
			HasAC:       true,
		},
		User: domain.UserSnapshot{
			Name:        "Sara Khan",
			Email:       "sara@example.com",
			Phone:       "+971500000001",
			Nationality: "Pakistan",
		},
		PickupAt:        time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		DropoffAt:       time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC),
		PickupLocation:  "Dubai Airport T1",
		DropoffLocation: "Dubai Marina",
		NumberOfDays:    3,
		SelectedAddOns: []domain.AddOnSnapshot{
			{
				AddOnID: 11,
				Name:    "GPS",
				PerDay:  true,
				Prices: domain.CategoryPrices{
					domain.CategoryEconomy: decimal.NewFromInt(20),
				},
			},
		},
		SelectedPackage: domain.PackageSnapshot{
			PackageID: 5,
			Name:      "Standard",
			Prices: domain.CategoryPrices{
				domain.CategoryEconomy: decimal.NewFromInt(100),
			},
		},
		TotalPrice: decimal.NewFromInt(360),
		IsPaid:     false,
		Status:     domain.StatusConfirmed,
	}
}

func TestService_GetByID_Success(t *testing.T) {
	repo := &bookingRepoMock{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(), nil
		},
	}

	svc := NewService(repo, &carRepoMock{}, loggerStub{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "360", resp.TotalPrice)
	assert.Equal(t, domain.CurrencyCode, resp.Currency)

	// Разбивка: 4 строки клиента, машина, пакет, 1 дополнение, итог
	require.Len(t, resp.Summary, 8)
	assert.Equal(t, "Name", resp.Summary[0].Label)
	assert.Equal(t, "Sara Khan", resp.Summary[0].Value)
	assert.Equal(t, "Package : Standard", resp.Summary[5].Label)
	assert.Equal(t, "AED 300.00", resp.Summary[5].Value)
	assert.Equal(t, "GPS", resp.Summary[6].Label)
	assert.Equal(t, "AED 60.00", resp.Summary[6].Value)
	assert.Equal(t, "Total Price", resp.Summary[7].Label)
	assert.Equal(t, "AED 360.00", resp.Summary[7].Value)
	assert.Equal(t, "Payable upon dropoff", resp.Summary[7].Formula)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &bookingRepoMock{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingStorage.ErrBookingNotFound
		},
	}

	svc := NewService(repo, &carRepoMock{}, loggerStub{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Update_EmptyRequest(t *testing.T) {
	svc := NewService(&bookingRepoMock{}, &carRepoMock{}, loggerStub{})

	_, err := svc.Update(context.Background(), 7, &models.UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_InvalidStatus(t *testing.T) {
	svc := NewService(&bookingRepoMock{}, &carRepoMock{}, loggerStub{})

	req := &models.UpdateBookingRequest{Status: ptr.Ptr("archived")}
	_, err := svc.Update(context.Background(), 7, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_StatusAndPaid(t *testing.T) {
	var gotStatus domain.BookingStatus
	var gotPaid bool

	repo := &bookingRepoMock{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			b := testBooking()
			b.Status = domain.StatusCompleted
			b.IsPaid = true
			return b, nil
		},
		updateStatusFunc: func(ctx context.Context, id int64, status domain.BookingStatus) error {
			gotStatus = status
			return nil
		},
		setPaidFunc: func(ctx context.Context, id int64, isPaid bool) error {
			gotPaid = isPaid
			return nil
		},
	}

	svc := NewService(repo, &carRepoMock{}, loggerStub{})

	req := &models.UpdateBookingRequest{
		Status: ptr.Ptr("completed"),
		IsPaid: ptr.Ptr(true),
	}

	resp, err := svc.Update(context.Background(), 7, req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, gotStatus)
	assert.True(t, gotPaid)
	assert.Equal(t, "completed", resp.Status)
	assert.True(t, resp.IsPaid)
	// Зафиксированная стоимость не меняется при обновлении
	assert.Equal(t, "360", resp.TotalPrice)
}

func TestService_Update_ReassignCar(t *testing.T) {
	var replaced domain.CarSnapshot

	repo := &bookingRepoMock{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(), nil
		},
		replaceCarSnapshotFunc: func(ctx context.Context, id int64, car domain.CarSnapshot) error {
			replaced = car
			return nil
		},
	}
	carRepo := &carRepoMock{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Car, error) {
			return &domain.Car{
				ID:          9,
				Name:        "Sunny",
				Brand:       "Nissan",
				Category:    domain.CategoryEconomy,
				PlateNumber: "B 67890",
				Passengers:  4,
				IsAuto:      true,
				HasAC:       true,
			}, nil
		},
	}

	svc := NewService(repo, carRepo, loggerStub{})

	req := &models.UpdateBookingRequest{CarID: ptr.Ptr(int64(9))}
	_, err := svc.Update(context.Background(), 7, req)
	require.NoError(t, err)

	assert.Equal(t, int64(9), replaced.CarID)
	assert.Equal(t, "Sunny", replaced.Name)
	assert.Equal(t, "Nissan", replaced.Brand)
}

func TestService_Update_ReassignCar_CompletedBooking(t *testing.T) {
	repo := &bookingRepoMock{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			b := testBooking()
			b.Status = domain.StatusCompleted
			return b, nil
		},
	}

	svc := NewService(repo, &carRepoMock{}, loggerStub{})

	req := &models.UpdateBookingRequest{CarID: ptr.Ptr(int64(9))}
	_, err := svc.Update(context.Background(), 7, req)
	assert.ErrorIs(t, err, ErrCannotChangeCar)
}

func TestService_Update_ReassignCar_CarNotFound(t *testing.T) {
	repo := &bookingRepoMock{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(), nil
		},
	}
	carRepo := &carRepoMock{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Car, error) {
			return nil, carStorage.ErrCarNotFound
		},
	}

	svc := NewService(repo, carRepo, loggerStub{})

	req := &models.UpdateBookingRequest{CarID: ptr.Ptr(int64(9))}
	_, err := svc.Update(context.Background(), 7, req)
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestService_List_FiltersPassedThrough(t *testing.T) {
	var gotFilter domain.BookingsFilter

	repo := &bookingRepoMock{
		listWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			gotFilter = filter
			return []*domain.Booking{testBooking()}, nil
		},
	}

	svc := NewService(repo, &carRepoMock{}, loggerStub{})

	req := &models.ListBookingsRequest{
		Status: ptr.Ptr("confirmed"),
		IsPaid: ptr.Ptr(false),
	}

	resp, err := svc.List(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *gotFilter.Status)
	require.NotNil(t, gotFilter.IsPaid)
	assert.False(t, *gotFilter.IsPaid)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(7), resp.Bookings[0].ID)
	// Список без разбивки, она собирается только в детальном ответе
	assert.Nil(t, resp.Bookings[0].Summary)
}

func TestService_Delete(t *testing.T) {
	deleted := int64(0)
	repo := &bookingRepoMock{
		deleteFunc: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}

	svc := NewService(repo, &carRepoMock{}, loggerStub{})

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, int64(7), deleted)

	repo.deleteFunc = func(ctx context.Context, id int64) error {
		return bookingStorage.ErrBookingNotFound
	}
	assert.ErrorIs(t, svc.Delete(context.Background(), 404), ErrBookingNotFound)
}
