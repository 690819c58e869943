package top_customers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetWithFilter(context.Context, domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeCustomerRepo struct {
	err error
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, customerID int64) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Customer{ID: customerID, Name: fmt.Sprintf("Customer %d", customerID)}, nil
}

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return parsed
}

func customerAppointment(customerID int64, start time.Time, minutes int) *domain.Appointment {
	return &domain.Appointment{
		ID:         customerID * 100,
		CustomerID: customerID,
		Start:      start,
		End:        start.Add(time.Duration(minutes) * time.Minute),
	}
}

func newUseCase(appointments []*domain.Appointment, now time.Time) *UseCase {
	uc := NewUseCase(&fakeAppointmentRepo{appointments: appointments}, &fakeCustomerRepo{}, nopLogger{})
	uc.timeProvider = fakeClock{now: now}
	return uc
}

func TestExecute_RanksByTotalMinutes(t *testing.T) {
	now := ts(t, "2024-04-15 09:00")
	apps := []*domain.Appointment{
		customerAppointment(1, ts(t, "2024-04-03 10:00"), 60),
		customerAppointment(1, ts(t, "2024-04-10 10:00"), 60),
		customerAppointment(2, ts(t, "2024-04-05 10:00"), 90),
		customerAppointment(3, ts(t, "2024-05-05 10:00"), 200), // вне окна месяца
		customerAppointment(4, ts(t, "2024-04-08 10:00"), 45),
	}

	resp, err := newUseCase(apps, now).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	require.NotNil(t, resp.Ranking[0])
	require.NotNil(t, resp.Ranking[1])
	require.NotNil(t, resp.Ranking[2])
	assert.Equal(t, int64(1), resp.Ranking[0].Customer.ID)
	assert.Equal(t, int64(120), resp.Ranking[0].TotalMinutes)
	assert.Equal(t, int64(2), resp.Ranking[1].Customer.ID)
	assert.Equal(t, int64(90), resp.Ranking[1].TotalMinutes)
	assert.Equal(t, int64(4), resp.Ranking[2].Customer.ID)
	assert.Equal(t, int64(45), resp.Ranking[2].TotalMinutes)
}

func TestExecute_FewerCustomersThanPlaces(t *testing.T) {
	now := ts(t, "2024-04-15 09:00")
	apps := []*domain.Appointment{
		customerAppointment(7, ts(t, "2024-04-03 10:00"), 30),
	}

	resp, err := newUseCase(apps, now).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	require.NotNil(t, resp.Ranking[0])
	assert.Equal(t, int64(7), resp.Ranking[0].Customer.ID)
	assert.Nil(t, resp.Ranking[1])
	assert.Nil(t, resp.Ranking[2])
}

func TestExecute_EmptyMonth(t *testing.T) {
	now := ts(t, "2024-04-15 09:00")
	apps := []*domain.Appointment{
		customerAppointment(1, ts(t, "2024-06-03 10:00"), 60),
	}

	resp, err := newUseCase(apps, now).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Nil(t, resp.Ranking[0])
	assert.Nil(t, resp.Ranking[1])
	assert.Nil(t, resp.Ranking[2])
}

// При равных суммах место достается клиенту с меньшим идентификатором
func TestExecute_TieBreaksByLowerCustomerID(t *testing.T) {
	now := ts(t, "2024-04-15 09:00")
	apps := []*domain.Appointment{
		customerAppointment(9, ts(t, "2024-04-03 10:00"), 60),
		customerAppointment(2, ts(t, "2024-04-04 10:00"), 60),
		customerAppointment(5, ts(t, "2024-04-05 10:00"), 60),
	}

	resp, err := newUseCase(apps, now).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	require.NotNil(t, resp.Ranking[2])
	assert.Equal(t, int64(2), resp.Ranking[0].Customer.ID)
	assert.Equal(t, int64(5), resp.Ranking[1].Customer.ID)
	assert.Equal(t, int64(9), resp.Ranking[2].Customer.ID)
}

func TestExecute_ZeroLengthAppointmentsTakeNoPlace(t *testing.T) {
	now := ts(t, "2024-04-15 09:00")
	apps := []*domain.Appointment{
		customerAppointment(1, ts(t, "2024-04-03 10:00"), 0),
		customerAppointment(2, ts(t, "2024-04-04 10:00"), 15),
	}

	resp, err := newUseCase(apps, now).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	require.NotNil(t, resp.Ranking[0])
	assert.Equal(t, int64(2), resp.Ranking[0].Customer.ID)
	assert.Nil(t, resp.Ranking[1])
}

func TestExecute_AppointmentRepositoryError(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{err: errors.New("connection refused")}, &fakeCustomerRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_CustomerRepositoryError(t *testing.T) {
	now := ts(t, "2024-04-15 09:00")
	uc := NewUseCase(
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			customerAppointment(1, ts(t, "2024-04-03 10:00"), 60),
		}},
		&fakeCustomerRepo{err: errors.New("customer lookup failed")},
		nopLogger{},
	)
	uc.timeProvider = fakeClock{now: now}

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInternal)
}
