package upcoming_appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error

	lastFilter domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}

	result := make([]*domain.Appointment, 0)
	for _, app := range f.appointments {
		if filter.UserID != nil && app.UserID != *filter.UserID {
			continue
		}
		result = append(result, app)
	}
	return result, nil
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

func userAppointment(id, userID int64, start time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:     id,
		UserID: userID,
		Start:  start,
		End:    start.Add(30 * time.Minute),
	}
}

func newUseCase(repo AppointmentRepository, now time.Time) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fakeClock{now: now}
	return uc
}

func TestExecute_WindowBoundaries(t *testing.T) {
	now := ts(t, "2024-04-15 09:00")
	inTenMinutes := userAppointment(1, 1, now.Add(10*time.Minute))
	exactlyAtWindowEnd := userAppointment(2, 1, now.Add(15*time.Minute))
	alreadyRunning := userAppointment(3, 1, now.Add(-10*time.Minute))
	endedJustNow := userAppointment(4, 1, now.Add(-30*time.Minute))
	farAhead := userAppointment(5, 1, now.Add(2*time.Hour))

	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		inTenMinutes, exactlyAtWindowEnd, alreadyRunning, endedJustNow, farAhead,
	}}

	resp, err := newUseCase(repo, now).Execute(context.Background(), &Request{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, []*domain.Appointment{inTenMinutes, alreadyRunning}, resp.Appointments)
}

func TestExecute_ScopedToUser(t *testing.T) {
	now := ts(t, "2024-04-15 09:00")
	mine := userAppointment(1, 1, now.Add(5*time.Minute))
	someoneElses := userAppointment(2, 2, now.Add(5*time.Minute))

	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{mine, someoneElses}}

	resp, err := newUseCase(repo, now).Execute(context.Background(), &Request{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, []*domain.Appointment{mine}, resp.Appointments)
	require.NotNil(t, repo.lastFilter.UserID)
	assert.Equal(t, int64(1), *repo.lastFilter.UserID)
}

func TestExecute_NothingUpcoming(t *testing.T) {
	now := ts(t, "2024-04-15 09:00")
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		userAppointment(1, 1, now.Add(time.Hour)),
	}}

	resp, err := newUseCase(repo, now).Execute(context.Background(), &Request{UserID: 1})

	require.NoError(t, err)
	assert.Empty(t, resp.Appointments)
}

func TestExecute_InvalidUserID(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, ts(t, "2024-04-15 09:00"))

	_, err := uc.Execute(context.Background(), &Request{UserID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{err: errors.New("connection refused")}, ts(t, "2024-04-15 09:00"))

	_, err := uc.Execute(context.Background(), &Request{UserID: 1})

	assert.ErrorIs(t, err, ErrInternal)
}
