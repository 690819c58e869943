package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	appointmentstore "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/appointment"
	customerstore "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/customer"
	"github.com/avlasova/GCA-SchedulingService/internal/usecase/check_conflict"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	updated  *domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, appointmentID int64) (*domain.Appointment, error) {
	for _, app := range f.existing {
		if app.ID == appointmentID {
			return app, nil
		}
	}
	return nil, appointmentstore.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) Update(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	stored := *appointment
	f.updated = &stored
	return &stored, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, app := range f.existing {
		if filter.CustomerID != nil && app.CustomerID != *filter.CustomerID {
			continue
		}
		result = append(result, app)
	}
	return result, nil
}

type fakeCustomerRepo struct {
	missing bool
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, customerID int64) (*domain.Customer, error) {
	if f.missing {
		return nil, customerstore.ErrCustomerNotFound
	}
	return &domain.Customer{ID: customerID, Name: "ACME"}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func businessTime(t *testing.T, value string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(domain.BusinessTimezone)
	require.NoError(t, err)
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	require.NoError(t, err)
	return parsed
}

func validRequest(t *testing.T) *Request {
	return &Request{
		AppointmentID: 7,
		Title:         "Planning session",
		Type:          "Consultation",
		Start:         businessTime(t, "2024-04-15 10:00"),
		End:           businessTime(t, "2024-04-15 11:00"),
		CustomerID:    1,
		UserID:        1,
		ContactID:     1,
	}
}

func storedAppointment(t *testing.T) *domain.Appointment {
	return &domain.Appointment{
		ID:         7,
		Title:      "Old title",
		Type:       "Consultation",
		Start:      businessTime(t, "2024-04-15 10:00"),
		End:        businessTime(t, "2024-04-15 11:00"),
		CustomerID: 1,
		UserID:     1,
		ContactID:  1,
	}
}

func newUseCase(repo *fakeAppointmentRepo, customers *fakeCustomerRepo) *UseCase {
	checker := check_conflict.NewUseCase(repo, nopLogger{})
	return NewUseCase(repo, customers, checker, fakeTxManager{}, nopLogger{})
}

// Запись не конфликтует со своим прежним интервалом
func TestExecute_UpdatesWithinOwnInterval(t *testing.T) {
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{storedAppointment(t)}}
	uc := newUseCase(repo, &fakeCustomerRepo{})

	req := validRequest(t)
	req.Title = "New title"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "New title", resp.Appointment.Title)
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(7), repo.updated.ID)
}

func TestExecute_ConflictWithAnotherAppointment(t *testing.T) {
	other := storedAppointment(t)
	other.ID = 8
	other.Start = businessTime(t, "2024-04-15 12:00")
	other.End = businessTime(t, "2024-04-15 13:00")

	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{storedAppointment(t), other}}
	uc := newUseCase(repo, &fakeCustomerRepo{})

	req := validRequest(t)
	req.Start = businessTime(t, "2024-04-15 12:30")
	req.End = businessTime(t, "2024-04-15 13:30")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAppointmentConflict)
	assert.Nil(t, repo.updated)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeCustomerRepo{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{storedAppointment(t)}}
	uc := newUseCase(repo, &fakeCustomerRepo{missing: true})

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"zero appointment id", func(r *Request) { r.AppointmentID = 0 }, ErrInvalidInput},
		{"empty title", func(r *Request) { r.Title = "" }, ErrInvalidInput},
		{"reversed interval", func(r *Request) { r.Start, r.End = r.End, r.Start }, ErrInvalidInterval},
		{"before opening", func(r *Request) {
			r.Start = businessTime(t, "2024-04-15 06:00")
			r.End = businessTime(t, "2024-04-15 07:00")
		}, ErrOutsideBusinessHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			uc := newUseCase(&fakeAppointmentRepo{}, &fakeCustomerRepo{})
			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
