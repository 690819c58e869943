package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	customerstore "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/customer"
	"github.com/avlasova/GCA-SchedulingService/internal/usecase/check_conflict"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	stored := *appointment
	stored.ID = 42
	f.created = &stored
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

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Записи лежат в рабочем дне офиса: парсим время сразу в его часовом поясе
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
		Title:      "Planning session",
		Type:       "Consultation",
		Start:      businessTime(t, "2024-04-15 10:00"),
		End:        businessTime(t, "2024-04-15 11:00"),
		CustomerID: 1,
		UserID:     1,
		ContactID:  1,
	}
}

func newUseCase(repo *fakeAppointmentRepo, customers *fakeCustomerRepo, tx *fakeTxManager) *UseCase {
	checker := check_conflict.NewUseCase(repo, nopLogger{})
	return NewUseCase(repo, customers, checker, tx, nopLogger{})
}

func TestExecute_CreatesAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	tx := &fakeTxManager{}
	uc := newUseCase(repo, &fakeCustomerRepo{}, tx)

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Appointment.ID)
	assert.Equal(t, "Planning session", resp.Appointment.Title)
	assert.Equal(t, 1, tx.calls)
	require.NotNil(t, repo.created)
}

func TestExecute_ConflictRejected(t *testing.T) {
	req := validRequest(t)
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{{
		ID:         7,
		CustomerID: req.CustomerID,
		Start:      req.Start.Add(30 * time.Minute),
		End:        req.End.Add(30 * time.Minute),
	}}}
	uc := newUseCase(repo, &fakeCustomerRepo{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAppointmentConflict)
	assert.Nil(t, repo.created)
}

// Пересечение с записью другого клиента не мешает созданию
func TestExecute_OtherCustomerOverlapIgnored(t *testing.T) {
	req := validRequest(t)
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{{
		ID:         7,
		CustomerID: req.CustomerID + 1,
		Start:      req.Start,
		End:        req.End,
	}}}
	uc := newUseCase(repo, &fakeCustomerRepo{}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Appointment.ID)
}

// Смежные интервалы не считаются пересечением
func TestExecute_AdjacentIntervalAllowed(t *testing.T) {
	req := validRequest(t)
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{{
		ID:         7,
		CustomerID: req.CustomerID,
		Start:      req.End,
		End:        req.End.Add(time.Hour),
	}}}
	uc := newUseCase(repo, &fakeCustomerRepo{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeCustomerRepo{missing: true}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"empty title", func(r *Request) { r.Title = " " }, ErrInvalidInput},
		{"empty type", func(r *Request) { r.Type = "" }, ErrInvalidInput},
		{"zero customer", func(r *Request) { r.CustomerID = 0 }, ErrInvalidInput},
		{"zero user", func(r *Request) { r.UserID = 0 }, ErrInvalidInput},
		{"zero contact", func(r *Request) { r.ContactID = 0 }, ErrInvalidInput},
		{"missing start", func(r *Request) { r.Start = time.Time{} }, ErrInvalidInput},
		{"reversed interval", func(r *Request) { r.Start, r.End = r.End, r.Start }, ErrInvalidInterval},
		{"zero-length interval", func(r *Request) { r.End = r.Start }, ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			uc := newUseCase(&fakeAppointmentRepo{}, &fakeCustomerRepo{}, &fakeTxManager{})
			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_BusinessHours(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{"starts at opening", "2024-04-15 08:00", "2024-04-15 09:00", nil},
		{"ends exactly at closing", "2024-04-15 21:00", "2024-04-15 22:00", nil},
		{"starts before opening", "2024-04-15 07:30", "2024-04-15 09:00", ErrOutsideBusinessHours},
		{"ends after closing", "2024-04-15 21:30", "2024-04-15 22:30", ErrOutsideBusinessHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			req.Start = businessTime(t, tt.start)
			req.End = businessTime(t, tt.end)

			uc := newUseCase(&fakeAppointmentRepo{}, &fakeCustomerRepo{}, &fakeTxManager{})
			_, err := uc.Execute(context.Background(), req)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
