package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	appointmentRepo "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/appointment"
	contactRepo "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/contact"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	deleted      []int64
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, appointmentID int64) (*domain.Appointment, error) {
	for _, app := range f.appointments {
		if app.ID == appointmentID {
			return app, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, app := range f.appointments {
		if filter.ContactID != nil && app.ContactID != *filter.ContactID {
			continue
		}
		result = append(result, app)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, appointmentID int64) error {
	f.deleted = append(f.deleted, appointmentID)
	return nil
}

type fakeContactRepo struct {
	missing bool
}

func (f *fakeContactRepo) GetByID(_ context.Context, contactID int64) (*domain.Contact, error) {
	if f.missing {
		return nil, contactRepo.ErrContactNotFound
	}
	return &domain.Contact{ID: contactID, Name: "Li Lee", Email: "li.lee@example.com"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleAppointment(id, userID, contactID int64) *domain.Appointment {
	start := time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:        id,
		Title:     "Planning",
		Type:      "Consultation",
		Start:     start,
		End:       start.Add(time.Hour),
		UserID:    userID,
		ContactID: contactID,
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{sampleAppointment(1, 10, 3)}}
	svc := NewService(repo, &fakeContactRepo{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Planning", resp.Title)
}

func TestGetByID_AccessDenied(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{sampleAppointment(1, 10, 3)}}
	svc := NewService(repo, &fakeContactRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeContactRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 10)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{sampleAppointment(1, 10, 3)}}
	svc := NewService(repo, &fakeContactRepo{}, nopLogger{})

	err := svc.Delete(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDelete_AccessDenied(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{sampleAppointment(1, 10, 3)}}
	svc := NewService(repo, &fakeContactRepo{}, nopLogger{})

	err := svc.Delete(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestGetByContact(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		sampleAppointment(1, 10, 3),
		sampleAppointment(2, 11, 3),
		sampleAppointment(3, 10, 4),
	}}
	svc := NewService(repo, &fakeContactRepo{}, nopLogger{})

	resp, err := svc.GetByContact(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, resp.Appointments, 2)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
	assert.Equal(t, int64(2), resp.Appointments[1].ID)
}

func TestGetByContact_ContactNotFound(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeContactRepo{missing: true}, nopLogger{})

	_, err := svc.GetByContact(context.Background(), 3)

	assert.ErrorIs(t, err, ErrContactNotFound)
}
