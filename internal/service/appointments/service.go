package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	appointmentRepo "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/appointment"
	contactRepo "github.com/avlasova/GCA-SchedulingService/internal/infra/storage/contact"
	"github.com/avlasova/GCA-SchedulingService/internal/service/appointments/models"
	"github.com/avlasova/GCA-SchedulingService/pkg/ptr"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	contactRepo     ContactRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	contactRepo ContactRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		contactRepo:     contactRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Пользователь может видеть только свою запись
func (s *Service) GetByID(ctx context.Context, appointmentID int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", appointmentID, userID)

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !appointment.IsForUser(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, appointmentID)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", appointmentID)
	return models.FromDomainAppointment(appointment), nil
}

// Delete удаляет запись
// Пользователь может удалить только свою запись
func (s *Service) Delete(ctx context.Context, appointmentID int64, userID int64) error {
	s.logger.Info("Delete: deleting appointment id=%d by user=%d", appointmentID, userID)

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !appointment.IsForUser(userID) {
		s.logger.Warn("Delete: access denied for user=%d to appointment id=%d", userID, appointmentID)
		return ErrAccessDenied
	}

	if err := s.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found during deletion", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", appointmentID)
	return nil
}

// GetByContact получает расписание контакта: все записи, закрепленные
// за указанным контактом, в порядке времени начала
func (s *Service) GetByContact(ctx context.Context, contactID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByContact: fetching appointments for contact=%d", contactID)

	if _, err := s.contactRepo.GetByID(ctx, contactID); err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			s.logger.Warn("GetByContact: contact id=%d not found", contactID)
			return nil, ErrContactNotFound
		}
		s.logger.Error("GetByContact: failed to get contact id=%d: %v", contactID, err)
		return nil, fmt.Errorf("%w: GetByContact - failed to get contact: %v", ErrInternal, err)
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		ContactID: ptr.Ptr(contactID),
	})
	if err != nil {
		s.logger.Error("GetByContact: repository error for contact=%d: %v", contactID, err)
		return nil, fmt.Errorf("%w: GetByContact - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByContact: successfully fetched %d appointments for contact=%d",
		len(appointments), contactID)
	return models.FromDomainAppointmentList(appointments), nil
}
