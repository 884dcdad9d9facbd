package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// Result запись после изменения и предупреждения об отправке писем
type Result struct {
	Appointment *domain.Appointment
	Warnings    []string
}

// Service управляет жизненным циклом записей
type Service struct {
	appointmentRepo     AppointmentRepository
	slotRepo            SlotRepository
	notifier            Notifier
	txManager           TransactionManager
	metrics             Metrics
	logger              Logger
	releaseSlotOnCancel bool
}

// NewService создает новый экземпляр сервиса записей. metrics может быть nil.
// При releaseSlotOnCancel отмена возвращает слот в доступные
func NewService(
	appointmentRepo AppointmentRepository,
	slotRepo SlotRepository,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
	releaseSlotOnCancel bool,
) *Service {
	return &Service{
		appointmentRepo:     appointmentRepo,
		slotRepo:            slotRepo,
		notifier:            notifier,
		txManager:           txManager,
		metrics:             metrics,
		logger:              logger,
		releaseSlotOnCancel: releaseSlotOnCancel,
	}
}

// Get возвращает запись владельцу или администратору
func (s *Service) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Appointment, error) {
	s.logger.Info("Get: fetching appointment id=%s for actor=%s", id, actor.UserID)

	if !actor.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	appointment, err := s.load(ctx, "Get", id)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccess(appointment) {
		s.logger.Warn("Get: access denied for actor=%s to appointment id=%s", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return appointment, nil
}

// ListMine возвращает записи текущего клиента
func (s *Service) ListMine(ctx context.Context, actor domain.Actor) ([]*domain.Appointment, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	list, err := s.appointmentRepo.ListForClient(ctx, actor.UserID)
	if err != nil {
		s.logger.Error("ListMine: repository error for client=%s: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListMine: fetched %d appointments for client=%s", len(list), actor.UserID)
	return list, nil
}

// ListAll возвращает все записи, опционально по статусу. Только для администратора
func (s *Service) ListAll(ctx context.Context, actor domain.Actor, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	if !actor.IsAdmin {
		s.logger.Warn("ListAll: actor=%s is not admin", actor.UserID)
		return nil, ErrAdminOnly
	}

	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("unknown status %q", *status)
	}

	list, err := s.appointmentRepo.ListAll(ctx, status)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d appointments", len(list))
	return list, nil
}

// Confirm подтверждает ожидающую запись. Только для администратора
func (s *Service) Confirm(ctx context.Context, actor domain.Actor, id string) (*Result, error) {
	s.logger.Info("Confirm: confirming appointment id=%s by actor=%s", id, actor.UserID)

	if !actor.IsAdmin {
		s.logger.Warn("Confirm: actor=%s is not admin", actor.UserID)
		return nil, ErrAdminOnly
	}

	var updated *domain.Appointment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := s.load(txCtx, "Confirm", id)
		if err != nil {
			return err
		}

		if !appointment.CanBeConfirmed() {
			s.logger.Warn("Confirm: appointment id=%s cannot be confirmed, status=%s", id, appointment.Status)
			return ErrCannotConfirm
		}

		updated, err = s.setStatus(txCtx, "Confirm", id, domain.StatusConfirmed)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.recordTransition(domain.StatusConfirmed)
	s.logger.Info("Confirm: appointment id=%s confirmed", id)

	return &Result{
		Appointment: updated,
		Warnings:    s.notifier.AppointmentConfirmed(ctx, updated),
	}, nil
}

// Cancel отменяет запись. Доступно владельцу и администратору.
// Повторная отмена ничего не меняет и не отправляет писем
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, id string) (*Result, error) {
	s.logger.Info("Cancel: cancelling appointment id=%s by actor=%s", id, actor.UserID)

	if !actor.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	var (
		updated   *domain.Appointment
		unchanged bool
	)
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := s.load(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		if !actor.CanAccess(appointment) {
			s.logger.Warn("Cancel: access denied for actor=%s to appointment id=%s", actor.UserID, id)
			return ErrAccessDenied
		}

		if appointment.Status == domain.StatusCancelled {
			updated = appointment
			unchanged = true
			return nil
		}

		if !appointment.CanBeCancelled() {
			s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, appointment.Status)
			return ErrCannotCancel
		}

		updated, err = s.setStatus(txCtx, "Cancel", id, domain.StatusCancelled)
		if err != nil {
			return err
		}

		if s.releaseSlotOnCancel {
			return s.releaseSlot(txCtx, updated)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if unchanged {
		s.logger.Info("Cancel: appointment id=%s is already cancelled", id)
		return &Result{Appointment: updated}, nil
	}

	s.recordTransition(domain.StatusCancelled)
	s.logger.Info("Cancel: appointment id=%s cancelled", id)

	return &Result{
		Appointment: updated,
		Warnings:    s.notifier.AppointmentCancelled(ctx, updated),
	}, nil
}

// UpdateStatus точка входа смены статуса из HTTP API.
// Поддерживаются только confirmed и cancelled
func (s *Service) UpdateStatus(ctx context.Context, actor domain.Actor, id string, status domain.AppointmentStatus) (*Result, error) {
	switch status {
	case domain.StatusConfirmed:
		return s.Confirm(ctx, actor, id)
	case domain.StatusCancelled:
		return s.Cancel(ctx, actor, id)
	case domain.StatusPending, domain.StatusCompleted:
		s.logger.Warn("UpdateStatus: unsupported target status=%s for appointment id=%s", status, id)
		return nil, ErrUnsupportedStatus
	default:
		return nil, domain.NewValidationError("unknown status %q", status)
	}
}

func (s *Service) load(ctx context.Context, op, id string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, err
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return appointment, nil
}

func (s *Service) setStatus(ctx context.Context, op, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	updated, err := s.appointmentRepo.Update(ctx, id, domain.AppointmentUpdate{Status: &status})
	if err != nil {
		s.logger.Error("%s: failed to update appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - update error: %w", ErrInternal, op, err)
	}
	return updated, nil
}

func (s *Service) releaseSlot(ctx context.Context, appointment *domain.Appointment) error {
	slot, err := s.slotRepo.FindSlot(ctx, appointment.Date, appointment.Time)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		s.logger.Error("Cancel: failed to find slot for appointment id=%s: %v", appointment.ID, err)
		return fmt.Errorf("%w: Cancel - slot lookup error: %w", ErrInternal, err)
	}

	if err := s.slotRepo.MarkAvailable(ctx, slot.ID); err != nil {
		s.logger.Error("Cancel: failed to release slot id=%s: %v", slot.ID, err)
		return fmt.Errorf("%w: Cancel - slot release error: %w", ErrInternal, err)
	}
	s.logger.Info("Cancel: slot id=%s released", slot.ID)
	return nil
}

func (s *Service) recordTransition(status domain.AppointmentStatus) {
	if s.metrics != nil {
		s.metrics.RecordTransition(string(status))
	}
}
