package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// UseCase use case для переноса записи на другую дату и время
type UseCase struct {
	appointmentRepo AppointmentRepository
	reserver        SlotReserver
	notifier        Notifier
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	reserver SlotReserver,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		reserver:        reserver,
		notifier:        notifier,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute переносит активную запись. Новый слот проходит ту же проверку
// конфликта, что и при создании, без учета самой переносимой записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: appointment=%s, date=%s, time=%s, actor=%s",
		req.AppointmentID, req.Date, req.Time, req.Actor.UserID)

	if strings.TrimSpace(req.Date) == "" {
		return nil, domain.NewValidationError("date is required")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Time) == "" {
		return nil, domain.NewValidationError("time is required")
	}
	newTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, domain.NewValidationError("time must be in HH:MM format")
	}

	var previous, result *domain.Appointment

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				uc.logger.Warn("RescheduleBooking: appointment id=%s not found", req.AppointmentID)
				return err
			}
			uc.logger.Error("RescheduleBooking: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
		}

		if !req.Actor.CanAccess(current) {
			uc.logger.Warn("RescheduleBooking: actor=%s has no access to appointment id=%s", req.Actor.UserID, current.ID)
			return ErrAccessDenied
		}

		if !current.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: appointment id=%s has status %s", current.ID, current.Status)
			return ErrNotReschedulable
		}

		if err := uc.reserver.Reserve(txCtx, date, newTime, current.ClientID, &current.ID); err != nil {
			return err
		}

		updated, err := uc.appointmentRepo.Update(txCtx, current.ID, domain.AppointmentUpdate{
			Date: &date,
			Time: &newTime,
		})
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to update appointment id=%s: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %w", ErrInternal, err)
		}

		previous = current
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: appointment id=%s moved from %s %s to %s %s",
		result.ID, previous.DateString(), previous.Time, result.DateString(), result.Time)

	warnings := uc.notifier.AppointmentRescheduled(ctx, result, previous)

	return &Response{
		Appointment: result,
		Warnings:    warnings,
	}, nil
}
