package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// Reserver занимает слот под запись: блокировка, проверка конфликта и
// перевод слота в недоступный. Должен вызываться внутри транзакции
type Reserver struct {
	slotRepo        SlotRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewReserver создает новый экземпляр Reserver
func NewReserver(slotRepo SlotRepository, appointmentRepo AppointmentRepository, logger Logger) *Reserver {
	return &Reserver{
		slotRepo:        slotRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Reserve проверяет, что слот свободен, и помечает его занятым.
// excludeID исключает саму запись из проверки при переносе.
// Если слота нет, он создается сразу недоступным с владельцем ownerID
func (r *Reserver) Reserve(ctx context.Context, date time.Time, t types.TimeString, ownerID, excludeID *string) error {
	dateStr := date.Format(domain.DateFormat)

	if err := r.slotRepo.LockSlot(ctx, date, t); err != nil {
		r.logger.Error("Reserve: failed to lock slot %s %s: %v", dateStr, t, err)
		return fmt.Errorf("%w: failed to lock slot: %w", ErrInternal, err)
	}

	busy, err := r.appointmentRepo.FindActiveConflict(ctx, date, t, excludeID)
	if err != nil {
		r.logger.Error("Reserve: failed to check conflict for %s %s: %v", dateStr, t, err)
		return fmt.Errorf("%w: failed to check conflict: %w", ErrInternal, err)
	}
	if busy {
		r.logger.Warn("Reserve: slot %s %s already booked", dateStr, t)
		return ErrSlotAlreadyBooked
	}

	slot, err := r.slotRepo.FindSlot(ctx, date, t)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		created, err := r.slotRepo.Create(ctx, &domain.AvailabilitySlot{
			Date:        date,
			Time:        t,
			IsAvailable: false,
			CreatedBy:   ownerID,
		})
		if err != nil {
			r.logger.Error("Reserve: failed to create slot %s %s: %v", dateStr, t, err)
			return fmt.Errorf("%w: failed to create slot: %w", ErrInternal, err)
		}
		r.logger.Info("Reserve: created unavailable slot id=%s for %s %s", created.ID, dateStr, t)
		return nil
	case err != nil:
		r.logger.Error("Reserve: failed to find slot %s %s: %v", dateStr, t, err)
		return fmt.Errorf("%w: failed to find slot: %w", ErrInternal, err)
	}

	// Занятый слот без активной записи допустим: например, после отмены
	if !slot.IsAvailable {
		r.logger.Info("Reserve: slot id=%s is already unavailable", slot.ID)
		return nil
	}

	if err := r.slotRepo.MarkUnavailable(ctx, slot.ID); err != nil {
		r.logger.Error("Reserve: failed to mark slot id=%s unavailable: %v", slot.ID, err)
		return fmt.Errorf("%w: failed to mark slot unavailable: %w", ErrInternal, err)
	}
	r.logger.Info("Reserve: slot id=%s marked unavailable", slot.ID)
	return nil
}
