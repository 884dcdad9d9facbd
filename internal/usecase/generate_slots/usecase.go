package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// UseCase use case для заполнения расписания сеткой слотов
type UseCase struct {
	slotRepo     SlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает свободные слоты на каждый подходящий день диапазона.
// Уже существующие слоты (в том числе занятые) не трогаются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: actor=%s, from=%s, to=%s, hours=%s-%s, step=%d",
		req.Actor.UserID, req.From, req.To, req.OpenTime, req.CloseTime, req.StepMinutes)

	if !req.Actor.IsAdmin {
		uc.logger.Warn("GenerateSlots: actor=%s is not admin", req.Actor.UserID)
		return nil, ErrAdminOnly
	}

	// 1. Валидация входных данных
	v, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	resp := &Response{Created: make([]*domain.AvailabilitySlot, 0)}

	// 2. Проходим по дням, каждый день в своей транзакции
	for _, date := range datesInRange(v.from, v.to, v.weekdays) {
		times, err := generateTimeSlots(v.openTime, v.closeTime, v.step, date, now)
		if err != nil {
			return nil, fmt.Errorf("%w: GenerateSlots - generate error: %w", ErrInternal, err)
		}
		if len(times) == 0 {
			continue
		}

		err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
			for _, t := range times {
				if err := uc.slotRepo.LockSlot(txCtx, date, t); err != nil {
					return fmt.Errorf("%w: GenerateSlots - lock error: %w", ErrInternal, err)
				}

				_, err := uc.slotRepo.FindSlot(txCtx, date, t)
				switch {
				case err == nil:
					resp.Skipped++
					continue
				case !errors.Is(err, domain.ErrNotFound):
					return fmt.Errorf("%w: GenerateSlots - lookup error: %w", ErrInternal, err)
				}

				created, err := uc.slotRepo.Create(txCtx, &domain.AvailabilitySlot{
					Date:        date,
					Time:        t,
					IsAvailable: true,
					CreatedBy:   req.Actor.ClientID(),
				})
				if err != nil {
					return fmt.Errorf("%w: GenerateSlots - repository error: %w", ErrInternal, err)
				}
				resp.Created = append(resp.Created, created)
			}
			return nil
		})
		if err != nil {
			uc.logger.Error("GenerateSlots: failed on %s: %v", date.Format(domain.DateFormat), err)
			return nil, err
		}
	}

	uc.logger.Info("GenerateSlots: created=%d, skipped=%d", len(resp.Created), resp.Skipped)
	return resp, nil
}
