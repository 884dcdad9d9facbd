package slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// Service управление слотами доступности
type Service struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// CreateRequest модель запроса на создание слота
type CreateRequest struct {
	Date        string
	Time        string
	IsAvailable bool
}

// Create добавляет слот. Второй слот на те же дату и время не создается
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateRequest) (*domain.AvailabilitySlot, error) {
	s.logger.Info("CreateSlot: date=%s, time=%s, available=%t, actor=%s", req.Date, req.Time, req.IsAvailable, actor.UserID)

	if !actor.IsAdmin {
		s.logger.Warn("CreateSlot: actor=%s is not admin", actor.UserID)
		return nil, ErrAdminOnly
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	t, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, domain.NewValidationError("time must be in HH:MM format")
	}

	var created *domain.AvailabilitySlot
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.slotRepo.LockSlot(txCtx, date, t); err != nil {
			return fmt.Errorf("%w: CreateSlot - lock error: %w", ErrInternal, err)
		}

		_, err := s.slotRepo.FindSlot(txCtx, date, t)
		switch {
		case err == nil:
			s.logger.Warn("CreateSlot: slot %s %s already exists", req.Date, t)
			return ErrSlotExists
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("%w: CreateSlot - lookup error: %w", ErrInternal, err)
		}

		created, err = s.slotRepo.Create(txCtx, &domain.AvailabilitySlot{
			Date:        date,
			Time:        t,
			IsAvailable: req.IsAvailable,
			CreatedBy:   actor.ClientID(),
		})
		if err != nil {
			return fmt.Errorf("%w: CreateSlot - repository error: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("CreateSlot: %v", err)
		}
		return nil, err
	}

	s.logger.Info("CreateSlot: created slot id=%s", created.ID)
	return created, nil
}

// List возвращает слоты. Гости и клиенты видят только доступные,
// администратор видит все, если не запросил обратного
func (s *Service) List(ctx context.Context, actor domain.Actor, date string, onlyAvailable bool) ([]*domain.AvailabilitySlot, error) {
	filter := domain.SlotFilter{OnlyAvailable: onlyAvailable || !actor.IsAdmin}

	if strings.TrimSpace(date) != "" {
		d, err := domain.ParseDate(date)
		if err != nil {
			return nil, err
		}
		filter.Date = &d
	}

	list, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListSlots: fetched %d slots (date=%s, onlyAvailable=%t)", len(list), date, filter.OnlyAvailable)
	return list, nil
}

// Delete удаляет слот. Только для администратора
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	s.logger.Info("DeleteSlot: id=%s, actor=%s", id, actor.UserID)

	if !actor.IsAdmin {
		s.logger.Warn("DeleteSlot: actor=%s is not admin", actor.UserID)
		return ErrAdminOnly
	}

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("DeleteSlot: slot id=%s not found", id)
			return err
		}
		s.logger.Error("DeleteSlot: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteSlot - repository error: %w", ErrInternal, err)
	}
	return nil
}
