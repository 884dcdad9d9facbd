package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// Результаты бронирования для метрик
const (
	resultCreated  = "created"
	resultConflict = "conflict"
	resultInvalid  = "invalid"
	resultError    = "error"
)

// UseCase use case для создания записи на сессию
type UseCase struct {
	appointmentRepo AppointmentRepository
	reserver        SlotReserver
	notifier        Notifier
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	appointmentRepo AppointmentRepository,
	reserver SlotReserver,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		reserver:        reserver,
		notifier:        notifier,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка конфликта, резервирование слота и создание записи выполняются
// в одной сериализуемой транзакции, письма отправляются после её фиксации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, time=%s, client=%s",
		req.Email, req.Date, req.Time, req.Actor.UserID)

	// 1. Валидация входных данных
	input, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.record(resultInvalid)
		return nil, err
	}

	clientID := req.Actor.ClientID()

	var result *domain.Appointment

	// 2. Резервируем слот и создаем запись в одной транзакции READ COMMITTED:
	// проверка конфликта читает данные, зафиксированные до получения блокировки
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.reserver.Reserve(txCtx, input.date, input.time, clientID, nil); err != nil {
			return err
		}

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:    clientID,
			FullName:    input.fullName,
			Email:       input.email,
			Phone:       input.phone,
			Date:        input.date,
			Time:        input.time,
			SessionType: input.sessionType,
			Status:      domain.StatusPending,
			Notes:       input.notes,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			uc.record(resultConflict)
		case errors.Is(err, domain.ErrValidation):
			uc.record(resultInvalid)
		default:
			uc.record(resultError)
		}
		return nil, err
	}

	uc.record(resultCreated)
	uc.logger.Info("CreateBooking: successfully created appointment id=%s", result.ID)

	// 3. Уведомления после фиксации. Ошибки отправки становятся предупреждениями
	warnings := uc.notifier.BookingCreated(ctx, result)

	return &Response{
		Appointment: result,
		Warnings:    warnings,
	}, nil
}

func (uc *UseCase) record(result string) {
	if uc.metrics != nil {
		uc.metrics.RecordBooking(result)
	}
}
