package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var validate = validator.New()

// SubmitRequest сообщение из формы обратной связи
type SubmitRequest struct {
	FullName string
	Email    string
	Phone    *string
	Message  string
}

// SubmitResult сохраненное сообщение и предупреждения об отправке писем
type SubmitResult struct {
	Message  *domain.ContactMessage
	Warnings []string
}

// Service сообщения формы обратной связи
type Service struct {
	repo     ContactRepository
	notifier Notifier
	metrics  Metrics
	logger   Logger
}

// NewService создает новый экземпляр сервиса. metrics может быть nil
func NewService(repo ContactRepository, notifier Notifier, metrics Metrics, logger Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Submit сохраняет сообщение со статусом new и оповещает владельца
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	msg, err := validateSubmit(req)
	if err != nil {
		s.logger.Warn("SubmitContact: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		s.logger.Error("SubmitContact: repository error: %v", err)
		return nil, fmt.Errorf("%w: SubmitContact - repository error: %w", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.RecordContactMessage()
	}
	s.logger.Info("SubmitContact: stored message id=%s from %s", created.ID, created.Email)

	return &SubmitResult{
		Message:  created,
		Warnings: s.notifier.ContactReceived(ctx, created),
	}, nil
}

// List возвращает сообщения от новых к старым. Только для администратора
func (s *Service) List(ctx context.Context, actor domain.Actor, status *domain.ContactStatus) ([]*domain.ContactMessage, error) {
	if !actor.IsAdmin {
		s.logger.Warn("ListContacts: actor=%s is not admin", actor.UserID)
		return nil, ErrAdminOnly
	}
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("unknown status %q", *status)
	}

	list, err := s.repo.List(ctx, status)
	if err != nil {
		s.logger.Error("ListContacts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListContacts - repository error: %w", ErrInternal, err)
	}
	return list, nil
}

// UpdateStatus продвигает статус сообщения new -> read -> archived.
// Тот же статус ничего не меняет
func (s *Service) UpdateStatus(ctx context.Context, actor domain.Actor, id string, status domain.ContactStatus) (*domain.ContactMessage, error) {
	s.logger.Info("UpdateContactStatus: id=%s, status=%s, actor=%s", id, status, actor.UserID)

	if !actor.IsAdmin {
		s.logger.Warn("UpdateContactStatus: actor=%s is not admin", actor.UserID)
		return nil, ErrAdminOnly
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("unknown status %q", status)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("UpdateContactStatus: message id=%s not found", id)
			return nil, err
		}
		s.logger.Error("UpdateContactStatus: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateContactStatus - repository error: %w", ErrInternal, err)
	}

	if current.Status == status {
		return current, nil
	}
	if !current.Status.CanAdvanceTo(status) {
		s.logger.Warn("UpdateContactStatus: cannot move message id=%s from %s to %s", id, current.Status, status)
		return nil, ErrStatusBackwards
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error("UpdateContactStatus: failed to update id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateContactStatus - update error: %w", ErrInternal, err)
	}
	return updated, nil
}

func validateSubmit(req SubmitRequest) (*domain.ContactMessage, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, domain.NewValidationError("full name is required")
	}
	if len(fullName) > domain.MaxFullNameLength {
		return nil, domain.NewValidationError("full name must be at most %d characters", domain.MaxFullNameLength)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, domain.NewValidationError("email is invalid")
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, domain.NewValidationError("message is required")
	}
	if len(message) > domain.MaxMessageLength {
		return nil, domain.NewValidationError("message must be at most %d characters", domain.MaxMessageLength)
	}

	var phone *string
	if req.Phone != nil {
		if p := strings.TrimSpace(*req.Phone); p != "" {
			if len(p) > domain.MaxPhoneLength {
				return nil, domain.NewValidationError("phone must be at most %d characters", domain.MaxPhoneLength)
			}
			phone = &p
		}
	}

	return &domain.ContactMessage{
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Message:  message,
		Status:   domain.ContactStatusNew,
	}, nil
}
