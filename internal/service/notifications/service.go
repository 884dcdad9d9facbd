package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

const (
	warnClientEmail   = "confirmation email could not be sent"
	warnBusinessEmail = "business notification could not be sent"
)

// Service рендерит письма и отправляет их после фиксации изменений.
// Ошибки отправки не прерывают операцию и возвращаются как предупреждения
type Service struct {
	sender        Sender
	businessInbox string
	businessName  string
	templates     map[string]*template.Template
	metrics       Metrics
	logger        Logger
}

// NewService создает сервис уведомлений. metrics может быть nil
func NewService(sender Sender, businessInbox, businessName string, metrics Metrics, logger Logger) *Service {
	return &Service{
		sender:        sender,
		businessInbox: businessInbox,
		businessName:  businessName,
		templates:     parseTemplates(),
		metrics:       metrics,
		logger:        logger,
	}
}

type appointmentView struct {
	Appointment  *domain.Appointment
	Date         string
	Time         string
	PreviousDate string
	PreviousTime string
	BusinessName string
}

type contactView struct {
	Message      *domain.ContactMessage
	BusinessName string
}

// BookingCreated письмо клиенту и оповещение владельцу о новой записи
func (s *Service) BookingCreated(ctx context.Context, a *domain.Appointment) []string {
	view := s.appointmentView(a)

	var warnings []string
	if w := s.deliver(ctx, domain.NotificationBookingCreated, "booking_created", a.Email, view, warnClientEmail); w != "" {
		warnings = append(warnings, w)
	}
	if w := s.deliverToBusiness(ctx, domain.NotificationBookingAlert, "booking_alert", view); w != "" {
		warnings = append(warnings, w)
	}
	return warnings
}

// AppointmentConfirmed письмо клиенту о подтверждении
func (s *Service) AppointmentConfirmed(ctx context.Context, a *domain.Appointment) []string {
	return s.single(ctx, domain.NotificationAppointmentConfirmed, "appointment_confirmed", a.Email, s.appointmentView(a))
}

// AppointmentCancelled письмо клиенту об отмене
func (s *Service) AppointmentCancelled(ctx context.Context, a *domain.Appointment) []string {
	return s.single(ctx, domain.NotificationAppointmentCancelled, "appointment_cancelled", a.Email, s.appointmentView(a))
}

// AppointmentRescheduled письмо клиенту о переносе
func (s *Service) AppointmentRescheduled(ctx context.Context, a *domain.Appointment, previous *domain.Appointment) []string {
	view := s.appointmentView(a)
	if previous != nil {
		view.PreviousDate = previous.DateString()
		view.PreviousTime = previous.Time.String()
	}
	return s.single(ctx, domain.NotificationAppointmentRescheduled, "appointment_rescheduled", a.Email, view)
}

// ContactReceived оповещение владельца о сообщении из формы
func (s *Service) ContactReceived(ctx context.Context, m *domain.ContactMessage) []string {
	view := contactView{Message: m, BusinessName: s.businessName}
	if w := s.deliverToBusiness(ctx, domain.NotificationContactReceived, "contact_received", view); w != "" {
		return []string{w}
	}
	return nil
}

// Direct отправка произвольного письма
func (s *Service) Direct(ctx context.Context, email domain.Email) domain.NotificationResult {
	res := s.sender.Send(ctx, domain.NotificationDirect, email)
	s.record(domain.NotificationDirect, res.OK)
	return res
}

func (s *Service) single(ctx context.Context, kind domain.NotificationKind, tmpl, to string, view interface{}) []string {
	if w := s.deliver(ctx, kind, tmpl, to, view, warnClientEmail); w != "" {
		return []string{w}
	}
	return nil
}

func (s *Service) deliverToBusiness(ctx context.Context, kind domain.NotificationKind, tmpl string, view interface{}) string {
	if s.businessInbox == "" {
		s.logger.Warn("Notifications: %s skipped, business inbox is not configured", kind)
		return ""
	}
	return s.deliver(ctx, kind, tmpl, s.businessInbox, view, warnBusinessEmail)
}

func (s *Service) deliver(ctx context.Context, kind domain.NotificationKind, tmpl, to string, view interface{}, warning string) string {
	html, err := s.render(tmpl, view)
	if err != nil {
		s.logger.Error("Notifications: render %s failed: %v", tmpl, err)
		s.record(kind, false)
		return warning
	}

	res := s.sender.Send(ctx, kind, domain.Email{
		To:      to,
		Subject: subjects[tmpl],
		HTML:    html,
	})
	s.record(kind, res.OK)

	if !res.OK {
		s.logger.Warn("Notifications: %s to %s failed: %s", kind, to, res.Error)
		return warning
	}
	return ""
}

func (s *Service) render(name string, view interface{}) (string, error) {
	t, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown template %q", domain.ErrNotification, name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", view); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrNotification, err)
	}
	return buf.String(), nil
}

func (s *Service) record(kind domain.NotificationKind, ok bool) {
	if s.metrics != nil {
		s.metrics.RecordNotification(string(kind), ok)
	}
}

func (s *Service) appointmentView(a *domain.Appointment) appointmentView {
	return appointmentView{
		Appointment:  a,
		Date:         a.DateString(),
		Time:         a.Time.String(),
		BusinessName: s.businessName,
	}
}
