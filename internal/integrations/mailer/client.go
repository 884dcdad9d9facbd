package mailer

import (
	"context"
	"fmt"

	"github.com/go-gomail/gomail"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// Dialer транспорт SMTP (реализуется *gomail.Dialer)
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client отправляет готовые письма через SMTP релей
type Client struct {
	dialer Dialer
	from   string
	log    Logger
}

// NewClient создает SMTP клиента
func NewClient(host string, port int, username, password, from string, log Logger) *Client {
	return NewClientWithDialer(gomail.NewDialer(host, port, username, password), from, log)
}

// NewClientWithDialer создает клиента с произвольным транспортом
func NewClientWithDialer(dialer Dialer, from string, log Logger) *Client {
	return &Client{
		dialer: dialer,
		from:   from,
		log:    log,
	}
}

// Send отправляет письмо. Ошибка не пробрасывается, а возвращается в результате
func (c *Client) Send(ctx context.Context, kind domain.NotificationKind, email domain.Email) domain.NotificationResult {
	if email.To == "" {
		c.log.Warn("Mailer: %s skipped: %v", kind, ErrNoRecipient)
		return domain.NotificationResult{OK: false, Error: ErrNoRecipient.Error()}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTML)

	// gomail не принимает context, поэтому ожидание ограничиваем снаружи
	done := make(chan error, 1)
	go func() {
		done <- c.dialer.DialAndSend(m)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		err = fmt.Errorf("%w: %s to %s: %v", ErrSend, kind, email.To, err)
		c.log.Error("Mailer: %v", err)
		return domain.NotificationResult{OK: false, Error: err.Error()}
	}

	c.log.Info("Mailer: %s sent to %s", kind, email.To)
	return domain.NotificationResult{OK: true}
}

// NopClient используется при выключенном SMTP: только пишет в лог
type NopClient struct {
	log Logger
}

func NewNopClient(log Logger) *NopClient {
	return &NopClient{log: log}
}

func (c *NopClient) Send(ctx context.Context, kind domain.NotificationKind, email domain.Email) domain.NotificationResult {
	c.log.Info("Mailer: smtp disabled, %s to %s not sent (subject=%q)", kind, email.To, email.Subject)
	return domain.NotificationResult{OK: true}
}
