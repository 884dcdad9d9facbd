package mailer

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrNoRecipient возвращается, когда у письма нет адресата
	ErrNoRecipient = errors.New("mailer client: recipient is required")

	// ErrSend возвращается при ошибке отправки через SMTP
	ErrSend = fmt.Errorf("%w: mailer client: send failed", domain.ErrNotification)
)
