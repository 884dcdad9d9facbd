package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-gomail/gomail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
)

type fakeDialer struct {
	sent  []*gomail.Message
	err   error
	delay time.Duration
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
	d.sent = append(d.sent, m...)
	return d.err
}

func TestSend_OK(t *testing.T) {
	dialer := &fakeDialer{}
	c := NewClientWithDialer(dialer, "noreply@example.com", logger.Nop())

	res := c.Send(context.Background(), domain.NotificationBookingCreated, domain.Email{
		To:      "jane@example.com",
		Subject: "Booking received",
		HTML:    "<p>Hi</p>",
	})

	assert.True(t, res.OK)
	require.Len(t, dialer.sent, 1)
	assert.Equal(t, []string{"jane@example.com"}, dialer.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"noreply@example.com"}, dialer.sent[0].GetHeader("From"))
}

func TestSend_TransportError(t *testing.T) {
	c := NewClientWithDialer(&fakeDialer{err: errors.New("535 auth failed")}, "noreply@example.com", logger.Nop())

	res := c.Send(context.Background(), domain.NotificationContactReceived, domain.Email{To: "coach@example.com"})

	assert.False(t, res.OK)
	assert.Contains(t, res.Error, "535 auth failed")
}

func TestSend_NoRecipient(t *testing.T) {
	dialer := &fakeDialer{}
	c := NewClientWithDialer(dialer, "noreply@example.com", logger.Nop())

	res := c.Send(context.Background(), domain.NotificationDirect, domain.Email{})

	assert.False(t, res.OK)
	assert.Empty(t, dialer.sent)
}

func TestSend_ContextDeadline(t *testing.T) {
	c := NewClientWithDialer(&fakeDialer{delay: 200 * time.Millisecond}, "noreply@example.com", logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res := c.Send(ctx, domain.NotificationDirect, domain.Email{To: "jane@example.com"})
	assert.False(t, res.OK)
}

func TestNopClient(t *testing.T) {
	res := NewNopClient(logger.Nop()).Send(context.Background(), domain.NotificationDirect, domain.Email{To: "x@example.com"})
	assert.True(t, res.OK)
}
