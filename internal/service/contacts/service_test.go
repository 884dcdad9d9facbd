package contacts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
	"github.com/m04kA/SMC-CoachingService/pkg/ptr"
)

type fakeNotifier struct {
	calls int
	warn  []string
}

func (n *fakeNotifier) ContactReceived(_ context.Context, _ *domain.ContactMessage) []string {
	n.calls++
	return n.warn
}

type fakeMetrics struct{ count int }

func (m *fakeMetrics) RecordContactMessage() { m.count++ }

var admin = domain.Actor{UserID: "admin-1", IsAdmin: true}

func newService(warn []string) (*Service, *fakeNotifier, *fakeMetrics) {
	n := &fakeNotifier{warn: warn}
	m := &fakeMetrics{}
	return NewService(memory.NewStore().Contacts(), n, m, logger.Nop()), n, m
}

func submit(t *testing.T, svc *Service, name string) *domain.ContactMessage {
	t.Helper()
	res, err := svc.Submit(context.Background(), SubmitRequest{FullName: name, Email: "bob@example.com", Message: "Hello"})
	require.NoError(t, err)
	return res.Message
}

func TestSubmit(t *testing.T) {
	svc, n, m := newService([]string{"business notification could not be sent"})

	res, err := svc.Submit(context.Background(), SubmitRequest{
		FullName: " Bob ",
		Email:    "bob@example.com",
		Phone:    ptr.Ptr(""),
		Message:  "I'd like a session",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob", res.Message.FullName)
	assert.Equal(t, domain.ContactStatusNew, res.Message.Status)
	assert.Nil(t, res.Message.Phone)
	assert.Equal(t, []string{"business notification could not be sent"}, res.Warnings)
	assert.Equal(t, 1, n.calls)
	assert.Equal(t, 1, m.count)
}

func TestSubmitValidation(t *testing.T) {
	svc, n, _ := newService(nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitRequest{Email: "bob@example.com", Message: "x"})
	assert.EqualError(t, err, "full name is required")

	_, err = svc.Submit(ctx, SubmitRequest{FullName: "Bob", Email: "bob", Message: "x"})
	assert.EqualError(t, err, "email is invalid")

	_, err = svc.Submit(ctx, SubmitRequest{FullName: "Bob", Email: "bob@example.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, n.calls)
}

func TestListNewestFirst(t *testing.T) {
	svc, _, _ := newService(nil)
	first := submit(t, svc, "First")
	second := submit(t, svc, "Second")

	list, err := svc.List(context.Background(), admin, nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	_, err = svc.List(context.Background(), domain.Actor{UserID: "u"}, nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatusIsMonotonic(t *testing.T) {
	svc, _, _ := newService(nil)
	ctx := context.Background()
	msg := submit(t, svc, "Bob")

	updated, err := svc.UpdateStatus(ctx, admin, msg.ID, domain.ContactStatusRead)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusRead, updated.Status)

	same, err := svc.UpdateStatus(ctx, admin, msg.ID, domain.ContactStatusRead)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusRead, same.Status)

	_, err = svc.UpdateStatus(ctx, admin, msg.ID, domain.ContactStatusNew)
	assert.ErrorIs(t, err, ErrStatusBackwards)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	archived, err := svc.UpdateStatus(ctx, admin, msg.ID, domain.ContactStatusArchived)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusArchived, archived.Status)

	list, err := svc.List(ctx, admin, ptr.Ptr(domain.ContactStatusArchived))
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.UpdateStatus(ctx, admin, "missing", domain.ContactStatusRead)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.UpdateStatus(ctx, admin, msg.ID, "spam")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
