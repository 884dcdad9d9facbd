package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
	"github.com/m04kA/SMC-CoachingService/pkg/ptr"
	"github.com/m04kA/SMC-CoachingService/pkg/txmanager"
)

type fakeNotifier struct {
	confirmed int
	cancelled int
	warn      []string
}

func (n *fakeNotifier) AppointmentConfirmed(_ context.Context, _ *domain.Appointment) []string {
	n.confirmed++
	return n.warn
}

func (n *fakeNotifier) AppointmentCancelled(_ context.Context, _ *domain.Appointment) []string {
	n.cancelled++
	return n.warn
}

type fakeMetrics struct {
	transitions []string
}

func (m *fakeMetrics) RecordTransition(status string) {
	m.transitions = append(m.transitions, status)
}

var (
	admin  = domain.Actor{UserID: "admin-1", IsAdmin: true}
	owner  = domain.Actor{UserID: "user-1"}
	others = domain.Actor{UserID: "user-2"}
)

type fixture struct {
	store    *memory.Store
	notifier *fakeNotifier
	metrics  *fakeMetrics
	svc      *Service
}

func newFixture(releaseSlot bool) *fixture {
	store := memory.NewStore()
	n := &fakeNotifier{}
	m := &fakeMetrics{}
	svc := NewService(store.Appointments(), store.Slots(), n, txmanager.NopManager{}, m, logger.Nop(), releaseSlot)
	return &fixture{store: store, notifier: n, metrics: m, svc: svc}
}

func (f *fixture) book(t *testing.T, status domain.AppointmentStatus) *domain.Appointment {
	t.Helper()
	ctx := context.Background()
	d, err := domain.ParseDate("2025-03-10")
	require.NoError(t, err)

	_, err = f.store.Slots().Create(ctx, &domain.AvailabilitySlot{Date: d, Time: "10:00", IsAvailable: false})
	require.NoError(t, err)

	a, err := f.store.Appointments().Create(ctx, &domain.Appointment{
		ClientID: ptr.Ptr(owner.UserID),
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Date:     d,
		Time:     "10:00",
		Status:   status,
	})
	require.NoError(t, err)
	return a
}

func TestConfirmOnlyFromPending(t *testing.T) {
	tests := []struct {
		from    domain.AppointmentStatus
		wantErr bool
	}{
		{domain.StatusPending, false},
		{domain.StatusConfirmed, true},
		{domain.StatusCancelled, true},
		{domain.StatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			f := newFixture(false)
			a := f.book(t, tt.from)

			res, err := f.svc.Confirm(context.Background(), admin, a.ID)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCannotConfirm)
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				stored, _ := f.store.Appointments().GetByID(context.Background(), a.ID)
				assert.Equal(t, tt.from, stored.Status)
				assert.Zero(t, f.notifier.confirmed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusConfirmed, res.Appointment.Status)
			assert.Equal(t, 1, f.notifier.confirmed)
			assert.Equal(t, []string{"confirmed"}, f.metrics.transitions)
		})
	}
}

func TestConfirmRequiresAdmin(t *testing.T) {
	f := newFixture(false)
	a := f.book(t, domain.StatusPending)

	_, err := f.svc.Confirm(context.Background(), owner, a.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCancelFromActiveStatuses(t *testing.T) {
	for _, from := range []domain.AppointmentStatus{domain.StatusPending, domain.StatusConfirmed} {
		t.Run(string(from), func(t *testing.T) {
			f := newFixture(false)
			a := f.book(t, from)

			res, err := f.svc.Cancel(context.Background(), owner, a.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, res.Appointment.Status)
			assert.Equal(t, 1, f.notifier.cancelled)
		})
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	f := newFixture(false)
	a := f.book(t, domain.StatusPending)
	ctx := context.Background()

	_, err := f.svc.Cancel(ctx, admin, a.ID)
	require.NoError(t, err)

	res, err := f.svc.Cancel(ctx, admin, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, res.Appointment.Status)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 1, f.notifier.cancelled)
	assert.Equal(t, []string{"cancelled"}, f.metrics.transitions)
}

func TestCancelCompletedIsRejected(t *testing.T) {
	f := newFixture(false)
	a := f.book(t, domain.StatusCompleted)

	_, err := f.svc.Cancel(context.Background(), admin, a.ID)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancelAccess(t *testing.T) {
	f := newFixture(false)
	a := f.book(t, domain.StatusPending)
	ctx := context.Background()

	_, err := f.svc.Cancel(ctx, others, a.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.Cancel(ctx, domain.Anonymous(), a.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.svc.Cancel(ctx, admin, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.notifier.cancelled)
}

func TestCancelLeavesSlotUnavailableByDefault(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	a := f.book(t, domain.StatusConfirmed)

	_, err := f.svc.Cancel(ctx, admin, a.ID)
	require.NoError(t, err)

	slot, err := f.store.Slots().FindSlot(ctx, a.Date, a.Time)
	require.NoError(t, err)
	assert.False(t, slot.IsAvailable)
}

func TestCancelReleasesSlotWhenEnabled(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()
	a := f.book(t, domain.StatusConfirmed)

	_, err := f.svc.Cancel(ctx, admin, a.ID)
	require.NoError(t, err)

	slot, err := f.store.Slots().FindSlot(ctx, a.Date, a.Time)
	require.NoError(t, err)
	assert.True(t, slot.IsAvailable)
}

func TestUpdateStatusDispatch(t *testing.T) {
	f := newFixture(false)
	a := f.book(t, domain.StatusPending)
	ctx := context.Background()

	_, err := f.svc.UpdateStatus(ctx, admin, a.ID, domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrUnsupportedStatus)

	_, err = f.svc.UpdateStatus(ctx, admin, a.ID, "archived")
	assert.ErrorIs(t, err, domain.ErrValidation)

	res, err := f.svc.UpdateStatus(ctx, admin, a.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, res.Appointment.Status)

	res, err = f.svc.UpdateStatus(ctx, admin, a.ID, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, res.Appointment.Status)

	_, err = f.svc.UpdateStatus(ctx, admin, a.ID, domain.StatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestGetAndList(t *testing.T) {
	f := newFixture(false)
	a := f.book(t, domain.StatusPending)
	ctx := context.Background()

	got, err := f.svc.Get(ctx, owner, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = f.svc.Get(ctx, others, a.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	mine, err := f.svc.ListMine(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := f.svc.ListMine(ctx, others)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	_, err = f.svc.ListAll(ctx, owner, nil)
	assert.ErrorIs(t, err, ErrAdminOnly)

	pending, err := f.svc.ListAll(ctx, admin, ptr.Ptr(domain.StatusPending))
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	confirmed, err := f.svc.ListAll(ctx, admin, ptr.Ptr(domain.StatusConfirmed))
	require.NoError(t, err)
	assert.Empty(t, confirmed)
}
