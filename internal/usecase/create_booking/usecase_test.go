package create_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CoachingService/internal/service/notifications"
	"github.com/m04kA/SMC-CoachingService/internal/usecase/reservation"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
	"github.com/m04kA/SMC-CoachingService/pkg/ptr"
	"github.com/m04kA/SMC-CoachingService/pkg/txmanager"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

type stubSender struct {
	ok   bool
	sent int
}

func (s *stubSender) Send(_ context.Context, _ domain.NotificationKind, _ domain.Email) domain.NotificationResult {
	s.sent++
	if !s.ok {
		return domain.NotificationResult{OK: false, Error: "smtp down"}
	}
	return domain.NotificationResult{OK: true}
}

type countingMetrics struct {
	results []string
}

func (m *countingMetrics) RecordBooking(result string) {
	m.results = append(m.results, result)
}

type fixture struct {
	store   *memory.Store
	sender  *stubSender
	metrics *countingMetrics
	uc      *UseCase
}

func newFixture(senderOK bool) *fixture {
	store := memory.NewStore()
	sender := &stubSender{ok: senderOK}
	m := &countingMetrics{}
	log := logger.Nop()

	uc := NewUseCase(
		store.Appointments(),
		reservation.NewReserver(store.Slots(), store.Appointments(), log),
		notifications.NewService(sender, "owner@example.com", "Coaching", nil, log),
		txmanager.NopManager{},
		m,
		log,
	)
	return &fixture{store: store, sender: sender, metrics: m, uc: uc}
}

func janeRequest() *Request {
	return &Request{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Date:     "2025-03-10",
		Time:     "10:00",
	}
}

func (f *fixture) slotAt(t *testing.T, date, clock string) *domain.AvailabilitySlot {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	slot, err := f.store.Slots().FindSlot(context.Background(), d, types.TimeString(clock))
	require.NoError(t, err)
	return slot
}

func TestCreateBookingCreatesPendingAppointmentAndReservesSlot(t *testing.T) {
	f := newFixture(true)

	resp, err := f.uc.Execute(context.Background(), janeRequest())
	require.NoError(t, err)

	a := resp.Appointment
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, domain.StatusPending, a.Status)
	assert.Equal(t, "2025-03-10", a.DateString())
	assert.Equal(t, types.TimeString("10:00"), a.Time)
	assert.Equal(t, domain.DefaultSessionType, a.SessionType)
	assert.Nil(t, a.ClientID)
	assert.Empty(t, resp.Warnings)

	slot := f.slotAt(t, "2025-03-10", "10:00")
	assert.False(t, slot.IsAvailable)

	assert.Equal(t, 2, f.sender.sent)
	assert.Equal(t, []string{resultCreated}, f.metrics.results)
}

func TestCreateBookingMarksExistingSlotUnavailable(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	d, _ := domain.ParseDate("2025-03-10")
	existing, err := f.store.Slots().Create(ctx, &domain.AvailabilitySlot{Date: d, Time: "10:00", IsAvailable: true})
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, janeRequest())
	require.NoError(t, err)

	slot, err := f.store.Slots().GetByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.False(t, slot.IsAvailable)

	slots, err := f.store.Slots().List(ctx, domain.SlotFilter{})
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestCreateBookingAcceptsUnavailableSlotWithoutActiveAppointment(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	d, _ := domain.ParseDate("2025-03-10")
	_, err := f.store.Slots().Create(ctx, &domain.AvailabilitySlot{Date: d, Time: "10:00", IsAvailable: false})
	require.NoError(t, err)

	resp, err := f.uc.Execute(ctx, janeRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Appointment.Status)
}

func TestCreateBookingConflictWritesNothing(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, janeRequest())
	require.NoError(t, err)

	slotsBefore, _ := f.store.Slots().List(ctx, domain.SlotFilter{})
	apptsBefore, _ := f.store.Appointments().ListAll(ctx, nil)

	second := janeRequest()
	second.FullName = "John Roe"
	second.Email = "john@example.com"
	_, err = f.uc.Execute(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.ErrorIs(t, err, reservation.ErrSlotAlreadyBooked)

	slotsAfter, _ := f.store.Slots().List(ctx, domain.SlotFilter{})
	apptsAfter, _ := f.store.Appointments().ListAll(ctx, nil)
	assert.Equal(t, slotsBefore, slotsAfter)
	assert.Len(t, apptsAfter, len(apptsBefore))
	assert.Equal(t, []string{resultCreated, resultConflict}, f.metrics.results)
}

func TestCreateBookingAfterCancelReusesSlot(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	first, err := f.uc.Execute(ctx, janeRequest())
	require.NoError(t, err)

	_, err = f.store.Appointments().Update(ctx, first.Appointment.ID, domain.AppointmentUpdate{Status: ptr.Ptr(domain.StatusCancelled)})
	require.NoError(t, err)

	second, err := f.uc.Execute(ctx, janeRequest())
	require.NoError(t, err)
	assert.NotEqual(t, first.Appointment.ID, second.Appointment.ID)
}

func TestCreateBookingNotificationFailureIsWarning(t *testing.T) {
	f := newFixture(false)

	resp, err := f.uc.Execute(context.Background(), janeRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, resp.Appointment.Status)
	assert.NotEmpty(t, resp.Warnings)
	assert.False(t, f.slotAt(t, "2025-03-10", "10:00").IsAvailable)

	stored, err := f.store.Appointments().GetByID(context.Background(), resp.Appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestCreateBookingStoresClientForAuthenticatedActor(t *testing.T) {
	f := newFixture(true)
	req := janeRequest()
	req.Actor = domain.Actor{UserID: "user-1", Email: "jane@example.com"}
	req.Phone = ptr.Ptr("  ")
	req.Notes = ptr.Ptr(" first session ")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.Appointment.ClientID)
	assert.Equal(t, "user-1", *resp.Appointment.ClientID)
	assert.Nil(t, resp.Appointment.Phone)
	require.NotNil(t, resp.Appointment.Notes)
	assert.Equal(t, "first session", *resp.Appointment.Notes)

	slot := f.slotAt(t, "2025-03-10", "10:00")
	require.NotNil(t, slot.CreatedBy)
	assert.Equal(t, "user-1", *slot.CreatedBy)
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
		msg    string
	}{
		{"missing name", func(r *Request) { r.FullName = " " }, "full name is required"},
		{"missing email", func(r *Request) { r.Email = "" }, "email is required"},
		{"bad email", func(r *Request) { r.Email = "not-an-email" }, "email is invalid"},
		{"missing date", func(r *Request) { r.Date = "" }, "date is required"},
		{"bad date", func(r *Request) { r.Date = "10/03/2025" }, "date must be in YYYY-MM-DD format"},
		{"missing time", func(r *Request) { r.Time = "" }, "time is required"},
		{"bad time", func(r *Request) { r.Time = "25:99" }, "time must be in HH:MM format"},
		{"time with seconds", func(r *Request) { r.Time = "10:00:59" }, "time must be in HH:MM format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(true)
			req := janeRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.EqualError(t, err, tt.msg)

			appts, _ := f.store.Appointments().ListAll(context.Background(), nil)
			assert.Empty(t, appts)
			assert.Zero(t, f.sender.sent)
			assert.Equal(t, []string{resultInvalid}, f.metrics.results)
		})
	}
}
