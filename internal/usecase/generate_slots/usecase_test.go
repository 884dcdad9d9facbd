package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
	"github.com/m04kA/SMC-CoachingService/pkg/txmanager"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

var admin = domain.Actor{UserID: "admin-1", IsAdmin: true}

func newUseCase(now time.Time) (*memory.Store, *UseCase) {
	store := memory.NewStore()
	uc := NewUseCase(store.Slots(), txmanager.NopManager{}, logger.Nop())
	uc.timeProvider = fixedTime(now)
	return store, uc
}

func listDay(t *testing.T, store *memory.Store, date string) []*domain.AvailabilitySlot {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	slots, err := store.Slots().List(context.Background(), domain.SlotFilter{Date: &d})
	require.NoError(t, err)
	return slots
}

func TestGenerateSlots(t *testing.T) {
	store, uc := newUseCase(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	// 2025-03-10 понедельник, 2025-03-11 вторник
	resp, err := uc.Execute(context.Background(), &Request{
		Actor:       admin,
		From:        "2025-03-10",
		To:          "2025-03-12",
		OpenTime:    "09:00",
		CloseTime:   "12:30",
		StepMinutes: 60,
		Weekdays:    []time.Weekday{time.Monday, time.Tuesday},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Created, 6)
	assert.Equal(t, 0, resp.Skipped)

	monday := listDay(t, store, "2025-03-10")
	require.Len(t, monday, 3)
	assert.Equal(t, types.TimeString("09:00"), monday[0].Time)
	assert.Equal(t, types.TimeString("11:00"), monday[2].Time)
	assert.True(t, monday[0].IsAvailable)
	require.NotNil(t, monday[0].CreatedBy)
	assert.Equal(t, "admin-1", *monday[0].CreatedBy)

	assert.Empty(t, listDay(t, store, "2025-03-12"))
}

func TestGenerateSlotsSkipsExisting(t *testing.T) {
	store, uc := newUseCase(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	d, _ := domain.ParseDate("2025-03-10")
	_, err := store.Slots().Create(ctx, &domain.AvailabilitySlot{Date: d, Time: "10:00", IsAvailable: false})
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, &Request{
		Actor:     admin,
		From:      "2025-03-10",
		To:        "2025-03-10",
		OpenTime:  "09:00",
		CloseTime: "11:00",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Created, 1)
	assert.Equal(t, 1, resp.Skipped)

	slots := listDay(t, store, "2025-03-10")
	require.Len(t, slots, 2)
	assert.False(t, slots[1].IsAvailable)
}

func TestGenerateSlotsToday(t *testing.T) {
	store, uc := newUseCase(time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		Actor:       admin,
		From:        "2025-03-09",
		To:          "2025-03-10",
		OpenTime:    "09:00",
		CloseTime:   "13:00",
		StepMinutes: 60,
	})
	require.NoError(t, err)
	require.Len(t, resp.Created, 2)
	assert.Equal(t, types.TimeString("11:00"), resp.Created[0].Time)
	assert.Equal(t, types.TimeString("12:00"), resp.Created[1].Time)
	assert.Empty(t, listDay(t, store, "2025-03-09"))
}

func TestGenerateSlotsRejects(t *testing.T) {
	_, uc := newUseCase(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{
		Actor: domain.Actor{UserID: "user-1"}, From: "2025-03-10", To: "2025-03-10", OpenTime: "09:00", CloseTime: "10:00",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	tests := []struct {
		name string
		req  Request
		msg  string
	}{
		{
			name: "reversed range",
			req:  Request{From: "2025-03-11", To: "2025-03-10", OpenTime: "09:00", CloseTime: "10:00"},
			msg:  "to must not be before from",
		},
		{
			name: "too long",
			req:  Request{From: "2025-03-01", To: "2025-06-01", OpenTime: "09:00", CloseTime: "10:00"},
			msg:  "range must be at most 62 days",
		},
		{
			name: "closed before open",
			req:  Request{From: "2025-03-10", To: "2025-03-10", OpenTime: "18:00", CloseTime: "09:00"},
			msg:  "openTime must be before closeTime",
		},
		{
			name: "short step",
			req:  Request{From: "2025-03-10", To: "2025-03-10", OpenTime: "09:00", CloseTime: "10:00", StepMinutes: 5},
			msg:  "stepMinutes must be at least 15",
		},
		{
			name: "bad weekday",
			req:  Request{From: "2025-03-10", To: "2025-03-10", OpenTime: "09:00", CloseTime: "10:00", Weekdays: []time.Weekday{7}},
			msg:  "weekdays must be between 0 (Sunday) and 6 (Saturday)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.Actor = admin
			_, err := uc.Execute(ctx, &req)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestGenerateTimeSlotsLateClose(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	got, err := generateTimeSlots("22:00", "23:59", 60, day, day.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"22:00"}, got)
}
