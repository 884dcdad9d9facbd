package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
	"github.com/m04kA/SMC-CoachingService/pkg/ptr"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

type lockFailingSlots struct {
	*memory.SlotRepository
	locked int
	err    error
}

func (s *lockFailingSlots) LockSlot(_ context.Context, _ time.Time, _ types.TimeString) error {
	s.locked++
	return s.err
}

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestReserveCreatesUnavailableSlot(t *testing.T) {
	store := memory.NewStore()
	slots := &lockFailingSlots{SlotRepository: store.Slots()}
	r := NewReserver(slots, store.Appointments(), logger.Nop())

	require.NoError(t, r.Reserve(context.Background(), day, "10:00", ptr.Ptr("owner"), nil))
	assert.Equal(t, 1, slots.locked)

	slot, err := store.Slots().FindSlot(context.Background(), day, "10:00")
	require.NoError(t, err)
	assert.False(t, slot.IsAvailable)
	assert.Equal(t, "owner", *slot.CreatedBy)
}

func TestReserveExcludesOwnAppointment(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	r := NewReserver(store.Slots(), store.Appointments(), logger.Nop())

	a, err := store.Appointments().Create(ctx, &domain.Appointment{FullName: "A", Email: "a@example.com", Date: day, Time: "10:00"})
	require.NoError(t, err)

	err = r.Reserve(ctx, day, "10:00", nil, nil)
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.NoError(t, r.Reserve(ctx, day, "10:00", nil, &a.ID))
}

func TestReserveLockFailure(t *testing.T) {
	store := memory.NewStore()
	slots := &lockFailingSlots{SlotRepository: store.Slots(), err: errors.New("lock timeout")}
	r := NewReserver(slots, store.Appointments(), logger.Nop())

	err := r.Reserve(context.Background(), day, "10:00", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, domain.ErrStorage)

	list, _ := store.Slots().List(context.Background(), domain.SlotFilter{})
	assert.Empty(t, list)
}
