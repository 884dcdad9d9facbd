package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointment_Transitions(t *testing.T) {
	tests := []struct {
		status      AppointmentStatus
		active      bool
		confirmable bool
	}{
		{StatusPending, true, true},
		{StatusConfirmed, true, false},
		{StatusCancelled, false, false},
		{StatusCompleted, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.active, a.IsActive())
			assert.Equal(t, tt.active, a.CanBeCancelled())
			assert.Equal(t, tt.active, a.CanBeRescheduled())
			assert.Equal(t, tt.confirmable, a.CanBeConfirmed())
		})
	}
}

func TestActor_CanAccess(t *testing.T) {
	owner := "user-1"
	a := &Appointment{ClientID: &owner}

	assert.True(t, Actor{UserID: owner}.CanAccess(a))
	assert.True(t, Actor{UserID: "admin", IsAdmin: true}.CanAccess(a))
	assert.False(t, Actor{UserID: "user-2"}.CanAccess(a))
	assert.False(t, Anonymous().CanAccess(a))

	guest := &Appointment{}
	assert.False(t, Actor{UserID: owner}.CanAccess(guest))
	assert.False(t, Actor{UserID: owner}.CanAccess(nil))
}

func TestActor_ClientID(t *testing.T) {
	assert.Nil(t, Anonymous().ClientID())

	id := Actor{UserID: "user-1"}.ClientID()
	require.NotNil(t, id)
	assert.Equal(t, "user-1", *id)
}

func TestContactStatus_CanAdvanceTo(t *testing.T) {
	assert.True(t, ContactStatusNew.CanAdvanceTo(ContactStatusRead))
	assert.True(t, ContactStatusNew.CanAdvanceTo(ContactStatusArchived))
	assert.True(t, ContactStatusRead.CanAdvanceTo(ContactStatusRead))
	assert.False(t, ContactStatusArchived.CanAdvanceTo(ContactStatusNew))
	assert.False(t, ContactStatusRead.CanAdvanceTo(ContactStatus("spam")))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2025-03-10 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", d.Format(DateFormat))

	_, err = ParseDate("10.03.2025")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewValidationError("email %q is malformed", "x@"))

	assert.ErrorIs(t, err, ErrValidation)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, `email "x@" is malformed`, vErr.Message)
}
