package domain

import (
	"strings"
	"time"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxFullNameLength    = 200
	MaxSessionTypeLength = 100
	MaxNotesLength       = 2000
	MaxMessageLength     = 5000
	MaxPhoneLength       = 32
)

// DefaultSessionType тип сессии, если клиент его не указал
const DefaultSessionType = "consultation"

// ActiveStatuses статусы, при которых запись занимает слот
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, NewValidationError("date must be in YYYY-MM-DD format")
	}
	return d, nil
}
