package domain

import "time"

// ContactStatus статус обращения через форму обратной связи
type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusArchived ContactStatus = "archived"
)

var contactStatusRank = map[ContactStatus]int{
	ContactStatusNew:      0,
	ContactStatusRead:     1,
	ContactStatusArchived: 2,
}

// IsValid проверяет, что статус входит в допустимый набор
func (s ContactStatus) IsValid() bool {
	_, ok := contactStatusRank[s]
	return ok
}

// CanAdvanceTo статус меняется только вперёд: new -> read -> archived
func (s ContactStatus) CanAdvanceTo(next ContactStatus) bool {
	from, ok := contactStatusRank[s]
	if !ok {
		return false
	}
	to, ok := contactStatusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

// ContactMessage сообщение из формы обратной связи
type ContactMessage struct {
	ID        string
	FullName  string
	Email     string
	Phone     *string
	Message   string
	Status    ContactStatus
	CreatedAt time.Time
}
