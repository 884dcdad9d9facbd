package domain

// Role роль пользователя из таблицы user_roles
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Actor тот, от чьего имени выполняется операция.
// Передаётся в сервисы явно, вместо глобального состояния сессии
type Actor struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// Anonymous гость без авторизации
func Anonymous() Actor {
	return Actor{}
}

// IsAuthenticated есть ли у актора идентификатор пользователя
func (a Actor) IsAuthenticated() bool {
	return a.UserID != ""
}

// ClientID идентификатор клиента для новой записи, nil для гостя
func (a Actor) ClientID() *string {
	if !a.IsAuthenticated() {
		return nil
	}
	id := a.UserID
	return &id
}

// CanAccess может ли актор работать с записью: владелец или администратор
func (a Actor) CanAccess(appointment *Appointment) bool {
	if appointment == nil {
		return false
	}
	return a.IsAdmin || appointment.IsOwnedBy(a.UserID)
}
