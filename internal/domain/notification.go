package domain

// NotificationKind тип письма
type NotificationKind string

const (
	NotificationBookingCreated         NotificationKind = "booking_created"
	NotificationBookingAlert           NotificationKind = "booking_alert"
	NotificationAppointmentConfirmed   NotificationKind = "appointment_confirmed"
	NotificationAppointmentCancelled   NotificationKind = "appointment_cancelled"
	NotificationAppointmentRescheduled NotificationKind = "appointment_rescheduled"
	NotificationContactReceived        NotificationKind = "contact_received"
	NotificationDirect                 NotificationKind = "direct"
)

// Email готовое к отправке письмо
type Email struct {
	To      string
	Subject string
	HTML    string
}

// NotificationResult результат отправки письма. Ошибка отправки не прерывает операцию
type NotificationResult struct {
	OK    bool
	Error string
}
