package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/cancel_appointment"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/create_booking"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/create_slot"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/delete_slot"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/generate_slots"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/get_appointment"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/get_my_appointments"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/healthz"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/list_appointments"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/list_contact_messages"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/list_slots"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/reschedule_appointment"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/submit_contact"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/update_contact_status"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/service/appointments"
	"github.com/m04kA/SMC-CoachingService/internal/service/contacts"
	"github.com/m04kA/SMC-CoachingService/internal/service/slots"
	createBookingUC "github.com/m04kA/SMC-CoachingService/internal/usecase/create_booking"
	generateSlotsUC "github.com/m04kA/SMC-CoachingService/internal/usecase/generate_slots"
	rescheduleBookingUC "github.com/m04kA/SMC-CoachingService/internal/usecase/reschedule_booking"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Deps зависимости HTTP слоя
type Deps struct {
	CreateBooking     *createBookingUC.UseCase
	RescheduleBooking *rescheduleBookingUC.UseCase
	GenerateSlots     *generateSlotsUC.UseCase
	Appointments      *appointments.Service
	Slots             *slots.Service
	Contacts          *contacts.Service

	Auth *middleware.Auth
	// RateLimiter ограничивает публичные POST. nil отключает лимит
	RateLimiter *middleware.RateLimiter
	// Metrics nil отключает HTTP метрики
	Metrics       middleware.MetricsRecorder
	MetricsPath   string
	MetricsHandle http.Handler
	Pinger        healthz.Pinger

	Logger Logger
}

// NewRouter собирает маршруты /api/v1
func NewRouter(d Deps) *mux.Router {
	log := d.Logger

	createBooking := create_booking.NewHandler(d.CreateBooking, log)
	rescheduleAppointment := reschedule_appointment.NewHandler(d.RescheduleBooking, log)
	getMyAppointments := get_my_appointments.NewHandler(d.Appointments, log)
	getAppointment := get_appointment.NewHandler(d.Appointments, log)
	cancelAppointment := cancel_appointment.NewHandler(d.Appointments, log)
	updateAppointmentStatus := update_appointment_status.NewHandler(d.Appointments, log)
	listAppointments := list_appointments.NewHandler(d.Appointments, log)
	listSlots := list_slots.NewHandler(d.Slots, log)
	createSlot := create_slot.NewHandler(d.Slots, log)
	deleteSlot := delete_slot.NewHandler(d.Slots, log)
	generateSlots := generate_slots.NewHandler(d.GenerateSlots, log)
	submitContact := submit_contact.NewHandler(d.Contacts, log)
	listContactMessages := list_contact_messages.NewHandler(d.Contacts, log)
	updateContactStatus := update_contact_status.NewHandler(d.Contacts, log)
	health := healthz.NewHandler(d.Pinger, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)
	if d.MetricsHandle != nil && d.MetricsPath != "" {
		r.Handle(d.MetricsPath, d.MetricsHandle).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	limited := func(h http.HandlerFunc) http.Handler {
		if d.RateLimiter == nil {
			return h
		}
		return d.RateLimiter.Middleware(h)
	}

	// ============================================================
	// PUBLIC ROUTES (гость или клиент с токеном)
	// ============================================================
	public := api.PathPrefix("").Subrouter()
	public.Use(d.Auth.Optional)

	public.Handle("/bookings", limited(createBooking.Handle)).Methods(http.MethodPost)
	public.Handle("/contact", limited(submitContact.Handle)).Methods(http.MethodPost)
	public.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// CLIENT ROUTES (требуют Bearer токен)
	// ============================================================
	client := api.PathPrefix("/appointments").Subrouter()
	client.Use(d.Auth.Required)

	client.HandleFunc("/me", getMyAppointments.Handle).Methods(http.MethodGet)
	client.HandleFunc("/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	client.HandleFunc("/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	client.HandleFunc("/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)
	client.HandleFunc("/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (роль admin в user_roles)
	// ============================================================
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(d.Auth.Admin)

	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/contact-messages", listContactMessages.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/contact-messages/{messageId}/status", updateContactStatus.Handle).Methods(http.MethodPatch)

	return r
}
