package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

const (
	msgInternalError = "something went wrong, please try again"
	msgNotFound      = "not found"
	msgForbidden     = "access denied"
	msgUnauthorized  = "authentication required"
	msgConflict      = "conflict"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку в формате {ok: false, error}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{OK: false, Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError детали ошибки клиенту не отдаются
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// StatusFor HTTP статус для ошибки из общей таксономии
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError ошибка вызвана запросом, а не сбоем сервиса
func IsClientError(err error) bool {
	return StatusFor(err) < http.StatusInternalServerError
}

// RespondServiceError сопоставляет ошибку сервиса с HTTP ответом.
// Сообщения валидации и конфликтов отдаются как есть, остальные заменяются общими
func RespondServiceError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	switch status {
	case http.StatusBadRequest:
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			RespondBadRequest(w, ve.Message)
			return
		}
		RespondBadRequest(w, err.Error())
	case http.StatusUnauthorized:
		RespondUnauthorized(w, msgUnauthorized)
	case http.StatusForbidden:
		RespondForbidden(w, msgForbidden)
	case http.StatusNotFound:
		RespondNotFound(w, msgNotFound)
	case http.StatusConflict:
		RespondConflict(w, conflictMessage(err))
	default:
		RespondInternalError(w)
	}
}

// conflictMessage текст после префикса таксономии: "conflict: slot already booked" -> "slot already booked"
func conflictMessage(err error) string {
	for _, sentinel := range []error{domain.ErrConflict, domain.ErrInvalidTransition} {
		prefix := sentinel.Error() + ": "
		if msg := err.Error(); len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msgConflict
}
