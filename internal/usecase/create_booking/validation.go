package create_booking

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

var validate = validator.New()

// validatedRequest нормализованные данные запроса
type validatedRequest struct {
	fullName    string
	email       string
	phone       *string
	date        time.Time
	time        types.TimeString
	sessionType string
	notes       *string
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (*validatedRequest, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, domain.NewValidationError("full name is required")
	}
	if len(fullName) > domain.MaxFullNameLength {
		return nil, domain.NewValidationError("full name must be at most %d characters", domain.MaxFullNameLength)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, domain.NewValidationError("email is invalid")
	}

	if strings.TrimSpace(req.Date) == "" {
		return nil, domain.NewValidationError("date is required")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Time) == "" {
		return nil, domain.NewValidationError("time is required")
	}
	startTime, err := types.NewTimeStringFromString(strings.TrimSpace(req.Time))
	if err != nil {
		return nil, domain.NewValidationError("time must be in HH:MM format")
	}

	sessionType := strings.TrimSpace(req.SessionType)
	if sessionType == "" {
		sessionType = domain.DefaultSessionType
	}
	if len(sessionType) > domain.MaxSessionTypeLength {
		return nil, domain.NewValidationError("session type must be at most %d characters", domain.MaxSessionTypeLength)
	}

	phone := trimOptional(req.Phone)
	if phone != nil && len(*phone) > domain.MaxPhoneLength {
		return nil, domain.NewValidationError("phone must be at most %d characters", domain.MaxPhoneLength)
	}

	notes := trimOptional(req.Notes)
	if notes != nil && len(*notes) > domain.MaxNotesLength {
		return nil, domain.NewValidationError("notes must be at most %d characters", domain.MaxNotesLength)
	}

	return &validatedRequest{
		fullName:    fullName,
		email:       email,
		phone:       phone,
		date:        date,
		time:        startTime,
		sessionType: sessionType,
		notes:       notes,
	}, nil
}

// trimOptional обрезает пробелы, пустая строка превращается в nil
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
