package generate_slots

import "github.com/m04kA/SMC-CoachingService/internal/api/handlers"

// GenerateSlotsRequest тело POST /admin/slots/generate
type GenerateSlotsRequest struct {
	From        string `json:"from"`
	To          string `json:"to"`
	OpenTime    string `json:"openTime"`
	CloseTime   string `json:"closeTime"`
	StepMinutes int    `json:"stepMinutes,omitempty"`
	Weekdays    []int  `json:"weekdays,omitempty"` // 0 - воскресенье
}

type GenerateSlotsResponse struct {
	OK      bool                     `json:"ok"`
	Created []*handlers.SlotResponse `json:"created"`
	Skipped int                      `json:"skipped"`
}
