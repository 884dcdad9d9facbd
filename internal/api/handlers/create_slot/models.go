package create_slot

// CreateSlotRequest HTTP request model. isAvailable по умолчанию true
type CreateSlotRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}
