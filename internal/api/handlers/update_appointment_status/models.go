package update_appointment_status

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
