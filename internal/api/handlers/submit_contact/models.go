package submit_contact

// SubmitContactRequest HTTP request model
type SubmitContactRequest struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Message  string  `json:"message"`
}
