package models

// ContactMessage is a stored contact-form submission. Pure inbox record,
// no status field.
type ContactMessage struct {
	BaseModel
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
