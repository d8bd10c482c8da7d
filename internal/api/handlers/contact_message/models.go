package contact_message

import "github.com/sv-web/sve-backend/internal/domain"

// MessageRequest is the HTTP model of a contact-form submission.
type MessageRequest struct {
	Type    string  `json:"type"`
	To      string  `json:"to"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Message string  `json:"message"`
}

// ToContactMessage converts the HTTP model into the domain message.
func (r *MessageRequest) ToContactMessage() (domain.ContactMessage, error) {
	topic, err := domain.ParseTopic(r.Type)
	if err != nil {
		return domain.ContactMessage{}, err
	}
	return domain.ContactMessage{
		Type:    topic,
		To:      r.To,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}, nil
}
