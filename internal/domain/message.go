package domain

// ContactMessage is a contact-form submission that gets relayed by mail
// to the club department selected by Type.
type ContactMessage struct {
	Type    Topic
	To      string
	Name    string
	Email   string
	Phone   *string
	Message string
}
