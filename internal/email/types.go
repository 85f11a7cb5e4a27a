package email

// Message is a single outgoing email.
type Message struct {
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// Provider delivers messages. Signup notifications are best effort: callers
// log failures and move on.
type Provider interface {
	Send(msg *Message) error
}
