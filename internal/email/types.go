package email

// Message is an outbound email.
type Message struct {
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// SMTPConfig holds SMTP connection settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
