package email

// Provider sends notification email. Delivery is best-effort: callers
// fire it from a goroutine and only log failures.
type Provider interface {
	// Send delivers a single message.
	Send(msg *Message) error

	// SendPremiumApproved notifies a user that their biodata was
	// elevated to premium.
	SendPremiumApproved(to, name string) error

	// Validate checks the provider configuration.
	Validate() error
}
