package app

import "matchmaker_backend/internal/email"

// MockEmailProvider is used when SMTP is not configured and in tests.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Message) error          { return nil }
func (m *MockEmailProvider) SendPremiumApproved(to, n string) error { return nil }
func (m *MockEmailProvider) Validate() error                        { return nil }
