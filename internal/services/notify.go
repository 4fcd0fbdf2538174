package services

import "log"

// Notifier delivers one-time codes out of band. Delivery is best-effort:
// callers fire it in a goroutine and never act on the result.
type Notifier interface {
	SendEmailOTP(email, code string) error
	SendSMSOTP(phone, code string) error
}

// CompositeNotifier routes email codes to the mailer and phone codes to
// the SMS sender.
type CompositeNotifier struct {
	Email Notifier
	SMS   Notifier
}

func (n *CompositeNotifier) SendEmailOTP(email, code string) error {
	return n.Email.SendEmailOTP(email, code)
}

func (n *CompositeNotifier) SendSMSOTP(phone, code string) error {
	return n.SMS.SendSMSOTP(phone, code)
}

// LogNotifier logs codes instead of sending them. Used in development
// when Twilio or SMTP credentials are absent.
type LogNotifier struct{}

func (LogNotifier) SendEmailOTP(email, code string) error {
	log.Printf("📧 [dev] OTP for %s: %s", email, code)
	return nil
}

func (LogNotifier) SendSMSOTP(phone, code string) error {
	log.Printf("📱 [dev] OTP for %s: %s", phone, code)
	return nil
}

// notifyAsync runs fn in its own goroutine and swallows the error.
// Delivery failure must never abort an OTP-issuing transition.
func notifyAsync(what string, fn func() error) {
	go func() {
		if err := fn(); err != nil {
			log.Printf("❌ Failed to send %s: %v", what, err)
		}
	}()
}
