package services

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/movex-app/movex-backend/internal/config"
)

// TwilioService sends SMS via Twilio.
type TwilioService struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioService creates a new Twilio service instance.
func NewTwilioService(cfg config.Config) (*TwilioService, error) {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFrom == "" {
		return nil, fmt.Errorf("missing Twilio credentials in environment variables")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	return &TwilioService{
		client: client,
		from:   cfg.TwilioFrom,
	}, nil
}

// SendSMSOTP delivers a one-time code to the given phone number.
func (t *TwilioService) SendSMSOTP(phone, code string) error {
	body := fmt.Sprintf("Your OTP is %s, please do not share it with anyone. Valid for 5 minutes.", code)

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(phone)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("❌ Failed to send SMS: %v", err)
		return err
	}

	log.Printf("✅ SMS sent! SID: %s", *resp.Sid)
	return nil
}

// SendEmailOTP is not supported over SMS.
func (t *TwilioService) SendEmailOTP(email, code string) error {
	return fmt.Errorf("twilio service cannot deliver email to %s", email)
}
