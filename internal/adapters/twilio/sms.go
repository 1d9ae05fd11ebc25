package twilio

import (
	"fmt"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
)

// SMSService sends the out-of-band follow-up text messages after a voice
// turn. If credentials or the sender number are missing the service is
// disabled and every send becomes a logged no-op.
type SMSService struct {
	client     *twilio.RestClient
	fromNumber string
	enabled    bool
}

// NewSMSService creates a new SMS sender.
func NewSMSService(accountSID, authToken, fromNumber string) *SMSService {
	if accountSID == "" || authToken == "" || fromNumber == "" {
		logger.Base().Warn("Twilio SMS credentials not provided, outbound SMS disabled")
		return &SMSService{enabled: false}
	}

	return &SMSService{
		client:     twilio.NewRestClientWithParams(twilio.ClientParams{Username: accountSID, Password: authToken}),
		fromNumber: fromNumber,
		enabled:    true,
	}
}

// Send delivers one SMS to the given number.
func (s *SMSService) Send(to, body string) error {
	if !s.enabled {
		logger.Base().Debug("sms service disabled, dropping message", zap.String("to", to))
		return nil
	}

	params := &api.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromNumber)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// IsEnabled returns whether the service is enabled.
func (s *SMSService) IsEnabled() bool {
	return s.enabled
}
