package handler

import (
	"net/http"

	"github.com/twilio/twilio-go/twiml"
	"go.uber.org/zap"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
	"github.com/brightbeginnings/daycare-voice-service/internal/messaging"
	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
)

// MessagingWebhookHandler answers inbound WhatsApp messages.
type MessagingWebhookHandler struct {
	responder *messaging.Responder
}

// NewMessagingWebhookHandler creates a new messaging webhook handler.
func NewMessagingWebhookHandler(responder *messaging.Responder) *MessagingWebhookHandler {
	return &MessagingWebhookHandler{responder: responder}
}

// HandleInbound processes one inbound message and replies in the webhook
// response body.
func (h *MessagingWebhookHandler) HandleInbound(w http.ResponseWriter, r *http.Request) {
	turn := domain.Turn{
		Text:       formValue(r, "Body"),
		Channel:    domain.ChannelWhatsApp,
		CallerID:   formValue(r, "From"),
		CallerName: formValue(r, "ProfileName"),
	}

	reply := h.responder.Reply(r.Context(), turn)

	doc, err := twiml.Messages([]twiml.Element{
		&twiml.MessagingMessage{Body: reply},
	})
	if err != nil {
		logger.Base().Error("failed to render message response", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	if _, err := w.Write([]byte(doc)); err != nil {
		logger.Base().Error("failed to write message response", zap.Error(err))
	}
}
