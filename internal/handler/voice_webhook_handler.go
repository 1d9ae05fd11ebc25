package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/brightbeginnings/daycare-voice-service/internal/callflow"
	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
)

// VoiceWebhookHandler translates telephony webhook events into call flow
// transitions and writes the TwiML they produce.
type VoiceWebhookHandler struct {
	machine *callflow.Machine
}

// NewVoiceWebhookHandler creates a new voice webhook handler.
func NewVoiceWebhookHandler(machine *callflow.Machine) *VoiceWebhookHandler {
	return &VoiceWebhookHandler{machine: machine}
}

// HandleIncoming answers a new inbound call.
func (h *VoiceWebhookHandler) HandleIncoming(w http.ResponseWriter, r *http.Request) {
	doc, err := h.machine.Greeting(r.Context(), formValue(r, "CallSid"))
	h.respond(w, doc, err)
}

// HandleSpeech processes the caller's first utterance.
func (h *VoiceWebhookHandler) HandleSpeech(w http.ResponseWriter, r *http.Request) {
	doc, err := h.machine.HandleSpeech(r.Context(),
		formValue(r, "CallSid"),
		formValue(r, "From"),
		formValue(r, "SpeechResult"))
	h.respond(w, doc, err)
}

// HandleFinal processes the optional follow-up question.
func (h *VoiceWebhookHandler) HandleFinal(w http.ResponseWriter, r *http.Request) {
	doc, err := h.machine.FollowUp(r.Context(),
		formValue(r, "CallSid"),
		formValue(r, "From"),
		formValue(r, "SpeechResult"))
	h.respond(w, doc, err)
}

// HandleVoicemail invites the caller to leave a recorded message.
func (h *VoiceWebhookHandler) HandleVoicemail(w http.ResponseWriter, r *http.Request) {
	doc, err := h.machine.Voicemail(r.Context(), formValue(r, "CallSid"))
	h.respond(w, doc, err)
}

// HandleVoicemailTranscribed receives the async transcription callback.
func (h *VoiceWebhookHandler) HandleVoicemailTranscribed(w http.ResponseWriter, r *http.Request) {
	h.machine.VoicemailTranscribed(r.Context(),
		formValue(r, "CallSid"),
		formValue(r, "From"),
		formValue(r, "TranscriptionText"))
	w.WriteHeader(http.StatusOK)
}

// HandleTransferComplete receives the dial outcome after an owner transfer.
func (h *VoiceWebhookHandler) HandleTransferComplete(w http.ResponseWriter, r *http.Request) {
	doc, err := h.machine.TransferResult(r.Context(),
		formValue(r, "CallSid"),
		formValue(r, "DialCallStatus"))
	h.respond(w, doc, err)
}

func (h *VoiceWebhookHandler) respond(w http.ResponseWriter, doc string, err error) {
	if err != nil {
		logger.Base().Error("failed to render call response", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml")
	if _, err := w.Write([]byte(doc)); err != nil {
		logger.Base().Error("failed to write call response", zap.Error(err))
	}
}

func formValue(r *http.Request, key string) string {
	return r.FormValue(key)
}
