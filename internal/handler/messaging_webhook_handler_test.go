package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brightbeginnings/daycare-voice-service/internal/compose"
	"github.com/brightbeginnings/daycare-voice-service/internal/config"
	"github.com/brightbeginnings/daycare-voice-service/internal/escalate"
	"github.com/brightbeginnings/daycare-voice-service/internal/intent"
	"github.com/brightbeginnings/daycare-voice-service/internal/interactionlog"
	"github.com/brightbeginnings/daycare-voice-service/internal/language"
	"github.com/brightbeginnings/daycare-voice-service/internal/messaging"
)

func newTestMessagingHandler() *MessagingWebhookHandler {
	profile := &config.BusinessProfile{
		Name:  "Sunny Side Daycare",
		Hours: "Monday to Friday, 7 AM to 6 PM",
	}
	responder := messaging.NewResponder(
		language.NewDetector(),
		intent.NewClassifier(intent.DefaultRules()),
		compose.NewComposer(profile, nil),
		escalate.NewManager(nil, ""),
		interactionlog.New(nil, nil),
		nil,
	)
	return NewMessagingWebhookHandler(responder)
}

func postForm(t *testing.T, h http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleInboundRepliesWithTwiML(t *testing.T) {
	h := newTestMessagingHandler()

	rec := postForm(t, h.HandleInbound, "/whatsapp", url.Values{
		"Body":        {"what time do you open?"},
		"From":        {"whatsapp:+15557654321"},
		"ProfileName": {"Jordan"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	require.Contains(t, body, "<Message>")
	require.Contains(t, body, "Monday to Friday, 7 AM to 6 PM")
}

func TestSignatureMiddlewareDisabledPassesThrough(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	mw := TwilioSignatureMiddleware("token", "https://example.com", false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader("Body=hi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	mw(next).ServeHTTP(rec, req)

	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSignatureMiddlewareRejectsBadSignature(t *testing.T) {
	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not run on invalid signature")
	})

	mw := TwilioSignatureMiddleware("token", "https://example.com", true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader("Body=hi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Twilio-Signature", "not-a-valid-signature")
	mw(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}
