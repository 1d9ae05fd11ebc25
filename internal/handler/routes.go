package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	openaiadapter "github.com/brightbeginnings/daycare-voice-service/internal/adapters/openai"
	twilioadapter "github.com/brightbeginnings/daycare-voice-service/internal/adapters/twilio"
	"github.com/brightbeginnings/daycare-voice-service/internal/callflow"
	"github.com/brightbeginnings/daycare-voice-service/internal/compose"
	"github.com/brightbeginnings/daycare-voice-service/internal/config"
	"github.com/brightbeginnings/daycare-voice-service/internal/escalate"
	"github.com/brightbeginnings/daycare-voice-service/internal/intent"
	"github.com/brightbeginnings/daycare-voice-service/internal/interactionlog"
	"github.com/brightbeginnings/daycare-voice-service/internal/language"
	"github.com/brightbeginnings/daycare-voice-service/internal/messaging"
	"github.com/brightbeginnings/daycare-voice-service/internal/notify"
	"github.com/brightbeginnings/daycare-voice-service/internal/repository"
	"github.com/brightbeginnings/daycare-voice-service/internal/session"
	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
	redispkg "github.com/brightbeginnings/daycare-voice-service/pkg/redis"
)

// HandlerManager owns all handlers and the services behind them.
type HandlerManager struct {
	config   *config.Config
	voice    *VoiceWebhookHandler
	message  *MessagingWebhookHandler
	repos    *repository.Manager
	redisSvc *redispkg.RedisService
}

// NewHandlerManager creates and wires all handlers and services. Optional
// backends (sqlite, Sheets, Redis, SMTP, OpenAI, SMS) degrade to no-ops when
// unconfigured or unreachable; the webhook surface always comes up.
func NewHandlerManager(cfg *config.Config) (*HandlerManager, error) {
	profile := config.LoadBusinessProfile(cfg.DaycareFile)
	logger.Base().Info("business profile loaded", zap.String("daycare", profile.Name))

	// Local sqlite store: mirror log, leads, seeded profiles.
	repos, err := repository.Open(cfg.SQLitePath)
	if err != nil {
		logger.Base().Warn("sqlite store unavailable, mirror log and leads disabled",
			zap.String("path", cfg.SQLitePath),
			zap.Error(err))
		repos = nil
	}

	// Google Sheets is the primary interaction log sink.
	var primary interactionlog.Sink
	if cfg.SheetID != "" {
		sheetsSink, err := interactionlog.NewSheetsSink(context.Background(), cfg.GoogleCredentialsFile, cfg.SheetID)
		if err != nil {
			logger.Base().Warn("sheets sink unavailable", zap.Error(err))
		} else {
			primary = sheetsSink
			if err := sheetsSink.EnsureAnalyticsSheet(context.Background()); err != nil {
				logger.Base().Warn("failed to ensure analytics sheet", zap.Error(err))
			}
		}
	}

	var mirror interactionlog.Sink
	var leads callflow.LeadRecorder
	if repos != nil {
		mirror = repos.Interaction()
		leads = repos.Lead()
	}
	ilog := interactionlog.New(primary, mirror)

	// Redis-backed call sessions when configured and reachable, in-memory
	// otherwise.
	var redisSvc *redispkg.RedisService
	var sessions session.Store
	if cfg.RedisHost != "" {
		redisSvc, err = redispkg.NewRedisService(&redispkg.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
		})
		if err != nil {
			logger.Base().Warn("redis unavailable, using in-memory call sessions", zap.Error(err))
		} else {
			sessions = session.NewRedisStore(redisSvc)
		}
	}
	if sessions == nil {
		sessions = session.NewMemoryStore()
	}

	var completer compose.Completer
	if cfg.OpenAIAPIKey != "" {
		completer = openaiadapter.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	} else {
		logger.Base().Warn("OpenAI API key not provided, AI fallback replies disabled")
	}
	composer := compose.NewComposer(profile, completer)

	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.OwnerEmail)
	sms := twilioadapter.NewSMSService(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.DefaultFromNumber)

	ownerNumber := cfg.OwnerFallbackNumber
	if ownerNumber == "" {
		ownerNumber = profile.OwnerNumber
	}
	escalator := escalate.NewManager(mailer, ownerNumber)

	detector := language.NewDetector()

	machine := callflow.NewMachine(
		profile,
		detector,
		intent.NewClassifier(intent.CallFlowRules()),
		composer,
		escalator,
		ilog,
		mailer,
		sms,
		leads,
		sessions,
		callflow.Options{
			PublicBaseURL: cfg.PublicBaseURL,
			OfferFollowUp: cfg.CallOfferFollowUp,
			SpeechMode:    callflow.SpeechMode(cfg.CallSpeechMode),
			Audio:         audioResolver(cfg.AudioBaseURL),
		},
	)

	var messagingLeads messaging.LeadRecorder
	if repos != nil {
		messagingLeads = repos.Lead()
	}
	responder := messaging.NewResponder(
		detector,
		intent.NewClassifier(intent.DefaultRules()),
		composer,
		escalator,
		ilog,
		messagingLeads,
	)

	return &HandlerManager{
		config:   cfg,
		voice:    NewVoiceWebhookHandler(machine),
		message:  NewMessagingWebhookHandler(responder),
		repos:    repos,
		redisSvc: redisSvc,
	}, nil
}

// SetupAllRoutes registers all routes with middleware.
func (hm *HandlerManager) SetupAllRoutes(router *mux.Router) {
	router.Use(GlobalLoggingMiddleware)

	signed := TwilioSignatureMiddleware(
		hm.config.TwilioAuthToken,
		hm.config.PublicBaseURL,
		hm.config.ValidateSignatures,
	)

	router.HandleFunc("/voice/incoming", signed(http.HandlerFunc(hm.voice.HandleIncoming)).ServeHTTP).Methods("POST")
	router.HandleFunc("/voice/handle", signed(http.HandlerFunc(hm.voice.HandleSpeech)).ServeHTTP).Methods("POST")
	router.HandleFunc("/voice/final", signed(http.HandlerFunc(hm.voice.HandleFinal)).ServeHTTP).Methods("POST")
	router.HandleFunc("/voice/voicemail", signed(http.HandlerFunc(hm.voice.HandleVoicemail)).ServeHTTP).Methods("POST")
	router.HandleFunc("/voice/voicemail-transcribed", signed(http.HandlerFunc(hm.voice.HandleVoicemailTranscribed)).ServeHTTP).Methods("POST")
	router.HandleFunc("/voice/transfer-complete", signed(http.HandlerFunc(hm.voice.HandleTransferComplete)).ServeHTTP).Methods("POST")

	router.HandleFunc("/whatsapp", signed(http.HandlerFunc(hm.message.HandleInbound)).ServeHTTP).Methods("POST")

	router.HandleFunc("/health", hm.handleHealth).Methods("GET")
	router.HandleFunc("/", hm.handleRoot).Methods("GET")
}

// Close releases the backends the manager owns.
func (hm *HandlerManager) Close() {
	if hm.repos != nil {
		if err := hm.repos.Close(); err != nil {
			logger.Base().Warn("failed to close sqlite store", zap.Error(err))
		}
	}
	if hm.redisSvc != nil {
		if err := hm.redisSvc.Close(); err != nil {
			logger.Base().Warn("failed to close redis client", zap.Error(err))
		}
	}
}

func (hm *HandlerManager) handleHealth(w http.ResponseWriter, r *http.Request) {
	if hm.repos != nil {
		if err := hm.repos.Ping(r.Context()); err != nil {
			logger.Base().Warn("health check found sqlite unreachable", zap.Error(err))
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (hm *HandlerManager) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Daycare receptionist is running"))
}

// audioResolver maps prompts to pre-rendered audio under the configured base
// URL. Without a base URL every prompt falls back to synthesized speech.
func audioResolver(baseURL string) callflow.AudioResolver {
	if baseURL == "" {
		return nil
	}
	return callflow.StaticAudioResolver(baseURL)
}
