package bootstrap

import (
	"log"
	"math/rand"
	"time"

	"moodmate-be/internal/config"
	"moodmate-be/internal/controller"
	"moodmate-be/internal/pkg/logger"
	"moodmate-be/internal/pkg/storage"
	"moodmate-be/internal/repository/memory"
	"moodmate-be/internal/repository/unitofwork"
	"moodmate-be/internal/service"
	"moodmate-be/pkg/chat"
	"moodmate-be/pkg/classifier"
	"moodmate-be/pkg/llm/factory"
	"moodmate-be/pkg/music"
	"moodmate-be/pkg/music/spotify"
	"moodmate-be/pkg/sentiment"
	"moodmate-be/pkg/suggest"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	SessionController    controller.ISessionController
	MoodController       controller.IMoodController
	JournalController    controller.IJournalController
	ChatController       controller.IChatController
	SuggestionController controller.ISuggestionController
	ProfileController    controller.IProfileController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.App.SessionTTLMinutes) * time.Minute)
	profileStore := storage.NewProfileStore(cfg.App.ProfileDir)

	// 2. External Providers
	var musicProvider music.Provider
	if cfg.Keys.SpotifyID != "" && cfg.Keys.SpotifySecret != "" {
		musicProvider = spotify.NewClient(cfg.Keys.SpotifyID, cfg.Keys.SpotifySecret)
		log.Printf("[INFO] Using Music Provider: SPOTIFY")
	} else {
		log.Printf("[INFO] No Spotify credentials, using built-in fallback tables")
	}

	var detector classifier.Provider
	if cfg.Keys.ClassifierURL != "" {
		detector = classifier.NewRemoteProvider(cfg.Keys.ClassifierURL, cfg.Keys.ClassifierKey)
		log.Printf("[INFO] Using Emotion Classifier: %s", cfg.Keys.ClassifierURL)
	} else {
		log.Printf("[INFO] No emotion classifier configured, detection falls back to random")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Groq,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	if llmProvider != nil {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	} else {
		log.Printf("[INFO] No LLM provider, chat uses templated responses")
	}

	// 3. Domain Engines
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := suggest.NewEngine(musicProvider, rng)
	responder := chat.NewResponder(llmProvider, rng)
	analyzer := sentiment.Lexicon{}

	// 4. Services
	authService := service.NewAuthService(uowFactory, sessionRepo, profileStore, sysLogger)
	sessionService := service.NewSessionService(sessionRepo)
	moodService := service.NewMoodService(uowFactory, sessionRepo, detector, engine, sysLogger)
	journalService := service.NewJournalService(uowFactory, sessionRepo, analyzer, sysLogger)
	chatService := service.NewChatService(sessionRepo, responder)
	suggestionService := service.NewSuggestionService(sessionRepo, engine)
	profileService := service.NewProfileService(sessionRepo, profileStore, sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		SessionController:    controller.NewSessionController(sessionService),
		MoodController:       controller.NewMoodController(moodService),
		JournalController:    controller.NewJournalController(journalService),
		ChatController:       controller.NewChatController(chatService),
		SuggestionController: controller.NewSuggestionController(suggestionService),
		ProfileController:    controller.NewProfileController(profileService),
	}
}
