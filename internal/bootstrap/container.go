package bootstrap

import (
	"log"

	"structai-be/internal/config"
	"structai-be/internal/controller"
	"structai-be/internal/pkg/logger"
	"structai-be/internal/repository/memory"
	"structai-be/internal/repository/unitofwork"
	"structai-be/internal/service"
	"structai-be/pkg/assistant/resolver"
	"structai-be/pkg/corpus"
	"structai-be/pkg/llm/factory"
	"structai-be/pkg/navigation"
	"structai-be/pkg/suggestion"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Logger exposed so main can Sync on shutdown
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Domain components
	llmProvider, err := factory.NewLLMProvider(cfg.Ai)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	sessionRepo := memory.NewSessionRepository()

	pdfSource := corpus.NewPDFSource(cfg.Corpus.DocsDir)
	scanner := corpus.NewScanner(pdfSource, cfg.Corpus.ExcerptRunes)

	answerResolver := resolver.New(
		uowFactory,
		scanner,
		llmProvider,
		resolver.Config{
			CachePrefixLen:  cfg.Resolver.CachePrefixLen,
			CorpusPrefixLen: cfg.Resolver.CorpusPrefixLen,
			Temperature:     cfg.Ai.Temperature,
			MaxTokens:       cfg.Ai.MaxTokens,
		},
		sysLogger,
	)

	machine := navigation.NewMachine(
		service.NewRoleStore(uowFactory),
		service.NewContentLookup(uowFactory, sysLogger),
		sysLogger,
	)

	suggestionSink := suggestion.NewXlsxSink(cfg.Suggest.FilePath)

	// 4. Services
	assistantService := service.NewAssistantService(
		sessionRepo,
		machine,
		answerResolver,
		pubSub,
		cfg.App.SuggestionTopic,
		sysLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.SuggestionTopic,
		suggestionSink,
	)

	// 5. Controllers
	assistantController := controller.NewAssistantController(assistantService)

	return &Container{
		AssistantController: assistantController,
		ConsumerService:     consumerService,
		Logger:              sysLogger,
	}
}
