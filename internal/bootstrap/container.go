package bootstrap

import (
	"context"
	"log"

	"careerbridge-be/internal/config"
	"careerbridge-be/internal/controller"
	"careerbridge-be/internal/pkg/logger"
	"careerbridge-be/internal/pkg/mailer"
	"careerbridge-be/internal/repository/memory"
	"careerbridge-be/internal/repository/unitofwork"
	"careerbridge-be/internal/service"
	"careerbridge-be/internal/websocket"
	"careerbridge-be/pkg/admin/dashboard"
	adminEvents "careerbridge-be/pkg/admin/events"
	adminUser "careerbridge-be/pkg/admin/user"
	"careerbridge-be/pkg/scoring"

	pktNats "careerbridge-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	JobController         controller.IJobController
	ApplicationController controller.IApplicationController
	InterviewController   controller.IInterviewController
	AdminController       controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/interview_stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Interview scoring (Gemini). A missing key leaves the generator nil
	// and every evaluation lands on the fallback path.
	geminiGenerator, err := scoring.NewGeminiGenerator(
		context.Background(),
		cfg.Keys.GoogleGemini,
		cfg.Interview.GeminiModel,
	)
	if err != nil {
		log.Printf("[WARN] Failed to initialize Gemini generator: %v (evaluations use fallback scoring)", err)
	}
	scoringClient := scoring.NewClient(geminiGenerator)

	// In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()
	recorderRepo := memory.NewRecorderRepository()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Keys.EvaluateInterviewTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EvaluateInterviewTopic,
		uowFactory,
		scoringClient,
		natsPub,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	jobService := service.NewJobService(uowFactory)
	applicationService := service.NewApplicationService(uowFactory, natsPub)
	interviewService := service.NewInterviewService(
		uowFactory,
		sessionRepo,
		recorderRepo,
		emailService,
		natsPub,
		publisherService,
		cfg.Interview.RecordingDir,
		cfg.App.ClientURL,
	)

	// Admin Domain Components
	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)
	userManager := adminUser.NewManager(sysLogger, adminEventPublisher)
	dashboardAggregator := dashboard.NewAggregator(sysLogger)

	adminService := service.NewAdminService(
		uowFactory,
		sysLogger,
		userManager,
		dashboardAggregator,
		adminEventPublisher,
	)

	streamHandler := websocket.NewStreamHandler(interviewService, wsLogger)

	// 4. Controllers
	return &Container{
		AuthController:        controller.NewAuthController(authService),
		JobController:         controller.NewJobController(jobService),
		ApplicationController: controller.NewApplicationController(applicationService),
		InterviewController:   controller.NewInterviewController(interviewService, wsHub, streamHandler, sysLogger),
		AdminController:       controller.NewAdminController(adminService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
