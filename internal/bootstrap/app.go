package bootstrap

import (
	"context"
	"time"

	"quiz-service/config"
	gameHub "quiz-service/internal/api/ws/hub"
	"quiz-service/pkg/graceful"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	config         config.Config
	repository     Repository
	sessionManager SessionManager
	kafka          Messaging
	wsHub          *gameHub.Hub
	fiberApp       *fiber.App
	httpHandlers   map[string]interface{}
	wsHandlers     map[string]interface{}
}

func NewApp(config config.Config) *App {
	app := &App{
		config: config,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	a.repository = InitDatabase(a.config)
	a.sessionManager = InitSessionRedis(a.config)
	a.kafka = SetupMessaging(a.config)
	a.wsHub = InitWebsocket(context.Background(), a.repository, a.kafka)
	a.httpHandlers = SetupHTTPHandlers(a.repository)
	a.wsHandlers = SetupWSHandlers(a.wsHub, a.sessionManager)
	a.fiberApp = SetupServer(a.config, a.httpHandlers, a.wsHandlers)
}

func (a *App) Start() {
	go func() {
		port := a.config.Server.Port
		if err := a.fiberApp.Listen(":" + port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", a.config.Server.Port))

	defer func() {
		if err := a.kafka.Close(); err != nil {
			zap.L().Error("Failed to close kafka producer", zap.Error(err))
		}
		if err := a.repository.Close(); err != nil {
			zap.L().Error("Failed to close database", zap.Error(err))
		}
	}()

	graceful.WaitForShutdown(a.fiberApp, 5*time.Second, context.Background())
}
