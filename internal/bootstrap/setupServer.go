package bootstrap

import (
	"time"

	"quiz-service/config"
	httpGameHandler "quiz-service/internal/api/http/handler"
	wsHandler "quiz-service/internal/api/ws/handler"
	"quiz-service/internal/handler"
	"quiz-service/internal/server"

	"github.com/gofiber/fiber/v2"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}, wsHandlers map[string]interface{}) *fiber.App {

	serverConfig := server.Config{
		Port:         config.Server.Port,
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	app := server.NewFiberApp(serverConfig)

	createGameHandler := httpHandlers["create-game"].(*httpGameHandler.CreateGameHandler)
	createQuestionHandler := httpHandlers["create-question"].(*httpGameHandler.CreateQuestionHandler)
	joinGameHandler := httpHandlers["join-game"].(*httpGameHandler.JoinGameHandler)
	getGameHandler := httpHandlers["get-game"].(*httpGameHandler.GetGameHandler)

	app.Post("/games", handler.HandleBasic[httpGameHandler.CreateGameRequest, httpGameHandler.CreateGameResponse](createGameHandler))
	app.Post("/games/:room_code/questions", handler.HandleBasic[httpGameHandler.CreateQuestionRequest, httpGameHandler.CreateQuestionResponse](createQuestionHandler))
	app.Post("/games/:room_code/join", handler.HandleBasic[httpGameHandler.JoinGameRequest, httpGameHandler.JoinGameResponse](joinGameHandler))
	app.Get("/games/:room_code", handler.HandleBasic[httpGameHandler.GetGameRequest, httpGameHandler.GetGameResponse](getGameHandler))

	wsRoute := app.Group("/ws")
	gameConnectHandler := wsHandlers["game-connect"].(*wsHandler.WebSocketGameHandler)
	wsRoute.Get("/game", handler.HandleWithFiberWS[wsHandler.WebSocketGameRequest](gameConnectHandler))

	return app
}
