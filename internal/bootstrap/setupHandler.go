package bootstrap

import (
	httpHandler "quiz-service/internal/api/http/handler"
	httpUsecase "quiz-service/internal/api/http/usecase"
	wsHandler "quiz-service/internal/api/ws/handler"
	wsUsecase "quiz-service/internal/api/ws/usecase"
)

func SetupHTTPHandlers(repository Repository) map[string]interface{} {
	createGameUseCase := httpUsecase.NewCreateGameUseCase(repository)
	createGameHandler := httpHandler.NewCreateGameHandler(createGameUseCase)

	createQuestionUseCase := httpUsecase.NewCreateQuestionUseCase(repository)
	createQuestionHandler := httpHandler.NewCreateQuestionHandler(createQuestionUseCase)

	joinGameUseCase := httpUsecase.NewJoinGameUseCase(repository)
	joinGameHandler := httpHandler.NewJoinGameHandler(joinGameUseCase)

	getGameUseCase := httpUsecase.NewGetGameUseCase(repository)
	getGameHandler := httpHandler.NewGetGameHandler(getGameUseCase)

	return map[string]interface{}{
		"create-game":     createGameHandler,
		"create-question": createQuestionHandler,
		"join-game":       joinGameHandler,
		"get-game":        getGameHandler,
	}
}

func SetupWSHandlers(wsHub Hub, sessionManager SessionManager) map[string]interface{} {
	gameConnectUseCase := wsUsecase.NewGameConnectUseCase(wsHub, sessionManager)
	gameConnectHandler := wsHandler.NewWebSocketGameHandler(gameConnectUseCase)

	return map[string]interface{}{
		"game-connect": gameConnectHandler,
	}
}
