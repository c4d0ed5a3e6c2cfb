package wsHandler

import (
	"context"

	wsUsecase "quiz-service/internal/api/ws/usecase"

	"github.com/gofiber/contrib/websocket"
)

// WebSocketGameHandler, oyun odası websocket bağlantılarını karşılar.
type WebSocketGameHandler struct {
	usecase wsUsecase.GameConnectUseCase
}

type WebSocketGameRequest struct {
}

func NewWebSocketGameHandler(usecase wsUsecase.GameConnectUseCase) *WebSocketGameHandler {
	return &WebSocketGameHandler{
		usecase: usecase,
	}
}

func (h *WebSocketGameHandler) HandleWS(c *websocket.Conn, ctx context.Context, req *WebSocketGameRequest) {
	sessionToken := c.Cookies("session_token")
	userIDHeader := c.Headers("X-User-Id")

	h.usecase.Execute(c, ctx, sessionToken, userIDHeader)
}
