package wsUsecase

import (
	"context"
	"errors"

	"quiz-service/domain"
	"quiz-service/internal/api/ws/hub"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GameConnectUseCase interface {
	Execute(c *websocket.Conn, ctx context.Context, sessionToken, userIDHeader string)
}

type gameConnectUseCase struct {
	hub      Hub
	sessions SessionStore
}

func NewGameConnectUseCase(hub Hub, sessions SessionStore) GameConnectUseCase {
	return &gameConnectUseCase{
		hub:      hub,
		sessions: sessions,
	}
}

// Execute, websocket bağlantısını kimliklendirir ve hub'a kaydeder.
// Oyuncular anonim bağlanabilir; kimlik doğrulama yalnızca geçerli bir
// oturum token'ı ya da gateway'in X-User-Id başlığı geldiğinde yapılır.
// Bağlantı, hub istemciyi kapatana kadar burada bloklanır.
func (u *gameConnectUseCase) Execute(c *websocket.Conn, ctx context.Context, sessionToken, userIDHeader string) {
	userID, err := u.resolveUserID(ctx, sessionToken, userIDHeader)
	if err != nil {
		sendErrorAndClose(c, "invalid session", fiber.StatusUnauthorized)
		return
	}

	client := &domain.Client{
		UserID: userID,
		Conn:   c,
		Send:   make(chan []byte, 256),
		Done:   make(chan struct{}),
	}

	// İstemci ilk mesaj olarak her zaman connection_established görür.
	welcome := hub.Message{
		Type:    hub.MsgConnectionEstablished,
		Content: map[string]string{"user_id": userID.String()},
	}
	if err := c.WriteJSON(welcome); err != nil {
		c.Close()
		return
	}

	u.hub.RegisterClient(client)

	// fiber, HandleWS dönünce bağlantıyı kapatır; hub bitirene kadar bekle.
	select {
	case <-client.Done:
	case <-ctx.Done():
		u.hub.UnregisterClient(client)
	}
}

func (u *gameConnectUseCase) resolveUserID(ctx context.Context, sessionToken, userIDHeader string) (uuid.UUID, error) {
	if sessionToken != "" && u.sessions != nil {
		data, err := u.sessions.GetSession(ctx, sessionToken)
		if err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrSessionExpired) {
				return uuid.Nil, err
			}
			zap.L().Error("Failed to resolve session", zap.Error(err))
			return uuid.Nil, err
		}
		return uuid.Parse(data.UserID)
	}
	if userIDHeader != "" {
		return uuid.Parse(userIDHeader)
	}
	return uuid.Nil, nil
}

func sendErrorAndClose(c *websocket.Conn, msg string, code int) {
	errorMessage := domain.WebSocketErrorMessage{
		Type:    "error",
		Message: msg,
		Code:    code,
	}
	if err := c.WriteJSON(errorMessage); err != nil {
		zap.L().Warn("Failed to send error message to client", zap.Error(err))
	}
	c.Close()
}
