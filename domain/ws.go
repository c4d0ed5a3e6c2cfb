package domain

import (
	"time"

	"github.com/google/uuid"
)

// WSConn, hub'ın ihtiyaç duyduğu websocket yüzeyini soyutlar.
// *websocket.Conn bu arayüzü doğrudan sağlar; testler sahte bağlantı kullanır.
type WSConn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetReadLimit(limit int64)
	SetPongHandler(h func(appData string) error)
	Close() error
}

type Client struct {
	// UserID, bağlantı açılırken oturumdan doğrulanan kimliktir.
	UserID uuid.UUID

	// Aşağıdaki alanlar join_game/host_game ile oda kaydı yapılınca hub
	// tarafından doldurulur; hub kilidi altında değiştirilir.
	PlayerID uuid.UUID
	GameID   uuid.UUID
	RoomCode string
	IsHost   bool

	Conn WSConn
	Send chan []byte
	Done chan struct{}
}

type WebSocketErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}
