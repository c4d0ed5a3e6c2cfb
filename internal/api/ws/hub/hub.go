package hub

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"quiz-service/domain"

	"github.com/fasthttp/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Hub, canlı bağlantı kayıt defteridir: bağlantıları (playerId, roomCode)
// eşlemesine, oda kodlarını canlı odalara bağlar. Oyun ilerleme mantığı
// GameHub'dadır.
type Hub struct {
	// mu, rooms haritasını ve client oda bağlama alanlarını korur.
	// Oda içi oyun durumu liveRoom.mu ile korunur; ikisi birden
	// gerektiğinde önce Hub.mu alınır.
	rooms map[string]*liveRoom

	register   chan *domain.Client
	unregister chan *domain.Client

	game *GameHub

	mu sync.RWMutex
}

func NewHub(storage Storage, clock Clock, events EventPublisher) *Hub {
	h := &Hub{
		rooms:      make(map[string]*liveRoom),
		register:   make(chan *domain.Client),
		unregister: make(chan *domain.Client, 64),
	}
	h.game = NewGameHub(h, storage, clock, events)
	return h
}

// GameHub, oda koordinatörünü döner.
func (h *Hub) GameHub() *GameHub { return h.game }

// Run, kayıt/kayıt silme olaylarını dinleyen ana hub döngüsüdür.
func (h *Hub) Run(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.register:
				go h.readPump(client)
				go h.writePump(client)
			case client := <-h.unregister:
				h.Detach(client)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (h *Hub) RegisterClient(client *domain.Client) {
	h.register <- client
}

func (h *Hub) UnregisterClient(client *domain.Client) {
	h.unregister <- client
}

// RoomFor, oda kodu için canlı odayı döner; yoksa nil.
func (h *Hub) RoomFor(roomCode string) *liveRoom {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rooms[roomCode]
}

// ConnectionPlayer, bağlantının kayıtlı olduğu (playerId, roomCode)
// çiftini döner; kayıtlı değilse ok=false.
func (h *Hub) ConnectionPlayer(client *domain.Client) (playerID string, roomCode string, ok bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if client.RoomCode == "" {
		return "", "", false
	}
	return client.PlayerID.String(), client.RoomCode, true
}

// Attach, bağlantıyı odaya bağlar. Oda yoksa tembel oluşturulur.
// Aynı oyuncunun eski bağlantısı varsa kapatılıp yenisiyle değiştirilir;
// oyuncu kaydı silinmez, skor ve kimlik korunur.
func (h *Hub) Attach(client *domain.Client, game *domain.Game, playerID uuid.UUID, isHost bool) *liveRoom {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[game.RoomCode]
	if !ok {
		room = newLiveRoom(game)
		h.rooms[game.RoomCode] = room
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	client.GameID = game.ID
	client.RoomCode = game.RoomCode
	client.IsHost = isHost

	if isHost {
		if prev := room.host; prev != nil && prev != client {
			h.closeClientLocked(prev)
		}
		room.host = client
		return room
	}

	client.PlayerID = playerID
	if prev, exists := room.players[playerID]; exists && prev != client {
		// Yeniden bağlanma: eski bağlantı kapatılır, girdi üzerine yazılır.
		h.closeClientLocked(prev)
	}
	room.players[playerID] = client
	return room
}

// Detach, bağlantının oda eşlemesini kaldırır. Kayıtlı değilse no-op.
// Oda hem host hem oyuncu bağlantılarından boşaldıysa bekleyen
// zamanlayıcı iptal edilir ve oda silinir.
func (h *Hub) Detach(client *domain.Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[client.RoomCode]
	if room == nil {
		h.closeClientLocked(client)
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.host == client {
		room.host = nil
	} else if current, ok := room.players[client.PlayerID]; ok && current == client {
		// Player entity'si kalıcı katmanda yaşamaya devam eder;
		// sadece canlı bağlantı eşlemesi silinir.
		delete(room.players, client.PlayerID)
	}
	h.closeClientLocked(client)

	if room.emptyLocked() {
		if room.deadlineTimer != nil {
			room.deadlineTimer.Stop()
			room.deadlineTimer = nil
		}
		delete(h.rooms, client.RoomCode)
		zap.L().Info("Room garbage collected", zap.String("room_code", client.RoomCode))
	}
}

// closeClientLocked, bağlantıyı en fazla bir kez kapatır. Send kanalı
// kapatılmaz; writePump Done üzerinden çıkar, böylece eşzamanlı bir
// broadcast kapalı kanala yazamaz. Hub.mu tutulurken çağrılmalıdır.
func (h *Hub) closeClientLocked(client *domain.Client) {
	select {
	case <-client.Done:
		return
	default:
	}
	close(client.Done)
	client.Conn.Close()
}

// readPump, istemciden gelen mesajları okur ve koordinatöre iletir.
func (h *Hub) readPump(client *domain.Client) {
	defer func() {
		h.unregister <- client
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			return
		}
		h.route(client, raw)
	}
}

// writePump, Send kanalındaki mesajları sokete yazar ve periyodik ping atar.
func (h *Hub) writePump(client *domain.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-client.Send:
			if !ok {
				return
			}
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-client.Done:
			return
		}
	}
}

// route, ham mesajı çözer, doğrular ve ilgili işleyiciye dağıtır.
// Bozuk mesajlar error cevabı üretir, bağlantı açık kalır.
func (h *Hub) route(client *domain.Client, raw []byte) {
	env, err := DecodeEnvelope(raw)
	if err != nil {
		h.SendError(client, err.Error())
		return
	}

	switch env.Type {
	case MsgPing:
		h.Send(client, &Message{Type: MsgPong})
	case MsgJoinGame:
		h.game.HandleJoinGame(client, env)
	case MsgHostGame:
		h.game.HandleHostGame(client, env)
	case MsgStartGame:
		h.game.HandleStartGame(client, env)
	case MsgNextQuestion:
		h.game.HandleNextQuestion(client, env)
	case MsgSubmitAnswer:
		h.game.HandleSubmitAnswer(client, env)
	default:
		h.SendError(client, "unknown message type: "+env.Type)
	}
}

// Send, mesajı tek bir bağlantıya iletir. Kanal doluysa mesaj düşürülür;
// yavaş bir istemci hub'ı bloklamamalıdır.
func (h *Hub) Send(client *domain.Client, msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		zap.L().Error("Failed to marshal outbound message", zap.Error(err))
		return
	}
	h.sendRaw(client, data)
}

func (h *Hub) SendError(client *domain.Client, message string) {
	h.Send(client, &Message{
		Type:    MsgError,
		Content: domain.WebSocketErrorMessage{Type: MsgError, Message: message},
	})
}

func mustMarshal(msg *Message) []byte {
	data, err := json.Marshal(msg)
	if err != nil {
		zap.L().Error("Failed to marshal outbound message", zap.Error(err))
		return nil
	}
	return data
}

func (h *Hub) sendRaw(client *domain.Client, data []byte) {
	if data == nil {
		return
	}
	select {
	case <-client.Done:
	case client.Send <- data:
	default:
		zap.L().Warn("Send channel full, dropping message")
	}
}

// Broadcast, mesajı odadaki host dahil tüm bağlantılara iletir.
func (h *Hub) Broadcast(room *liveRoom, msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		zap.L().Error("Failed to marshal broadcast message", zap.Error(err))
		return
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	h.broadcastLocked(room, data)
}

func (h *Hub) broadcastLocked(room *liveRoom, data []byte) {
	if room.host != nil {
		h.sendRaw(room.host, data)
	}
	for _, c := range room.players {
		h.sendRaw(c, data)
	}
}
