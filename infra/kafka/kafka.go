package kafka

import (
	"context"
	"encoding/json"
	"time"

	"quiz-service/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// GameEvent, oyun yaşam döngüsü olaylarının dışarıya duyurulan şeklidir.
type GameEvent struct {
	Type      string    `json:"type"`
	GameID    string    `json:"game_id"`
	RoomCode  string    `json:"room_code"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Producer, yaşam döngüsü olaylarını tek bir topic'e yayınlar.
// Yayınlama best-effort'tur; hata sadece loglanır, oyun akışını bozmaz.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			zap.L().Sugar().Errorf("kafka: "+msg, args...)
		}),
	}
	return &Producer{writer: writer}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func (p *Producer) PublishGameEvent(ctx context.Context, eventType string, game *domain.Game) {
	event := GameEvent{
		Type:      eventType,
		GameID:    game.ID.String(),
		RoomCode:  game.RoomCode,
		Status:    string(game.Status),
		Timestamp: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("Failed to marshal game event", zap.Error(err))
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.GameID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		zap.L().Error("Failed to publish game event", zap.String("type", eventType), zap.Error(err))
	}
}
