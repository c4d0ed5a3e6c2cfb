package bootstrap

import (
	"context"

	"quiz-service/config"
	"quiz-service/domain"
	gameHub "quiz-service/internal/api/ws/hub"
	"quiz-service/internal/initializer"

	"go.uber.org/zap"
)

type Messaging interface {
	Close() error
	PublishGameEvent(ctx context.Context, eventType string, game *domain.Game)
}

type nopMessaging struct{}

func (nopMessaging) Close() error { return nil }
func (nopMessaging) PublishGameEvent(ctx context.Context, eventType string, game *domain.Game) {
}

// SetupMessaging, broker yapılandırılmamışsa sessiz bir yayıncı döner;
// oyun akışı kafka olmadan da çalışır.
func SetupMessaging(config config.Config) Messaging {
	if len(config.Kafka.Brokers) == 0 {
		zap.L().Info("Kafka brokers not configured, game events will not be published")
		return nopMessaging{}
	}
	return initializer.InitMessaging(config)
}

var _ gameHub.EventPublisher = Messaging(nil)
