package initializer

import (
	"log"

	"quiz-service/config"
	"quiz-service/infra/kafka"
)

func InitMessaging(appConfig config.Config) *kafka.Producer {
	producer := kafka.NewProducer(appConfig.Kafka.Brokers, appConfig.Kafka.Topic)
	log.Printf("Kafka producer initialized, topic: %s", appConfig.Kafka.Topic)
	return producer
}
