package initializer

import (
	"fmt"
	"log"

	"quiz-service/config"
	"quiz-service/infra/memory"
	"quiz-service/infra/postgres"
)

func InitPostgres(appConfig config.Config) *postgres.Repository {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		appConfig.Postgres.User,
		appConfig.Postgres.Password,
		appConfig.Postgres.Host,
		appConfig.Postgres.Port,
		appConfig.Postgres.DB,
	)

	repository, err := postgres.NewRepository(connString)
	if err != nil {
		log.Fatalf("Postgres connection failed: %v", err)
	}
	return repository
}

func InitMemoryStore() *memory.Store {
	return memory.NewStore()
}
