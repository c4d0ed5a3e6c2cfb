package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"quiz-service/domain"
)

const (
	roomCodeLength   = 6
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeAttempts = 10
)

// generateRoomCode, aktif oyunlar arasında benzersiz, elle yazılabilir
// kısa bir oda kodu üretir. Çakışmada yeniden dener.
func generateRoomCode(ctx context.Context, repository PostgresRepository) (string, error) {
	for attempt := 0; attempt < roomCodeAttempts; attempt++ {
		buf := make([]byte, roomCodeLength)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}
		for i, b := range buf {
			buf[i] = roomCodeAlphabet[int(b)%len(roomCodeAlphabet)]
		}
		code := string(buf)

		_, err := repository.GetGameByRoomCode(ctx, code)
		if errors.Is(err, domain.ErrGameNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
		// Kod kullanımda, tekrar dene.
	}
	return "", domain.ErrRoomCodeTaken
}
