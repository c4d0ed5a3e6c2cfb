package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"quiz-service/domain"

	"github.com/redis/go-redis/v9"
)

// SessionData, oturum token'ının arkasındaki kimlik bilgisidir.
type SessionData struct {
	UserID    string    `json:"user_id"`
	Device    string    `json:"device,omitempty"`
	Ip        string    `json:"ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionManager, oturum yönetimi işlemlerini gerçekleştiren yapı.
// Token doğrulama basit bir dış işbirlikçidir; quiz servisinin tek
// ihtiyacı token -> kullanıcı kimliği çözümüdür.
type SessionManager struct {
	client *redis.Client
}

func NewSessionManager(redisAddr string, password string, db int) (*SessionManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	log.Println("Connected to Redis successfully")
	return &SessionManager{client: client}, nil
}

func (sm *SessionManager) GetRedisClient() *redis.Client {
	return sm.client
}

// GetSession, token'a karşılık gelen oturum verisini döner.
func (sm *SessionManager) GetSession(ctx context.Context, token string) (*SessionData, error) {
	raw, err := sm.client.Get(ctx, token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetTokenTTL, token'ın kalan süresini döner; token yoksa 0.
func (sm *SessionManager) GetTokenTTL(ctx context.Context, token string) (time.Duration, error) {
	ttl, err := sm.client.TTL(ctx, token).Result()
	if err != nil {
		return 0, err
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

// CreateSession, yeni bir oturum yazar. Testlerde ve yerel kurulumda
// kullanılır; üretimde oturumları auth servisi oluşturur.
func (sm *SessionManager) CreateSession(ctx context.Context, token string, data *SessionData, duration time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	pipe := sm.client.Pipeline()
	pipe.Set(ctx, token, jsonData, duration)
	pipe.SAdd(ctx, "user_sessions:"+data.UserID, token)
	_, err = pipe.Exec(ctx)
	return err
}
