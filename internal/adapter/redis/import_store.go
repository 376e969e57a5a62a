package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"srportal/internal/config/configs"
	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

// KeyPrefix namespaces pending uploads in a shared Redis.
const KeyPrefix = "srportal:import:"

// ImportStore keeps pending uploads as JSON values that Redis expires at the
// session's ExpiresAt.
type ImportStore struct {
	client *redis.Client
	now    func() time.Time
}

var _ port.ImportStore = (*ImportStore)(nil)

// NewClient connects to the configured Redis and pings it with a 5 second
// timeout.
func NewClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

func NewImportStore(client *redis.Client) *ImportStore {
	return &ImportStore{client: client, now: time.Now}
}

func key(token uuid.UUID) string {
	return KeyPrefix + token.String()
}

func (s *ImportStore) Save(ctx context.Context, session *domain.ImportSession) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return s.Delete(ctx, session.Token)
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode import %s: %w", session.Token, err)
	}
	if err = s.client.Set(ctx, key(session.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save import %s: %w", session.Token, err)
	}
	return nil
}

func (s *ImportStore) Get(ctx context.Context, token uuid.UUID) (*domain.ImportSession, error) {
	return s.decode(token, s.client.Get(ctx, key(token)))
}

// Take relies on GETDEL so the read and the delete are one command.
func (s *ImportStore) Take(ctx context.Context, token uuid.UUID) (*domain.ImportSession, error) {
	return s.decode(token, s.client.GetDel(ctx, key(token)))
}

func (s *ImportStore) decode(token uuid.UUID, cmd *redis.StringCmd) (*domain.ImportSession, error) {
	payload, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load import %s: %w", token, err)
	}

	var session domain.ImportSession
	if err = json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode import %s: %w", token, err)
	}
	if session.Expired(s.now()) {
		return nil, nil
	}
	return &session, nil
}

func (s *ImportStore) Delete(ctx context.Context, token uuid.UUID) error {
	if err := s.client.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("delete import %s: %w", token, err)
	}
	return nil
}
