// Package identity résout le commissariat actif d'une session. La couche
// session appartient au service d'authentification (hors périmètre) : ici
// on ne fait que la lire, jamais l'écrire.
package identity

import (
	"context"
	"errors"
	"sync"

	"github.com/go-redis/redis/v8"
)

// ErrCleAbsente : la clé n'existe pas dans la couche session.
var ErrCleAbsente = errors.New("clé absente de la couche session")

// Store est la lecture seule de la couche session.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
}

// RedisStore lit la couche session partagée avec le service
// d'authentification.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	valeur, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCleAbsente
	}
	return valeur, err
}

// MemoireStore est l'implémentation en mémoire utilisée par les tests.
type MemoireStore struct {
	mu      sync.RWMutex
	valeurs map[string]string
}

func NewMemoireStore() *MemoireStore {
	return &MemoireStore{valeurs: make(map[string]string)}
}

func (s *MemoireStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	valeur, ok := s.valeurs[key]
	if !ok {
		return "", ErrCleAbsente
	}
	return valeur, nil
}

func (s *MemoireStore) Set(key, valeur string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valeurs[key] = valeur
}
