package storage

import (
	"time"
)

// SessionStorage adapts RedisClient to fiber.Storage so the session
// middleware keeps its data server-side in Redis. Keys are prefixed to keep
// session blobs apart from anything else living in the same database.
type SessionStorage struct {
	client *RedisClient
	prefix string
}

// NewSessionStorage creates a session storage backed by the given Redis client.
func NewSessionStorage(client *RedisClient) *SessionStorage {
	return &SessionStorage{
		client: client,
		prefix: "sess:",
	}
}

// Get retrieves a session blob by key. A missing key yields nil, nil.
func (s *SessionStorage) Get(key string) ([]byte, error) {
	return s.client.GetBytes(s.prefix + key)
}

// Set stores a session blob under key with the given expiration.
func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.SetBytes(s.prefix+key, val, exp)
}

// Delete removes a session blob.
func (s *SessionStorage) Delete(key string) error {
	return s.client.Delete(s.prefix + key)
}

// Reset drops every stored session.
func (s *SessionStorage) Reset() error {
	return s.client.FlushDB()
}

// Close closes the underlying Redis connection.
func (s *SessionStorage) Close() error {
	return s.client.Close()
}
