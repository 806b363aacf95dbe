// Package storage is the persistence port for client-side state: the bearer
// token, the signed-in user record, the theme preference and the last phone
// number used at the check-in kiosk. Values never expire.
package storage

import (
	"context"
	"sync"
)

const (
	KeyAccessToken  = "accessToken"
	KeyUser         = "user"
	KeyTheme        = "theme"
	KeyCheckinPhone = "checkinPhone"
)

type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
}

// Pinger is implemented by drivers backed by a remote service.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}
