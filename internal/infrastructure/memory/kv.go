// Package memory implementa el almacén clave-valor en memoria. Es el backend
// por defecto en modo demo y el usado por los tests.
package memory

import (
	"context"
	"sync"

	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KV)(nil)

// KV almacén clave-valor en memoria, seguro para uso concurrente.
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKV construye un almacén vacío.
func NewKV() *KV {
	return &KV{data: make(map[string][]byte)}
}

// Get devuelve el valor, o (nil, nil) si la clave no existe.
func (s *KV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set escribe el valor completo bajo la clave.
func (s *KV) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

// Delete elimina la clave.
func (s *KV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Keys devuelve todas las claves presentes.
func (s *KV) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}
