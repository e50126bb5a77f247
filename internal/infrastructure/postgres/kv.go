package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KV)(nil)

// KV implementación del puerto KeyValueStore sobre PostgreSQL.
// Tabla: store(key text primary key, value jsonb, updated_at timestamptz).
type KV struct {
	pool *pgxpool.Pool
}

// NewKV construye el adaptador y asegura la tabla.
func NewKV(ctx context.Context, pool *pgxpool.Pool) (*KV, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS store (
			key        text PRIMARY KEY,
			value      jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("crear tabla store: %w", err)
	}
	return &KV{pool: pool}, nil
}

// Get devuelve el valor de la clave, o (nil, nil) si no existe.
func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get key %q: %w", key, err)
	}
	return value, nil
}

// Set hace upsert del valor completo bajo la clave.
func (s *KV) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO store (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("set key %q: %w", key, err)
	}
	return nil
}

// Delete elimina la clave; borrar una clave inexistente no es error.
func (s *KV) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}

// Keys devuelve todas las claves del almacén.
func (s *KV) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT key FROM store ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listar claves: %w", err)
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan clave: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
