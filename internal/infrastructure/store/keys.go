// Package store implementa los repositorios de dominio sobre el puerto
// KeyValueStore, codificando el layout de claves del almacén. Es agnóstico
// del backend (memoria o PostgreSQL).
package store

import "sync"

// Claves reservadas del almacén.
const (
	keyPermissions    = "admin_permissions"
	keyGroups         = "admin_groups"
	keyRecentSearches = "recentJobSearches"
	keyLanguage       = "hire-at-language"
	suffixAppliedJobs = "_applied_jobs"
	suffixSavedJobs   = "_saved_jobs"
	maxRecentSearches = 5
	defaultLanguage   = "en"
)

// keyedMutex serializa operaciones leer-modificar-escribir por clave, para
// que dos escrituras concurrentes sobre la misma identidad no pierdan
// actualizaciones. Distintas claves no se bloquean entre sí.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock bloquea la clave y devuelve la función de desbloqueo.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()
	m.Lock()
	return m.Unlock
}
