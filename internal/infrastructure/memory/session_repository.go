// Package memory implementa los repositorios en memoria del proceso.
// No hay persistencia: al reiniciar el servicio las sesiones se pierden.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/bi-inventario/internal/domain/entity"
	"github.com/jhoicas/bi-inventario/internal/domain/repository"
)

var _ repository.DashboardSessionRepository = (*SessionRepo)(nil)

var errEmptySessionID = errors.New("memory: sessionID vacío")

type sessionEntry struct {
	snapshot  *entity.Snapshot
	expiresAt time.Time
}

// SessionRepo implementación del puerto DashboardSessionRepository sobre un mapa.
// Cada entrada vive ttl desde su último Save; las vencidas se purgan en la siguiente escritura.
type SessionRepo struct {
	mu      sync.RWMutex
	entries map[string]sessionEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewSessionRepository construye el repositorio. ttl <= 0 desactiva la expiración.
func NewSessionRepository(ttl time.Duration) *SessionRepo {
	return &SessionRepo{
		entries: make(map[string]sessionEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (r *SessionRepo) WithClock(now func() time.Time) *SessionRepo {
	r.now = now
	return r
}

// Save reemplaza el archivo vigente de la sesión.
func (r *SessionRepo) Save(ctx context.Context, sessionID string, snapshot *entity.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sessionID == "" {
		return errEmptySessionID
	}
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.purgeLocked(now)
	entry := sessionEntry{snapshot: snapshot}
	if r.ttl > 0 {
		entry.expiresAt = now.Add(r.ttl)
	}
	r.entries[sessionID] = entry
	return nil
}

// Get obtiene el archivo vigente de la sesión.
func (r *SessionRepo) Get(ctx context.Context, sessionID string) (*entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	entry, ok := r.entries[sessionID]
	r.mu.RUnlock()
	if !ok || r.expired(entry, r.now()) {
		return nil, nil
	}
	return entry.snapshot, nil
}

// Delete elimina el archivo de la sesión; no falla si no existe.
func (r *SessionRepo) Delete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
	return nil
}

// Len número de sesiones almacenadas, incluidas las vencidas aún no purgadas.
func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *SessionRepo) expired(e sessionEntry, now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func (r *SessionRepo) purgeLocked(now time.Time) {
	for id, e := range r.entries {
		if r.expired(e, now) {
			delete(r.entries, id)
		}
	}
}
