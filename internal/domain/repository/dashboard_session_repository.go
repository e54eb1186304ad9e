package repository

import (
	"context"

	"github.com/jhoicas/bi-inventario/internal/domain/entity"
)

// DashboardSessionRepository guarda el archivo vigente de cada sesión del navegador.
// Get devuelve (nil, nil) si la sesión no tiene archivo o ya expiró.
type DashboardSessionRepository interface {
	Save(ctx context.Context, sessionID string, snapshot *entity.Snapshot) error
	Get(ctx context.Context, sessionID string) (*entity.Snapshot, error)
	Delete(ctx context.Context, sessionID string) error
}
