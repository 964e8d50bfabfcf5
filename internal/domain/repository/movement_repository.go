package repository

import (
	"context"

	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
)

// MovementFilter filtros exactos para listar movimientos (semántica AND;
// campo vacío = sin filtro).
type MovementFilter struct {
	Year        int
	Lot         entity.Lot
	Format      entity.Format
	WarehouseID string
	Kind        string
}

// MovementRepository es el puerto del log append-only de movimientos.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	ListByTeam(ctx context.Context, teamID string, filter MovementFilter) ([]*entity.Movement, error)
}
