package repository

import (
	"context"

	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
)

// StockCellRepository es el puerto de persistencia de celdas de inventario.
// El conflicto del upsert es la tupla completa (team_id, year, lot, format,
// warehouse_id); la semántica es last-write-wins del almacén.
type StockCellRepository interface {
	// ListByTeam trae todas las celdas del equipo, ordenadas por coordenada.
	ListByTeam(ctx context.Context, teamID string) ([]*entity.StockCell, error)
	// Upsert inserta o reemplaza la cantidad de una celda.
	Upsert(ctx context.Context, cell *entity.StockCell) error
	// UpsertBatch inserta o reemplaza un lote de celdas (import CSV).
	UpsertBatch(ctx context.Context, cells []*entity.StockCell) error
}
