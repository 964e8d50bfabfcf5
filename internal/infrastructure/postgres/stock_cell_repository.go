package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
)

var _ repository.StockCellRepository = (*StockCellRepo)(nil)

// StockCellRepo implementación de StockCellRepository sobre PostgreSQL
// (usable con pool o tx).
type StockCellRepo struct {
	q Querier
}

// NewStockCellRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockCellRepository(q Querier) *StockCellRepo {
	return &StockCellRepo{q: q}
}

// ListByTeam trae todas las celdas del equipo en orden de grilla: año
// descendente, lote, formato y bodega.
func (r *StockCellRepo) ListByTeam(ctx context.Context, teamID string) ([]*entity.StockCell, error) {
	query := `
		SELECT team_id, year, lot, format, warehouse_id, qty, updated_at
		FROM stock_cells WHERE team_id = $1
		ORDER BY year DESC, lot, format, warehouse_id`
	rows, err := r.q.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("list stock cells: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockCell
	for rows.Next() {
		var c entity.StockCell
		if err := rows.Scan(&c.TeamID, &c.Year, &c.Lot, &c.Format, &c.WarehouseID, &c.Qty, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock cell: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Upsert inserta o reemplaza la cantidad de una celda. El conflicto es la
// tupla completa de la coordenada más el equipo (last-write-wins).
func (r *StockCellRepo) Upsert(ctx context.Context, cell *entity.StockCell) error {
	query := `
		INSERT INTO stock_cells (team_id, year, lot, format, warehouse_id, qty, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (team_id, year, lot, format, warehouse_id)
		DO UPDATE SET qty = EXCLUDED.qty, updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		cell.TeamID, cell.Year, cell.Lot, cell.Format, cell.WarehouseID, cell.Qty,
	)
	if err != nil {
		return fmt.Errorf("upsert stock cell: %w", err)
	}
	return nil
}

// UpsertBatch inserta o reemplaza un lote de celdas (import CSV). El caller
// decide si lo envuelve en una transacción vía TxRunner.
func (r *StockCellRepo) UpsertBatch(ctx context.Context, cells []*entity.StockCell) error {
	for _, cell := range cells {
		if err := r.Upsert(ctx, cell); err != nil {
			return err
		}
	}
	return nil
}
