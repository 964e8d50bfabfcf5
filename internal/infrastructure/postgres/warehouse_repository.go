package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/oleo-stock/internal/domain"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, team_id, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		warehouse.ID, warehouse.TeamID, warehouse.Name, warehouse.Active,
		warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega del equipo por ID, activa o no.
func (r *WarehouseRepo) GetByID(ctx context.Context, teamID, id string) (*entity.Warehouse, error) {
	query := `
		SELECT id, team_id, name, active, created_at, updated_at
		FROM warehouses WHERE team_id = $1 AND id = $2`
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, query, teamID, id).Scan(
		&w.ID, &w.TeamID, &w.Name, &w.Active, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// ListActiveByTeam lista el conjunto visible de bodegas del equipo.
func (r *WarehouseRepo) ListActiveByTeam(ctx context.Context, teamID string) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, team_id, name, active, created_at, updated_at
		FROM warehouses WHERE team_id = $1 AND active
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.TeamID, &w.Name, &w.Active, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Update actualiza nombre y estado de una bodega.
func (r *WarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $3, active = $4, updated_at = $5
		WHERE team_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		warehouse.TeamID, warehouse.ID, warehouse.Name, warehouse.Active, warehouse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// Deactivate quita la bodega del conjunto visible. Las celdas históricas con
// su ID quedan en stock_cells: los datos quedan, la vista no.
func (r *WarehouseRepo) Deactivate(ctx context.Context, teamID, id string) error {
	query := `UPDATE warehouses SET active = false, updated_at = now() WHERE team_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query, teamID, id)
	if err != nil {
		return fmt.Errorf("deactivate warehouse: %w", err)
	}
	return nil
}
