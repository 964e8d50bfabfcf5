package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del log de movimientos sobre PostgreSQL
// (usable con pool o tx). El log es append-only: no hay update ni delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, team_id, date, operator, kind, year, lot, format, warehouse_id, pieces, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	operator := (*string)(nil)
	if movement.Operator != "" {
		operator = &movement.Operator
	}
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.TeamID, movement.Date, operator, movement.Kind,
		movement.Year, movement.Lot, movement.Format, movement.WarehouseID,
		movement.Pieces, movement.Notes, movement.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByTeam lista los movimientos del equipo, más recientes primero, con
// filtros exactos opcionales (AND).
func (r *MovementRepo) ListByTeam(ctx context.Context, teamID string, filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `
		SELECT id, team_id, date, operator, kind, year, lot, format, warehouse_id, pieces, notes, created_at, created_by
		FROM movements WHERE team_id = $1`
	args := []any{teamID}
	n := 1

	add := func(cond string, value any) {
		n++
		query += fmt.Sprintf(" AND %s = $%d", cond, n)
		args = append(args, value)
	}
	if filter.Year != 0 {
		add("year", filter.Year)
	}
	if filter.Lot != "" {
		add("lot", filter.Lot)
	}
	if filter.Format != "" {
		add("format", filter.Format)
	}
	if filter.WarehouseID != "" {
		add("warehouse_id", filter.WarehouseID)
	}
	if filter.Kind != "" {
		add("kind", filter.Kind)
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var operator, createdBy *string
		if err := rows.Scan(
			&m.ID, &m.TeamID, &m.Date, &operator, &m.Kind,
			&m.Year, &m.Lot, &m.Format, &m.WarehouseID,
			&m.Pieces, &m.Notes, &m.CreatedAt, &createdBy,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if operator != nil {
			m.Operator = *operator
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
