package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
)

var _ repository.TeamRepository = (*TeamRepo)(nil)

// TeamRepo implementación de TeamRepository sobre PostgreSQL.
type TeamRepo struct {
	q Querier
}

// NewTeamRepository construye el adaptador.
func NewTeamRepository(q Querier) *TeamRepo {
	return &TeamRepo{q: q}
}

// Create persiste un equipo.
func (r *TeamRepo) Create(ctx context.Context, team *entity.Team) error {
	query := `
		INSERT INTO teams (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, team.ID, team.Name, team.CreatedAt, team.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *TeamRepo) GetByID(ctx context.Context, id string) (*entity.Team, error) {
	query := `SELECT id, name, created_at, updated_at FROM teams WHERE id = $1`
	var t entity.Team
	err := r.q.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}

// AddMember agrega una membresía.
func (r *TeamRepo) AddMember(ctx context.Context, membership *entity.Membership) error {
	query := `
		INSERT INTO team_members (team_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (team_id, user_id) DO UPDATE SET role = EXCLUDED.role`
	_, err := r.q.Exec(ctx, query, membership.TeamID, membership.UserID, membership.Role)
	if err != nil {
		return fmt.Errorf("add team member: %w", err)
	}
	return nil
}

// ListMemberships devuelve los equipos del usuario con su rol.
func (r *TeamRepo) ListMemberships(ctx context.Context, userID string) ([]*entity.Membership, error) {
	query := `
		SELECT m.team_id, t.name, m.user_id, m.role
		FROM team_members m JOIN teams t ON t.id = m.team_id
		WHERE m.user_id = $1
		ORDER BY t.name`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	var list []*entity.Membership
	for rows.Next() {
		var m entity.Membership
		if err := rows.Scan(&m.TeamID, &m.TeamName, &m.UserID, &m.Role); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// GetMembership devuelve la membresía del usuario en el equipo, o nil.
func (r *TeamRepo) GetMembership(ctx context.Context, teamID, userID string) (*entity.Membership, error) {
	query := `
		SELECT m.team_id, t.name, m.user_id, m.role
		FROM team_members m JOIN teams t ON t.id = m.team_id
		WHERE m.team_id = $1 AND m.user_id = $2`
	var m entity.Membership
	err := r.q.QueryRow(ctx, query, teamID, userID).Scan(&m.TeamID, &m.TeamName, &m.UserID, &m.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return &m, nil
}
