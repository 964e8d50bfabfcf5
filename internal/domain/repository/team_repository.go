package repository

import (
	"context"

	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
)

// TeamRepository es el puerto de equipos y membresías.
type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) error
	GetByID(ctx context.Context, id string) (*entity.Team, error)
	AddMember(ctx context.Context, membership *entity.Membership) error
	// ListMemberships devuelve los equipos del usuario con su rol.
	ListMemberships(ctx context.Context, userID string) ([]*entity.Membership, error)
	// GetMembership devuelve la membresía del usuario en el equipo, o nil.
	GetMembership(ctx context.Context, teamID, userID string) (*entity.Membership, error)
}
