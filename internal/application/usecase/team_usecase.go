package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/oleo-stock/internal/application/dto"
	"github.com/tu-usuario/oleo-stock/internal/domain"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
)

// TeamUseCase casos de uso de equipos y membresías. Los roles son etiquetas
// de presentación: la autorización efectiva vive en la capa de políticas del
// almacén externo.
type TeamUseCase struct {
	repo repository.TeamRepository
}

// NewTeamUseCase construye el caso de uso.
func NewTeamUseCase(repo repository.TeamRepository) *TeamUseCase {
	return &TeamUseCase{repo: repo}
}

// Create crea un equipo y agrega al creador como owner.
func (uc *TeamUseCase) Create(ctx context.Context, userID string, in dto.CreateTeamRequest) (*dto.MembershipResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	team := &entity.Team{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, team); err != nil {
		return nil, err
	}
	membership := &entity.Membership{
		TeamID:   team.ID,
		TeamName: team.Name,
		UserID:   userID,
		Role:     entity.RoleOwner,
	}
	if err := uc.repo.AddMember(ctx, membership); err != nil {
		return nil, err
	}
	return toMembershipResponse(membership), nil
}

// Memberships lista los equipos del usuario con su rol.
func (uc *TeamUseCase) Memberships(ctx context.Context, userID string) ([]dto.MembershipResponse, error) {
	list, err := uc.repo.ListMemberships(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MembershipResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMembershipResponse(m))
	}
	return items, nil
}

// Membership devuelve la membresía del usuario en el equipo, o ErrNotMember.
func (uc *TeamUseCase) Membership(ctx context.Context, teamID, userID string) (*dto.MembershipResponse, error) {
	m, err := uc.repo.GetMembership(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotMember
	}
	return toMembershipResponse(m), nil
}

func toMembershipResponse(m *entity.Membership) *dto.MembershipResponse {
	return &dto.MembershipResponse{
		TeamID:   m.TeamID,
		TeamName: m.TeamName,
		Role:     m.Role,
	}
}
