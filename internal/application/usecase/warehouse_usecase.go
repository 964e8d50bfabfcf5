package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/oleo-stock/internal/application/dto"
	"github.com/tu-usuario/oleo-stock/internal/domain"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
	"github.com/tu-usuario/oleo-stock/pkg/slug"
)

// WarehouseUseCase casos de uso de bodegas. El ID se deriva del nombre como
// slug; borrar es desactivar: las celdas históricas de la bodega no se purgan
// del almacén, solo desaparecen del conjunto visible.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una bodega con ID derivado del nombre.
func (uc *WarehouseUseCase) Create(ctx context.Context, teamID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	id := slug.Make(in.Name)
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByID(ctx, teamID, id)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Active {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	if existing != nil {
		// La bodega existió y fue desactivada: reaparece con sus celdas históricas.
		existing.Name = in.Name
		existing.Active = true
		existing.UpdatedAt = now
		if err := uc.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return toWarehouseResponse(existing), nil
	}

	warehouse := &entity.Warehouse{
		ID:        id,
		TeamID:    teamID,
		Name:      in.Name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista las bodegas visibles del equipo.
func (uc *WarehouseUseCase) List(ctx context.Context, teamID string) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.ListActiveByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// Rename cambia el nombre visible; el ID (y las celdas que cuelgan de él) no
// cambia.
func (uc *WarehouseUseCase) Rename(ctx context.Context, teamID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, teamID, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse.Name = in.Name
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Deactivate quita la bodega del conjunto visible.
func (uc *WarehouseUseCase) Deactivate(ctx context.Context, teamID, id string) error {
	warehouse, err := uc.repo.GetByID(ctx, teamID, id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(ctx, teamID, id)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		TeamID:    w.TeamID,
		Name:      w.Name,
		Active:    w.Active,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
