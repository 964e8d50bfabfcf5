package repository

import (
	"context"

	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
)

// WarehouseRepository es el puerto de persistencia de bodegas.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, teamID, id string) (*entity.Warehouse, error)
	// ListActiveByTeam devuelve solo las bodegas del conjunto visible.
	ListActiveByTeam(ctx context.Context, teamID string) ([]*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	// Deactivate quita la bodega del conjunto visible sin purgar sus celdas.
	Deactivate(ctx context.Context, teamID, id string) error
}
