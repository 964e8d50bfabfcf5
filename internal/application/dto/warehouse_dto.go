package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega. El ID se deriva del
// nombre como slug.
type CreateWarehouseRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateWarehouseRequest entrada para renombrar una bodega. El ID no cambia.
type UpdateWarehouseRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
