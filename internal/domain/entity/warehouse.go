package entity

import "time"

// Warehouse representa una bodega donde se almacena el aceite.
// El ID es un slug derivado del nombre. Desactivar una bodega la quita del
// conjunto visible, pero las celdas históricas asociadas a su ID no se
// purgan del almacén ("los datos quedan, la vista no").
type Warehouse struct {
	ID        string
	TeamID    string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
