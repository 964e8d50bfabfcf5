package entity

import "time"

// Roles dentro de un equipo. Son etiquetas de presentación: la autorización
// efectiva la aplica la capa de políticas del almacén externo, nunca este
// servicio (ver decisión en DESIGN.md).
const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Team agrupa usuarios y acota el inventario (multi-tenant por team_id).
type Team struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Membership es la pertenencia de un usuario a un equipo con su rol.
type Membership struct {
	TeamID   string
	TeamName string
	UserID   string
	Role     string
}
