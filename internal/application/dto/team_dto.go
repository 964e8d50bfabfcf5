package dto

// CreateTeamRequest entrada para crear un equipo.
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// MembershipResponse membresía del usuario en un equipo. El rol es una
// etiqueta de presentación; este servicio no lo usa para autorizar.
type MembershipResponse struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	Role     string `json:"role"`
}
