package entity

import "time"

// User es un usuario autenticable del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
