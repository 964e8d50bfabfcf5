package repository

import (
	"context"

	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
)

// UserRepository es el puerto de persistencia de usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
