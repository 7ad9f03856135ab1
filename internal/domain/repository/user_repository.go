package repository

import (
	"context"

	"github.com/Khosrovf/Khosro8/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	// Create inserta el usuario y asigna el ID generado.
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail devuelve (nil, nil) si el email no está registrado.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
