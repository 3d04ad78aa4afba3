package repository

import (
	"context"

	"github.com/jhoicas/fruver-api/internal/domain/entity"
)

// UserRepository define el puerto de lectura para User.
type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
}
