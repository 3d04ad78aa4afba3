package postgres

import (
	"context"

	"github.com/jhoicas/fruver-api/internal/domain/entity"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo lectura de usuarios sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// List devuelve todos los usuarios.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre FROM usuario ORDER BY id`)
	if err != nil {
		return nil, storeError("list usuarios", err)
	}
	defer rows.Close()
	list := []*entity.User{}
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Nombre); err != nil {
			return nil, storeError("scan usuario", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list usuarios", err)
	}
	return list, nil
}
