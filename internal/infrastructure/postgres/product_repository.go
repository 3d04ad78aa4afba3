package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fruver-api/internal/domain"
	"github.com/jhoicas/fruver-api/internal/domain/entity"
	"github.com/jhoicas/fruver-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta un producto y devuelve el id generado.
func (r *ProductRepo) Create(ctx context.Context, in repository.CreateProductParams) (int64, error) {
	const query = `
		INSERT INTO productos (nombre, precio, dias_para_vencimiento)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id int64
	if err := r.q.QueryRow(ctx, query, in.Nombre, in.Precio, in.DiasParaVencimiento).Scan(&id); err != nil {
		return 0, storeError("insert producto", err)
	}
	return id, nil
}

// GetIDByName busca el id de un producto por nombre exacto.
func (r *ProductRepo) GetIDByName(ctx context.Context, nombre string) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `SELECT id FROM productos WHERE nombre = $1 ORDER BY id LIMIT 1`, nombre).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, storeError("get producto por nombre", err)
	}
	return id, nil
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	const query = `
		SELECT id, nombre, precio, dias_para_vencimiento
		FROM productos ORDER BY id`
	return r.list(ctx, "list productos", query)
}

// ListRecent devuelve los últimos limit productos por id descendente.
func (r *ProductRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	const query = `
		SELECT id, nombre, precio, dias_para_vencimiento
		FROM productos ORDER BY id DESC LIMIT $1`
	return r.list(ctx, "list productos recientes", query, limit)
}

func (r *ProductRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer rows.Close()
	list := []*entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Precio, &p.DiasParaVencimiento); err != nil {
			return nil, storeError(op+" scan", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(op, err)
	}
	return list, nil
}
