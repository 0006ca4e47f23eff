package repository

import (
	"context"

	"tarefas_webapp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Categories are global; there is no per-user scoping on this table.
type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nome, cor FROM categorias ORDER BY nome ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *CategoryRepository) Insert(ctx context.Context, c *domain.Category) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO categorias (nome, cor) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Color,
	).Scan(&c.ID)
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE categorias SET nome = $1, cor = $2 WHERE id = $3`,
		c.Name, c.Color, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
