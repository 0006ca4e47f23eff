package repository

import (
	"context"

	"tarefas_webapp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectRepository scopes every mutation by the owning user id, so a
// caller cannot touch another user's project by guessing an id.
type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nome, COALESCE(descricao, ''), usuario_id, data_criacao
		 FROM projetos
		 WHERE usuario_id = $1
		 ORDER BY nome ASC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.UserID, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// BelongsToUser reports whether the project exists and is owned by the
// user. Task writes use it to keep ownership transitive.
func (r *ProjectRepository) BelongsToUser(ctx context.Context, projectID, userID int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM projetos WHERE id = $1 AND usuario_id = $2)`,
		projectID, userID,
	).Scan(&ok)
	return ok, err
}

func (r *ProjectRepository) Insert(ctx context.Context, p *domain.Project) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO projetos (nome, descricao, usuario_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, data_criacao`,
		p.Name, p.Description, p.UserID,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE projetos SET nome = $1, descricao = $2
		 WHERE id = $3 AND usuario_id = $4`,
		p.Name, p.Description, p.ID, p.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the project and its tasks in one transaction. The
// cascade is explicit application logic rather than a bare reliance on
// the schema's referential action.
func (r *ProjectRepository) Delete(ctx context.Context, id, userID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var owned bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM projetos WHERE id = $1 AND usuario_id = $2)`,
		id, userID,
	).Scan(&owned)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM tarefas WHERE projeto_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM projetos WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
