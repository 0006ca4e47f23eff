package repository

import (
	"context"

	"tarefas_webapp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepository scopes reads and writes through the owning project's
// user id; a task's effective owner is the project's owner.
type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByUser returns the user's tasks joined with the project name,
// ordered by due date with undated tasks last.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.titulo, COALESCE(t.descricao, ''), t.projeto_id, p.nome, t.data_limite, t.status
		 FROM tarefas t
		 JOIN projetos p ON t.projeto_id = p.id
		 WHERE p.usuario_id = $1
		 ORDER BY t.data_limite ASC NULLS LAST, t.id ASC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.ProjectID, &t.ProjectName, &t.DueDate, &t.Status); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Insert(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tarefas (titulo, descricao, projeto_id, data_limite, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		t.Title, t.Description, t.ProjectID, t.DueDate, t.Status,
	).Scan(&t.ID)
}

// Update rewrites the task, constrained to projects owned by userID on
// both sides: the row being updated and the project it is moved to.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task, userID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tarefas SET titulo = $1, descricao = $2, projeto_id = $3, data_limite = $4, status = $5
		 WHERE id = $6
		   AND projeto_id IN (SELECT id FROM projetos WHERE usuario_id = $7)`,
		t.Title, t.Description, t.ProjectID, t.DueDate, t.Status, t.ID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM tarefas
		 WHERE id = $1
		   AND projeto_id IN (SELECT id FROM projetos WHERE usuario_id = $2)`,
		id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
