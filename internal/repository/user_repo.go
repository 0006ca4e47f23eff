package repository

import (
	"context"
	"errors"

	"tarefas_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, nome, email, COALESCE(endereco, ''), COALESCE(cidade, ''), COALESCE(telefone, ''), data_cadastro`

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM usuarios ORDER BY nome ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

// Search matches the term as a substring of name or email.
func (r *UserRepository) Search(ctx context.Context, term string) ([]domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM usuarios
		 WHERE nome ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		 ORDER BY nome ASC`,
		term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Address, &u.City, &u.Phone, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Address, &u.City, &u.Phone, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail also loads the password hash; it backs the login path.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT id, nome, email, senha, COALESCE(endereco, ''), COALESCE(cidade, ''), COALESCE(telefone, ''), data_cadastro
		 FROM usuarios WHERE email = $1`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Address, &u.City, &u.Phone, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailExists reports whether another user already holds the email.
// excludeID skips the record being updated; pass 0 on insert.
func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM usuarios WHERE email = $1 AND id != $2)`,
		email, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO usuarios (nome, email, senha, endereco, cidade, telefone)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, data_cadastro`,
		u.Name, u.Email, u.PasswordHash, u.Address, u.City, u.Phone,
	).Scan(&u.ID, &u.CreatedAt)
}

// Update rewrites the user's profile. The stored password hash is
// replaced only when withPassword is set; otherwise it is left alone.
func (r *UserRepository) Update(ctx context.Context, u *domain.User, withPassword bool) error {
	var (
		tag pgconn.CommandTag
		err error
	)
	if withPassword {
		tag, err = r.db.Exec(ctx,
			`UPDATE usuarios SET nome = $1, email = $2, senha = $3, endereco = $4, cidade = $5, telefone = $6
			 WHERE id = $7`,
			u.Name, u.Email, u.PasswordHash, u.Address, u.City, u.Phone, u.ID)
	} else {
		tag, err = r.db.Exec(ctx,
			`UPDATE usuarios SET nome = $1, email = $2, endereco = $3, cidade = $4, telefone = $5
			 WHERE id = $6`,
			u.Name, u.Email, u.Address, u.City, u.Phone, u.ID)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
