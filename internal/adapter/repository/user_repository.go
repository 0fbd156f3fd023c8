package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pos-ceramica/internal/domain/user"
)

// Erros específicos do repositório
var (
	ErrUserNotFound   = errors.New("usuário não encontrado")
	ErrUsernameExists = errors.New("já existe usuário com este nome de acesso")
)

const userColumns = `
	id, name, username, password, role, status, failed_attempts,
	last_login_at, created_at, updated_at`

// UserRepository implementa a interface user.Repository usando PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	var role, status string
	err := row.Scan(
		&u.ID, &u.Name, &u.Username, &u.Password, &role, &status,
		&u.FailedAttempts, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao ler usuário: %w", err)
	}
	u.Role = user.Role(role)
	u.Status = user.Status(status)
	return u, nil
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		u.ID, u.Name, u.Username, u.Password, string(u.Role), string(u.Status),
		u.FailedAttempts, u.LastLoginAt, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrUsernameExists
		}
		return fmt.Errorf("falha ao criar usuário: %w", err)
	}
	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// FindByUsername implementa user.Repository.FindByUsername
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, error) {
	query := `SELECT` + userColumns + ` FROM users ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	defer rows.Close()

	var out []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users SET
			name = $2, username = $3, role = $4, status = $5,
			failed_attempts = $6, last_login_at = $7, updated_at = $8
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		u.ID, u.Name, u.Username, string(u.Role), string(u.Status),
		u.FailedAttempts, u.LastLoginAt, u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrUsernameExists
		}
		return fmt.Errorf("falha ao atualizar usuário: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete implementa user.Repository.Delete
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("falha ao remover usuário: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateStatus implementa user.Repository.UpdateStatus
func (r *UserRepository) UpdateStatus(ctx context.Context, id string, status user.Status) error {
	query := `UPDATE users SET status = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do usuário: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdatePassword implementa user.Repository.UpdatePassword
func (r *UserRepository) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	query := `UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, hashedPassword)
	if err != nil {
		return fmt.Errorf("falha ao atualizar senha do usuário: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Count implementa user.Repository.Count
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar usuários: %w", err)
	}
	return count, nil
}

// ExistsByUsername implementa user.Repository.ExistsByUsername
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	if err := r.db.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("falha ao verificar nome de acesso: %w", err)
	}
	return exists, nil
}

// AuthLogRepository implementa a interface user.AuthLogRepository
type AuthLogRepository struct {
	db *pgxpool.Pool
}

// NewAuthLogRepository cria uma nova instância de AuthLogRepository
func NewAuthLogRepository(db *pgxpool.Pool) user.AuthLogRepository {
	return &AuthLogRepository{db: db}
}

func collectAuthLogs(rows pgx.Rows) ([]*user.AuthLog, error) {
	defer rows.Close()
	var out []*user.AuthLog
	for rows.Next() {
		l := &user.AuthLog{}
		if err := rows.Scan(&l.ID, &l.Username, &l.UserID, &l.Success, &l.IP, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler registro de autenticação: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Create implementa user.AuthLogRepository.Create
func (r *AuthLogRepository) Create(ctx context.Context, log *user.AuthLog) error {
	query := `
		INSERT INTO auth_logs (id, username, user_id, success, ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, log.ID, log.Username, log.UserID, log.Success, log.IP, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("falha ao registrar tentativa de autenticação: %w", err)
	}
	return nil
}

// FindByUser implementa user.AuthLogRepository.FindByUser
func (r *AuthLogRepository) FindByUser(ctx context.Context, userID string, limit, offset int) ([]*user.AuthLog, error) {
	query := `
		SELECT id, username, user_id, success, ip, created_at
		FROM auth_logs WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar tentativas de autenticação do usuário: %w", err)
	}
	return collectAuthLogs(rows)
}

// List implementa user.AuthLogRepository.List
func (r *AuthLogRepository) List(ctx context.Context, limit, offset int) ([]*user.AuthLog, error) {
	query := `
		SELECT id, username, user_id, success, ip, created_at
		FROM auth_logs
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar tentativas de autenticação: %w", err)
	}
	return collectAuthLogs(rows)
}
