package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pos-ceramica/internal/domain/settings"
)

// Erros específicos do repositório
var ErrSettingNotFound = errors.New("configuração não encontrada")

// SettingsRepository implementa a interface settings.Repository usando
// PostgreSQL. Cada chave guarda um bloco JSONB com as preferências da área.
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository cria uma nova instância de SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) settings.Repository {
	return &SettingsRepository{db: db}
}

// Get implementa settings.Repository.Get
func (r *SettingsRepository) Get(ctx context.Context, key string) (*settings.Setting, error) {
	s := &settings.Setting{}
	query := `SELECT key, value, updated_at FROM settings WHERE key = $1`
	err := r.db.QueryRow(ctx, query, key).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("falha ao ler configuração: %w", err)
	}
	return s, nil
}

// Upsert implementa settings.Repository.Upsert
func (r *SettingsRepository) Upsert(ctx context.Context, setting *settings.Setting) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query, setting.Key, []byte(setting.Value), setting.UpdatedAt)
	if err != nil {
		return fmt.Errorf("falha ao gravar configuração: %w", err)
	}
	return nil
}

// List implementa settings.Repository.List
func (r *SettingsRepository) List(ctx context.Context) ([]*settings.Setting, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar configurações: %w", err)
	}
	defer rows.Close()

	var out []*settings.Setting
	for rows.Next() {
		s := &settings.Setting{}
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler configuração: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
