package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pos-ceramica/internal/domain/ledger"
)

const ledgerColumns = `
	id, date, entity_type, entity_id, kind, description, debit, credit, balance,
	reference_id, created_at`

// LedgerRepository implementa a interface ledger.Repository usando
// PostgreSQL. Somente consulta: os lançamentos entram pela unidade de
// trabalho do orquestrador.
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository cria uma nova instância de LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) ledger.Repository {
	return &LedgerRepository{db: db}
}

func collectLedgerEntries(rows pgx.Rows) ([]*ledger.Entry, error) {
	defer rows.Close()
	var out []*ledger.Entry
	for rows.Next() {
		e := &ledger.Entry{}
		var entityType, kind string
		err := rows.Scan(
			&e.ID, &e.Date, &entityType, &e.EntityID, &kind, &e.Description,
			&e.Debit, &e.Credit, &e.Balance, &e.ReferenceID, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler lançamento: %w", err)
		}
		e.EntityType = ledger.EntityType(entityType)
		e.Kind = ledger.Kind(kind)
		out = append(out, e)
	}
	return out, rows.Err()
}

// FindByEntity implementa ledger.Repository.FindByEntity
func (r *LedgerRepository) FindByEntity(ctx context.Context, entityType ledger.EntityType, entityID string, limit, offset int) ([]*ledger.Entry, error) {
	query := `SELECT` + ledgerColumns + `
		FROM ledger_entries
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, string(entityType), entityID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar lançamentos: %w", err)
	}
	return collectLedgerEntries(rows)
}

// FindByPeriod implementa ledger.Repository.FindByPeriod
func (r *LedgerRepository) FindByPeriod(ctx context.Context, entityType ledger.EntityType, entityID string, from, to time.Time) ([]*ledger.Entry, error) {
	query := `SELECT` + ledgerColumns + `
		FROM ledger_entries
		WHERE entity_type = $1 AND entity_id = $2 AND date >= $3 AND date <= $4
		ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, string(entityType), entityID, from, to)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar lançamentos por período: %w", err)
	}
	return collectLedgerEntries(rows)
}

// FindByReference implementa ledger.Repository.FindByReference
func (r *LedgerRepository) FindByReference(ctx context.Context, referenceID string) ([]*ledger.Entry, error) {
	query := `SELECT` + ledgerColumns + `
		FROM ledger_entries
		WHERE reference_id = $1
		ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, referenceID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar lançamentos por referência: %w", err)
	}
	return collectLedgerEntries(rows)
}

// CountByEntity implementa ledger.Repository.CountByEntity
func (r *LedgerRepository) CountByEntity(ctx context.Context, entityType ledger.EntityType, entityID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM ledger_entries WHERE entity_type = $1 AND entity_id = $2`
	if err := r.db.QueryRow(ctx, query, string(entityType), entityID).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar lançamentos: %w", err)
	}
	return count, nil
}
