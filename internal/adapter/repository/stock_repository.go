package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/ledger"
	"github.com/hugohenrick/pos-ceramica/internal/domain/stock"
)

const stockLogColumns = `
	id, date, product_id, kind, qty_change, old_stock, new_stock, reference_id, note, created_at`

// StockLogRepository implementa a interface stock.Repository usando
// PostgreSQL. Somente consulta: os lançamentos entram pela unidade de
// trabalho do orquestrador.
type StockLogRepository struct {
	db *pgxpool.Pool
}

// NewStockLogRepository cria uma nova instância de StockLogRepository
func NewStockLogRepository(db *pgxpool.Pool) stock.Repository {
	return &StockLogRepository{db: db}
}

func collectStockLogs(rows pgx.Rows) ([]*stock.Log, error) {
	defer rows.Close()
	var out []*stock.Log
	for rows.Next() {
		l := &stock.Log{}
		var kind string
		err := rows.Scan(
			&l.ID, &l.Date, &l.ProductID, &kind, &l.QtyChange, &l.OldStock,
			&l.NewStock, &l.ReferenceID, &l.Note, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler lançamento de estoque: %w", err)
		}
		l.Kind = ledger.Kind(kind)
		out = append(out, l)
	}
	return out, rows.Err()
}

// FindByProduct implementa stock.Repository.FindByProduct
func (r *StockLogRepository) FindByProduct(ctx context.Context, productID string, limit, offset int) ([]*stock.Log, error) {
	query := `SELECT` + stockLogColumns + `
		FROM stock_logs
		WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar lançamentos de estoque: %w", err)
	}
	return collectStockLogs(rows)
}

// FindByPeriod implementa stock.Repository.FindByPeriod
func (r *StockLogRepository) FindByPeriod(ctx context.Context, productID string, from, to time.Time) ([]*stock.Log, error) {
	query := `SELECT` + stockLogColumns + `
		FROM stock_logs
		WHERE product_id = $1 AND date >= $2 AND date <= $3
		ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, productID, from, to)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar lançamentos por período: %w", err)
	}
	return collectStockLogs(rows)
}

// FindByReference implementa stock.Repository.FindByReference
func (r *StockLogRepository) FindByReference(ctx context.Context, referenceID string) ([]*stock.Log, error) {
	query := `SELECT` + stockLogColumns + `
		FROM stock_logs
		WHERE reference_id = $1
		ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, referenceID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar lançamentos por referência: %w", err)
	}
	return collectStockLogs(rows)
}

// SumByProduct implementa stock.Repository.SumByProduct
func (r *StockLogRepository) SumByProduct(ctx context.Context, productID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(qty_change), 0) FROM stock_logs WHERE product_id = $1`
	if err := r.db.QueryRow(ctx, query, productID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("falha ao somar lançamentos de estoque: %w", err)
	}
	return sum, nil
}
