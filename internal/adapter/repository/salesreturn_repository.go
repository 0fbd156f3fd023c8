package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pos-ceramica/internal/domain/salesreturn"
)

// Erros específicos do repositório
var ErrReturnNotFound = errors.New("devolução não encontrada")

const returnColumns = `
	id, sale_invoice_id, customer_id, date, items, total_amount, refund_method,
	account_id, note, created_at`

// SalesReturnRepository implementa a interface salesreturn.Repository
// usando PostgreSQL. Devoluções entram pela unidade de trabalho do
// orquestrador.
type SalesReturnRepository struct {
	db *pgxpool.Pool
}

// NewSalesReturnRepository cria uma nova instância de SalesReturnRepository
func NewSalesReturnRepository(db *pgxpool.Pool) salesreturn.Repository {
	return &SalesReturnRepository{db: db}
}

func scanReturnInvoice(row pgx.Row) (*salesreturn.Invoice, error) {
	inv := &salesreturn.Invoice{}
	var method string
	var itemsJSON []byte
	err := row.Scan(
		&inv.ID, &inv.SaleInvoiceID, &inv.CustomerID, &inv.Date, &itemsJSON,
		&inv.TotalAmount, &method, &inv.AccountID, &inv.Note, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReturnNotFound
		}
		return nil, fmt.Errorf("falha ao ler devolução: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &inv.Items); err != nil {
		return nil, fmt.Errorf("falha ao decodificar itens da devolução: %w", err)
	}
	inv.RefundMethod = salesreturn.RefundMethod(method)
	return inv, nil
}

func collectReturnInvoices(rows pgx.Rows) ([]*salesreturn.Invoice, error) {
	defer rows.Close()
	var out []*salesreturn.Invoice
	for rows.Next() {
		inv, err := scanReturnInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// FindByID implementa salesreturn.Repository.FindByID
func (r *SalesReturnRepository) FindByID(ctx context.Context, id string) (*salesreturn.Invoice, error) {
	query := `SELECT` + returnColumns + ` FROM returns WHERE id = $1`
	return scanReturnInvoice(r.db.QueryRow(ctx, query, id))
}

// FindBySaleInvoice implementa salesreturn.Repository.FindBySaleInvoice
func (r *SalesReturnRepository) FindBySaleInvoice(ctx context.Context, saleInvoiceID string) ([]*salesreturn.Invoice, error) {
	query := `SELECT` + returnColumns + ` FROM returns WHERE sale_invoice_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, saleInvoiceID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar devoluções da venda: %w", err)
	}
	return collectReturnInvoices(rows)
}

// List implementa salesreturn.Repository.List
func (r *SalesReturnRepository) List(ctx context.Context, limit, offset int) ([]*salesreturn.Invoice, error) {
	query := `SELECT` + returnColumns + ` FROM returns ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar devoluções: %w", err)
	}
	return collectReturnInvoices(rows)
}

// FindByPeriod implementa salesreturn.Repository.FindByPeriod
func (r *SalesReturnRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]*salesreturn.Invoice, error) {
	query := `SELECT` + returnColumns + `
		FROM returns WHERE date >= $1 AND date <= $2
		ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar devoluções por período: %w", err)
	}
	return collectReturnInvoices(rows)
}

// Count implementa salesreturn.Repository.Count
func (r *SalesReturnRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM returns`).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar devoluções: %w", err)
	}
	return count, nil
}
