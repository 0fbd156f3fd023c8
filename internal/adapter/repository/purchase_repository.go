package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pos-ceramica/internal/domain/purchase"
)

// Erros específicos do repositório
var ErrPurchaseNotFound = errors.New("nota de compra não encontrada")

const purchaseColumns = `
	id, date, supplier_id, items, total_amount, status, created_at`

// PurchaseRepository implementa a interface purchase.Repository usando
// PostgreSQL. Notas entram pela unidade de trabalho do orquestrador.
type PurchaseRepository struct {
	db *pgxpool.Pool
}

// NewPurchaseRepository cria uma nova instância de PurchaseRepository
func NewPurchaseRepository(db *pgxpool.Pool) purchase.Repository {
	return &PurchaseRepository{db: db}
}

func scanPurchaseInvoice(row pgx.Row) (*purchase.Invoice, error) {
	inv := &purchase.Invoice{}
	var status string
	var itemsJSON []byte
	err := row.Scan(
		&inv.ID, &inv.Date, &inv.SupplierID, &itemsJSON, &inv.TotalAmount,
		&status, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("falha ao ler nota de compra: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &inv.Items); err != nil {
		return nil, fmt.Errorf("falha ao decodificar itens da compra: %w", err)
	}
	inv.Status = purchase.Status(status)
	return inv, nil
}

func collectPurchaseInvoices(rows pgx.Rows) ([]*purchase.Invoice, error) {
	defer rows.Close()
	var out []*purchase.Invoice
	for rows.Next() {
		inv, err := scanPurchaseInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// FindByID implementa purchase.Repository.FindByID
func (r *PurchaseRepository) FindByID(ctx context.Context, id string) (*purchase.Invoice, error) {
	query := `SELECT` + purchaseColumns + ` FROM purchases WHERE id = $1`
	return scanPurchaseInvoice(r.db.QueryRow(ctx, query, id))
}

// List implementa purchase.Repository.List
func (r *PurchaseRepository) List(ctx context.Context, limit, offset int) ([]*purchase.Invoice, error) {
	query := `SELECT` + purchaseColumns + ` FROM purchases ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar notas de compra: %w", err)
	}
	return collectPurchaseInvoices(rows)
}

// FindBySupplier implementa purchase.Repository.FindBySupplier
func (r *PurchaseRepository) FindBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*purchase.Invoice, error) {
	query := `SELECT` + purchaseColumns + `
		FROM purchases WHERE supplier_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, supplierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar notas do fornecedor: %w", err)
	}
	return collectPurchaseInvoices(rows)
}

// FindByPeriod implementa purchase.Repository.FindByPeriod
func (r *PurchaseRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]*purchase.Invoice, error) {
	query := `SELECT` + purchaseColumns + `
		FROM purchases WHERE date >= $1 AND date <= $2
		ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar notas por período: %w", err)
	}
	return collectPurchaseInvoices(rows)
}

// Count implementa purchase.Repository.Count
func (r *PurchaseRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM purchases`).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar notas de compra: %w", err)
	}
	return count, nil
}
