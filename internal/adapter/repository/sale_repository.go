package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pos-ceramica/internal/domain/sale"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound = errors.New("fatura de venda não encontrada")
	ErrHeldNotFound = errors.New("venda em espera não encontrada")
)

const saleColumns = `
	id, date, customer_id, customer_name, items, subtotal, discount, tax, total,
	received_amount, change_amount, payments, status, note, created_at`

// SaleRepository implementa a interface sale.Repository usando
// PostgreSQL. Faturas entram pela unidade de trabalho do orquestrador;
// aqui só há consulta.
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{db: db}
}

func scanSaleInvoice(row pgx.Row) (*sale.Invoice, error) {
	inv := &sale.Invoice{}
	var status string
	var itemsJSON, paymentsJSON []byte
	err := row.Scan(
		&inv.ID, &inv.Date, &inv.CustomerID, &inv.CustomerName, &itemsJSON,
		&inv.Subtotal, &inv.Discount, &inv.Tax, &inv.Total, &inv.ReceivedAmount,
		&inv.ChangeAmount, &paymentsJSON, &status, &inv.Note, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("falha ao ler fatura: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &inv.Items); err != nil {
		return nil, fmt.Errorf("falha ao decodificar itens da fatura: %w", err)
	}
	if len(paymentsJSON) > 0 {
		if err := json.Unmarshal(paymentsJSON, &inv.Payments); err != nil {
			return nil, fmt.Errorf("falha ao decodificar pagamentos da fatura: %w", err)
		}
	}
	inv.Status = sale.Status(status)
	return inv, nil
}

func collectSaleInvoices(rows pgx.Rows) ([]*sale.Invoice, error) {
	defer rows.Close()
	var out []*sale.Invoice
	for rows.Next() {
		inv, err := scanSaleInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Invoice, error) {
	query := `SELECT` + saleColumns + ` FROM invoices WHERE id = $1`
	return scanSaleInvoice(r.db.QueryRow(ctx, query, id))
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Invoice, error) {
	query := `SELECT` + saleColumns + ` FROM invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar faturas: %w", err)
	}
	return collectSaleInvoices(rows)
}

// FindByCustomer implementa sale.Repository.FindByCustomer
func (r *SaleRepository) FindByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*sale.Invoice, error) {
	query := `SELECT` + saleColumns + `
		FROM invoices WHERE customer_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar faturas do cliente: %w", err)
	}
	return collectSaleInvoices(rows)
}

// FindByPeriod implementa sale.Repository.FindByPeriod
func (r *SaleRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]*sale.Invoice, error) {
	query := `SELECT` + saleColumns + `
		FROM invoices WHERE date >= $1 AND date <= $2
		ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar faturas por período: %w", err)
	}
	return collectSaleInvoices(rows)
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar faturas: %w", err)
	}
	return count, nil
}

// HeldInvoiceRepository implementa sale.HeldRepository usando PostgreSQL.
// Rascunhos ficam em tabela própria, fora das faturas definitivas.
type HeldInvoiceRepository struct {
	db *pgxpool.Pool
}

// NewHeldInvoiceRepository cria uma nova instância de HeldInvoiceRepository
func NewHeldInvoiceRepository(db *pgxpool.Pool) sale.HeldRepository {
	return &HeldInvoiceRepository{db: db}
}

// Save implementa sale.HeldRepository.Save
func (r *HeldInvoiceRepository) Save(ctx context.Context, inv *sale.Invoice) error {
	payload, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("falha ao codificar venda em espera: %w", err)
	}

	query := `
		INSERT INTO held_invoices (id, payload, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload`

	if _, err := r.db.Exec(ctx, query, inv.ID, payload, inv.CreatedAt); err != nil {
		return fmt.Errorf("falha ao gravar venda em espera: %w", err)
	}
	return nil
}

// FindByID implementa sale.HeldRepository.FindByID
func (r *HeldInvoiceRepository) FindByID(ctx context.Context, id string) (*sale.Invoice, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM held_invoices WHERE id = $1`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHeldNotFound
		}
		return nil, fmt.Errorf("falha ao buscar venda em espera: %w", err)
	}

	inv := &sale.Invoice{}
	if err := json.Unmarshal(payload, inv); err != nil {
		return nil, fmt.Errorf("falha ao decodificar venda em espera: %w", err)
	}
	return inv, nil
}

// List implementa sale.HeldRepository.List
func (r *HeldInvoiceRepository) List(ctx context.Context) ([]*sale.Invoice, error) {
	rows, err := r.db.Query(ctx, `SELECT payload FROM held_invoices ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar vendas em espera: %w", err)
	}
	defer rows.Close()

	var out []*sale.Invoice
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("falha ao ler venda em espera: %w", err)
		}
		inv := &sale.Invoice{}
		if err := json.Unmarshal(payload, inv); err != nil {
			return nil, fmt.Errorf("falha ao decodificar venda em espera: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// Delete implementa sale.HeldRepository.Delete
func (r *HeldInvoiceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM held_invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("falha ao remover venda em espera: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrHeldNotFound
	}
	return nil
}
