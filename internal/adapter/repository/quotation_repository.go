package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pos-ceramica/internal/domain/quotation"
)

// Erros específicos do repositório
var ErrQuotationNotFound = errors.New("orçamento não encontrado")

const quotationColumns = `
	id, date, valid_until, customer_id, customer_name, items, subtotal,
	discount, tax, total, status, note, terms, created_by, created_at, updated_at`

// QuotationRepository implementa a interface quotation.Repository usando PostgreSQL
type QuotationRepository struct {
	db *pgxpool.Pool
}

// NewQuotationRepository cria uma nova instância de QuotationRepository
func NewQuotationRepository(db *pgxpool.Pool) quotation.Repository {
	return &QuotationRepository{db: db}
}

func scanQuotation(row pgx.Row) (*quotation.Quotation, error) {
	q := &quotation.Quotation{}
	var status string
	var itemsJSON []byte
	err := row.Scan(
		&q.ID, &q.Date, &q.ValidUntil, &q.CustomerID, &q.CustomerName, &itemsJSON,
		&q.Subtotal, &q.Discount, &q.Tax, &q.Total, &status, &q.Note, &q.Terms,
		&q.CreatedBy, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuotationNotFound
		}
		return nil, fmt.Errorf("falha ao ler orçamento: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &q.Items); err != nil {
		return nil, fmt.Errorf("falha ao decodificar itens do orçamento: %w", err)
	}
	q.Status = quotation.Status(status)
	return q, nil
}

func collectQuotations(rows pgx.Rows) ([]*quotation.Quotation, error) {
	defer rows.Close()
	var out []*quotation.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Create implementa quotation.Repository.Create
func (r *QuotationRepository) Create(ctx context.Context, q *quotation.Quotation) error {
	itemsJSON, err := json.Marshal(q.Items)
	if err != nil {
		return fmt.Errorf("falha ao codificar itens do orçamento: %w", err)
	}

	query := `
		INSERT INTO quotations (` + quotationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err = r.db.Exec(ctx, query,
		q.ID, q.Date, q.ValidUntil, q.CustomerID, q.CustomerName, itemsJSON,
		q.Subtotal, q.Discount, q.Tax, q.Total, string(q.Status), q.Note, q.Terms,
		q.CreatedBy, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao criar orçamento: %w", err)
	}
	return nil
}

// FindByID implementa quotation.Repository.FindByID
func (r *QuotationRepository) FindByID(ctx context.Context, id string) (*quotation.Quotation, error) {
	query := `SELECT` + quotationColumns + ` FROM quotations WHERE id = $1`
	return scanQuotation(r.db.QueryRow(ctx, query, id))
}

// List implementa quotation.Repository.List
func (r *QuotationRepository) List(ctx context.Context, limit, offset int) ([]*quotation.Quotation, error) {
	query := `SELECT` + quotationColumns + ` FROM quotations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar orçamentos: %w", err)
	}
	return collectQuotations(rows)
}

// FindByCustomer implementa quotation.Repository.FindByCustomer
func (r *QuotationRepository) FindByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*quotation.Quotation, error) {
	query := `SELECT` + quotationColumns + `
		FROM quotations WHERE customer_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar orçamentos do cliente: %w", err)
	}
	return collectQuotations(rows)
}

// FindByStatus implementa quotation.Repository.FindByStatus
func (r *QuotationRepository) FindByStatus(ctx context.Context, status quotation.Status, limit, offset int) ([]*quotation.Quotation, error) {
	query := `SELECT` + quotationColumns + `
		FROM quotations WHERE status = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar orçamentos por status: %w", err)
	}
	return collectQuotations(rows)
}

// Update implementa quotation.Repository.Update
func (r *QuotationRepository) Update(ctx context.Context, q *quotation.Quotation) error {
	itemsJSON, err := json.Marshal(q.Items)
	if err != nil {
		return fmt.Errorf("falha ao codificar itens do orçamento: %w", err)
	}

	query := `
		UPDATE quotations SET
			valid_until = $2, customer_id = $3, customer_name = $4, items = $5,
			subtotal = $6, discount = $7, tax = $8, total = $9, status = $10,
			note = $11, terms = $12, updated_at = $13
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		q.ID, q.ValidUntil, q.CustomerID, q.CustomerName, itemsJSON,
		q.Subtotal, q.Discount, q.Tax, q.Total, string(q.Status),
		q.Note, q.Terms, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar orçamento: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrQuotationNotFound
	}
	return nil
}

// Delete implementa quotation.Repository.Delete
func (r *QuotationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM quotations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("falha ao remover orçamento: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrQuotationNotFound
	}
	return nil
}
