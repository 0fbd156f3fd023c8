package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pos-ceramica/internal/domain/customer"
)

// Erros específicos do repositório
var (
	ErrCustomerNotFound   = errors.New("cliente não encontrado")
	ErrCustomerHasHistory = errors.New("cliente possui faturas vinculadas")
)

const customerColumns = `
	id, name, mobile, email, cnic, address, city, opening_balance, current_balance,
	credit_limit, allow_credit, status, notes, created_at, updated_at`

// CustomerRepository implementa a interface customer.Repository usando PostgreSQL
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{db: db}
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	c := &customer.Customer{}
	var status string
	err := row.Scan(
		&c.ID, &c.Name, &c.Mobile, &c.Email, &c.CNIC, &c.Address, &c.City,
		&c.OpeningBalance, &c.CurrentBalance, &c.CreditLimit, &c.AllowCredit,
		&status, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("falha ao ler cliente: %w", err)
	}
	c.Status = customer.Status(status)
	return c, nil
}

func collectCustomers(rows pgx.Rows) ([]*customer.Customer, error) {
	defer rows.Close()
	var out []*customer.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (
			id, name, mobile, email, cnic, address, city, opening_balance, current_balance,
			credit_limit, allow_credit, status, notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Mobile, c.Email, c.CNIC, c.Address, c.City,
		c.OpeningBalance, c.CurrentBalance, c.CreditLimit, c.AllowCredit,
		string(c.Status), c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir cliente: %w", err)
	}
	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	query := `SELECT` + customerColumns + ` FROM customers WHERE id = $1`
	return scanCustomer(r.db.QueryRow(ctx, query, id))
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*customer.Customer, error) {
	query := `SELECT` + customerColumns + ` FROM customers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar clientes: %w", err)
	}
	return collectCustomers(rows)
}

// FindByName implementa customer.Repository.FindByName
func (r *CustomerRepository) FindByName(ctx context.Context, name string, limit, offset int) ([]*customer.Customer, error) {
	query := `SELECT` + customerColumns + ` FROM customers WHERE name ILIKE $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, "%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar clientes por nome: %w", err)
	}
	return collectCustomers(rows)
}

// FindByStatus implementa customer.Repository.FindByStatus
func (r *CustomerRepository) FindByStatus(ctx context.Context, status customer.Status, limit, offset int) ([]*customer.Customer, error) {
	query := `SELECT` + customerColumns + ` FROM customers WHERE status = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar clientes por status: %w", err)
	}
	return collectCustomers(rows)
}

// Update implementa customer.Repository.Update. Os saldos não são
// atualizados por aqui: mudam apenas pelas operações do ledger.
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers SET
			name = $2, mobile = $3, email = $4, cnic = $5, address = $6, city = $7,
			credit_limit = $8, allow_credit = $9, status = $10, notes = $11, updated_at = $12
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Mobile, c.Email, c.CNIC, c.Address, c.City,
		c.CreditLimit, c.AllowCredit, string(c.Status), c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// Delete implementa customer.Repository.Delete
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	hasInvoices, err := r.HasInvoices(ctx, id)
	if err != nil {
		return err
	}
	if hasInvoices {
		return ErrCustomerHasHistory
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("falha ao remover cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// Count implementa customer.Repository.Count
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar clientes: %w", err)
	}
	return count, nil
}

// Exists implementa customer.Repository.Exists
func (r *CustomerRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar existência do cliente: %w", err)
	}
	return exists, nil
}

// HasInvoices implementa customer.Repository.HasInvoices
func (r *CustomerRepository) HasInvoices(ctx context.Context, id string) (bool, error) {
	var has bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM invoices WHERE customer_id = $1)`, id).Scan(&has)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar faturas do cliente: %w", err)
	}
	return has, nil
}
