package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pos-ceramica/internal/domain/supplier"
)

// Erros específicos do repositório
var (
	ErrSupplierNotFound   = errors.New("fornecedor não encontrado")
	ErrSupplierHasHistory = errors.New("fornecedor possui produtos ou compras vinculados")
)

const supplierColumns = `
	id, name, company_name, contact_person, mobile, email, address, ntn, status,
	notes, opening_balance, current_balance, created_at, updated_at`

// SupplierRepository implementa a interface supplier.Repository usando PostgreSQL
type SupplierRepository struct {
	db *pgxpool.Pool
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *pgxpool.Pool) supplier.Repository {
	return &SupplierRepository{db: db}
}

func scanSupplier(row pgx.Row) (*supplier.Supplier, error) {
	s := &supplier.Supplier{}
	var status string
	err := row.Scan(
		&s.ID, &s.Name, &s.CompanyName, &s.ContactPerson, &s.Mobile, &s.Email,
		&s.Address, &s.NTN, &status, &s.Notes, &s.OpeningBalance, &s.CurrentBalance,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("falha ao ler fornecedor: %w", err)
	}
	s.Status = supplier.Status(status)
	return s, nil
}

func collectSuppliers(rows pgx.Rows) ([]*supplier.Supplier, error) {
	defer rows.Close()
	var out []*supplier.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	query := `
		INSERT INTO suppliers (
			id, name, company_name, contact_person, mobile, email, address, ntn, status,
			notes, opening_balance, current_balance, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.CompanyName, s.ContactPerson, s.Mobile, s.Email, s.Address,
		s.NTN, string(s.Status), s.Notes, s.OpeningBalance, s.CurrentBalance,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir fornecedor: %w", err)
	}
	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	query := `SELECT` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return scanSupplier(r.db.QueryRow(ctx, query, id))
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context, limit, offset int) ([]*supplier.Supplier, error) {
	query := `SELECT` + supplierColumns + ` FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar fornecedores: %w", err)
	}
	return collectSuppliers(rows)
}

// FindByName implementa supplier.Repository.FindByName
func (r *SupplierRepository) FindByName(ctx context.Context, name string, limit, offset int) ([]*supplier.Supplier, error) {
	query := `SELECT` + supplierColumns + `
		FROM suppliers
		WHERE name ILIKE $1 OR company_name ILIKE $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, "%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar fornecedores por nome: %w", err)
	}
	return collectSuppliers(rows)
}

// FindByStatus implementa supplier.Repository.FindByStatus
func (r *SupplierRepository) FindByStatus(ctx context.Context, status supplier.Status, limit, offset int) ([]*supplier.Supplier, error) {
	query := `SELECT` + supplierColumns + ` FROM suppliers WHERE status = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar fornecedores por status: %w", err)
	}
	return collectSuppliers(rows)
}

// Update implementa supplier.Repository.Update. Os saldos não são
// atualizados por aqui: mudam apenas pelas operações do ledger.
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	query := `
		UPDATE suppliers SET
			name = $2, company_name = $3, contact_person = $4, mobile = $5, email = $6,
			address = $7, ntn = $8, status = $9, notes = $10, updated_at = $11
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.CompanyName, s.ContactPerson, s.Mobile, s.Email,
		s.Address, s.NTN, string(s.Status), s.Notes, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// Delete implementa supplier.Repository.Delete
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	hasHistory, err := r.HasHistory(ctx, id)
	if err != nil {
		return err
	}
	if hasHistory {
		return ErrSupplierHasHistory
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("falha ao remover fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// Count implementa supplier.Repository.Count
func (r *SupplierRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar fornecedores: %w", err)
	}
	return count, nil
}

// Exists implementa supplier.Repository.Exists
func (r *SupplierRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM suppliers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar existência do fornecedor: %w", err)
	}
	return exists, nil
}

// HasHistory implementa supplier.Repository.HasHistory
func (r *SupplierRepository) HasHistory(ctx context.Context, id string) (bool, error) {
	var has bool
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE supplier_id = $1)
		OR EXISTS(SELECT 1 FROM purchases WHERE supplier_id = $1)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&has); err != nil {
		return false, fmt.Errorf("falha ao verificar histórico do fornecedor: %w", err)
	}
	return has, nil
}
