package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
)

// CategoryRepository implementa product.CategoryRepository usando PostgreSQL
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) product.CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create implementa product.CategoryRepository.Create
func (r *CategoryRepository) Create(ctx context.Context, c *product.CategoryConfig) error {
	query := `
		INSERT INTO categories (id, name, type, prefix, default_unit, tax_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, string(c.Type), c.Prefix, string(c.DefaultUnit), c.TaxRate, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir categoria: %w", err)
	}
	return nil
}

// FindByID implementa product.CategoryRepository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*product.CategoryConfig, error) {
	query := `SELECT id, name, type, prefix, default_unit, tax_rate, created_at, updated_at
		FROM categories WHERE id = $1`

	c := &product.CategoryConfig{}
	var typ, unit string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &typ, &c.Prefix, &unit, &c.TaxRate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("falha ao buscar categoria: %w", err)
	}
	c.Type = product.Category(typ)
	c.DefaultUnit = product.UnitType(unit)
	return c, nil
}

// List implementa product.CategoryRepository.List
func (r *CategoryRepository) List(ctx context.Context) ([]*product.CategoryConfig, error) {
	query := `SELECT id, name, type, prefix, default_unit, tax_rate, created_at, updated_at
		FROM categories ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar categorias: %w", err)
	}
	defer rows.Close()

	var out []*product.CategoryConfig
	for rows.Next() {
		c := &product.CategoryConfig{}
		var typ, unit string
		if err := rows.Scan(&c.ID, &c.Name, &typ, &c.Prefix, &unit, &c.TaxRate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler categoria: %w", err)
		}
		c.Type = product.Category(typ)
		c.DefaultUnit = product.UnitType(unit)
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update implementa product.CategoryRepository.Update
func (r *CategoryRepository) Update(ctx context.Context, c *product.CategoryConfig) error {
	query := `
		UPDATE categories SET
			name = $2, type = $3, prefix = $4, default_unit = $5, tax_rate = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		c.ID, c.Name, string(c.Type), c.Prefix, string(c.DefaultUnit), c.TaxRate, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete implementa product.CategoryRepository.Delete
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("falha ao remover categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
