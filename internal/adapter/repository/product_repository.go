package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
)

// Erros específicos do repositório
var (
	ErrProductNotFound         = errors.New("produto não encontrado")
	ErrProductDuplicateBarcode = errors.New("produto com mesmo código de barras já existe")
	ErrCategoryNotFound        = errors.New("categoria não encontrada")
)

const productColumns = `
	id, name, sku, brand, category, size, unit, tiles_per_box, coverage_per_box,
	cost_price, sale_price, supplier_id, stock_qty, min_stock_alert, barcode,
	status, created_at, updated_at`

// ProductRepository implementa a interface product.Repository usando PostgreSQL
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	p := &product.Product{}
	var category, unit, status string
	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Brand, &category, &p.Size, &unit, &p.TilesPerBox,
		&p.CoveragePerBox, &p.CostPrice, &p.SalePrice, &p.SupplierID, &p.StockQty,
		&p.MinStockAlert, &p.Barcode, &status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("falha ao ler produto: %w", err)
	}
	p.Category = product.Category(category)
	p.Unit = product.UnitType(unit)
	p.Status = product.Status(status)
	return p, nil
}

func collectProducts(rows pgx.Rows) ([]*product.Product, error) {
	defer rows.Close()
	var out []*product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (
			id, name, sku, brand, category, size, unit, tiles_per_box, coverage_per_box,
			cost_price, sale_price, supplier_id, stock_qty, min_stock_alert, barcode,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.SKU, p.Brand, string(p.Category), p.Size, string(p.Unit),
		p.TilesPerBox, p.CoveragePerBox, p.CostPrice, p.SalePrice, p.SupplierID,
		p.StockQty, p.MinStockAlert, p.Barcode, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrProductDuplicateBarcode
		}
		return fmt.Errorf("falha ao inserir produto: %w", err)
	}
	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.db.QueryRow(ctx, query, id))
}

// FindByBarcode implementa product.Repository.FindByBarcode
func (r *ProductRepository) FindByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE barcode = $1`
	return scanProduct(r.db.QueryRow(ctx, query, barcode))
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	query := `SELECT` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar produtos: %w", err)
	}
	return collectProducts(rows)
}

// FindByName implementa product.Repository.FindByName
func (r *ProductRepository) FindByName(ctx context.Context, name string, limit, offset int) ([]*product.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE name ILIKE $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, "%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar produtos por nome: %w", err)
	}
	return collectProducts(rows)
}

// FindByCategory implementa product.Repository.FindByCategory
func (r *ProductRepository) FindByCategory(ctx context.Context, category product.Category, limit, offset int) ([]*product.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE category = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, string(category), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar produtos por categoria: %w", err)
	}
	return collectProducts(rows)
}

// FindBySupplier implementa product.Repository.FindBySupplier
func (r *ProductRepository) FindBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*product.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE supplier_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, supplierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar produtos por fornecedor: %w", err)
	}
	return collectProducts(rows)
}

// FindLowStock implementa product.Repository.FindLowStock
func (r *ProductRepository) FindLowStock(ctx context.Context) ([]*product.Product, error) {
	query := `SELECT` + productColumns + `
		FROM products
		WHERE min_stock_alert > 0 AND stock_qty <= min_stock_alert AND status = 'active'
		ORDER BY stock_qty`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar produtos com estoque baixo: %w", err)
	}
	return collectProducts(rows)
}

// Update implementa product.Repository.Update. O saldo de estoque não é
// atualizado por aqui: só muda dentro da unidade de trabalho do ledger.
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products SET
			name = $2, sku = $3, brand = $4, category = $5, size = $6, unit = $7,
			tiles_per_box = $8, coverage_per_box = $9, cost_price = $10, sale_price = $11,
			supplier_id = $12, min_stock_alert = $13, barcode = $14, status = $15,
			updated_at = $16
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.SKU, p.Brand, string(p.Category), p.Size, string(p.Unit),
		p.TilesPerBox, p.CoveragePerBox, p.CostPrice, p.SalePrice, p.SupplierID,
		p.MinStockAlert, p.Barcode, string(p.Status), p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrProductDuplicateBarcode
		}
		return fmt.Errorf("falha ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("falha ao remover produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar produtos: %w", err)
	}
	return count, nil
}

// Exists implementa product.Repository.Exists
func (r *ProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar existência do produto: %w", err)
	}
	return exists, nil
}

// ExistsByBarcode implementa product.Repository.ExistsByBarcode
func (r *ProductRepository) ExistsByBarcode(ctx context.Context, barcode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE barcode = $1)`, barcode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar código de barras: %w", err)
	}
	return exists, nil
}
