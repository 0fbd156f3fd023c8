package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByBarcode busca um produto pelo código de barras
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// List lista os produtos com paginação
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// FindByName busca produtos pelo nome (busca parcial)
	FindByName(ctx context.Context, name string, limit, offset int) ([]*Product, error)

	// FindByCategory busca produtos por categoria
	FindByCategory(ctx context.Context, category Category, limit, offset int) ([]*Product, error)

	// FindBySupplier busca produtos de um fornecedor
	FindBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*Product, error)

	// FindLowStock lista os produtos com estoque abaixo do alerta mínimo
	FindLowStock(ctx context.Context) ([]*Product, error)

	// Update atualiza os dados cadastrais de um produto
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error

	// Count conta o total de produtos
	Count(ctx context.Context) (int, error)

	// Exists verifica se um produto existe
	Exists(ctx context.Context, id string) (bool, error)

	// ExistsByBarcode verifica se já existe produto com o código de barras
	ExistsByBarcode(ctx context.Context, barcode string) (bool, error)
}

// CategoryRepository define a interface para o cadastro de categorias
type CategoryRepository interface {
	// Create cria uma nova categoria
	Create(ctx context.Context, c *CategoryConfig) error

	// FindByID busca uma categoria pelo ID
	FindByID(ctx context.Context, id string) (*CategoryConfig, error)

	// List lista todas as categorias
	List(ctx context.Context) ([]*CategoryConfig, error)

	// Update atualiza uma categoria
	Update(ctx context.Context, c *CategoryConfig) error

	// Delete remove uma categoria
	Delete(ctx context.Context, id string) error
}
