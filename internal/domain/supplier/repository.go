package supplier

import (
	"context"
)

// Repository define a interface para operações de repositório de fornecedores
type Repository interface {
	// Create cria um novo fornecedor
	Create(ctx context.Context, s *Supplier) error

	// FindByID busca um fornecedor pelo ID
	FindByID(ctx context.Context, id string) (*Supplier, error)

	// List lista os fornecedores com paginação
	List(ctx context.Context, limit, offset int) ([]*Supplier, error)

	// FindByName busca fornecedores pelo nome ou razão social
	FindByName(ctx context.Context, name string, limit, offset int) ([]*Supplier, error)

	// FindByStatus busca fornecedores por status
	FindByStatus(ctx context.Context, status Status, limit, offset int) ([]*Supplier, error)

	// Update atualiza os dados cadastrais de um fornecedor
	Update(ctx context.Context, s *Supplier) error

	// Delete remove um fornecedor sem histórico vinculado
	Delete(ctx context.Context, id string) error

	// Count conta o total de fornecedores
	Count(ctx context.Context) (int, error)

	// Exists verifica se um fornecedor existe
	Exists(ctx context.Context, id string) (bool, error)

	// HasHistory verifica se o fornecedor possui produtos ou compras vinculados
	HasHistory(ctx context.Context, id string) (bool, error)
}
