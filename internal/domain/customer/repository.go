package customer

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// List lista os clientes com paginação
	List(ctx context.Context, limit, offset int) ([]*Customer, error)

	// FindByName busca clientes pelo nome (busca parcial)
	FindByName(ctx context.Context, name string, limit, offset int) ([]*Customer, error)

	// FindByStatus busca clientes por status
	FindByStatus(ctx context.Context, status Status, limit, offset int) ([]*Customer, error)

	// Update atualiza os dados cadastrais de um cliente
	Update(ctx context.Context, c *Customer) error

	// Delete remove um cliente sem histórico de vendas
	Delete(ctx context.Context, id string) error

	// Count conta o total de clientes
	Count(ctx context.Context) (int, error)

	// Exists verifica se um cliente existe
	Exists(ctx context.Context, id string) (bool, error)

	// HasInvoices verifica se o cliente possui faturas vinculadas
	HasInvoices(ctx context.Context, id string) (bool, error)
}
