package quotation

import (
	"context"
)

// Repository define a interface para operações de repositório de orçamentos
type Repository interface {
	// Create cria um novo orçamento
	Create(ctx context.Context, q *Quotation) error

	// FindByID busca um orçamento pelo ID
	FindByID(ctx context.Context, id string) (*Quotation, error)

	// List lista os orçamentos, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Quotation, error)

	// FindByCustomer lista os orçamentos de um cliente
	FindByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*Quotation, error)

	// FindByStatus lista os orçamentos por status
	FindByStatus(ctx context.Context, status Status, limit, offset int) ([]*Quotation, error)

	// Update atualiza um orçamento ainda pendente
	Update(ctx context.Context, q *Quotation) error

	// Delete remove um orçamento
	Delete(ctx context.Context, id string) error
}
