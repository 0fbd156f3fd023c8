package purchase

import (
	"context"
	"time"
)

// Repository define a interface para notas de compra.
// Notas são criadas pelo orquestrador de transações e não mudam depois.
type Repository interface {
	// FindByID busca uma nota de compra pelo ID
	FindByID(ctx context.Context, id string) (*Invoice, error)

	// List lista as notas de compra, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Invoice, error)

	// FindBySupplier lista as notas de compra de um fornecedor
	FindBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*Invoice, error)

	// FindByPeriod lista as notas de compra em um intervalo
	FindByPeriod(ctx context.Context, from, to time.Time) ([]*Invoice, error)

	// Count conta o total de notas de compra
	Count(ctx context.Context) (int, error)
}
