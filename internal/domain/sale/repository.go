package sale

import (
	"context"
	"time"
)

// Repository define a interface para faturas de venda.
// Faturas são criadas pelo orquestrador de transações; o único campo
// que muda depois disso é o status (devoluções).
type Repository interface {
	// FindByID busca uma fatura pelo ID
	FindByID(ctx context.Context, id string) (*Invoice, error)

	// List lista as faturas, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Invoice, error)

	// FindByCustomer lista as faturas de um cliente
	FindByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*Invoice, error)

	// FindByPeriod lista as faturas em um intervalo
	FindByPeriod(ctx context.Context, from, to time.Time) ([]*Invoice, error)

	// Count conta o total de faturas
	Count(ctx context.Context) (int, error)
}

// HeldRepository define a interface para faturas em espera (rascunhos).
// Rascunhos não geram lançamentos em nenhum ledger.
type HeldRepository interface {
	// Save grava uma fatura em espera
	Save(ctx context.Context, inv *Invoice) error

	// FindByID busca uma fatura em espera pelo ID
	FindByID(ctx context.Context, id string) (*Invoice, error)

	// List lista as faturas em espera
	List(ctx context.Context) ([]*Invoice, error)

	// Delete remove uma fatura em espera
	Delete(ctx context.Context, id string) error
}
