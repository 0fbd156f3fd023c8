package salesreturn

import (
	"context"
	"time"
)

// Repository define a interface para devoluções de venda
type Repository interface {
	// FindByID busca uma devolução pelo ID
	FindByID(ctx context.Context, id string) (*Invoice, error)

	// FindBySaleInvoice lista as devoluções vinculadas a uma nota de venda
	FindBySaleInvoice(ctx context.Context, saleInvoiceID string) ([]*Invoice, error)

	// List lista as devoluções, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Invoice, error)

	// FindByPeriod lista as devoluções em um intervalo
	FindByPeriod(ctx context.Context, from, to time.Time) ([]*Invoice, error)

	// Count conta o total de devoluções
	Count(ctx context.Context) (int, error)
}
