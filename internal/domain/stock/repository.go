package stock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository define a interface de consulta do histórico de estoque.
// Lançamentos são gravados apenas pelas operações do orquestrador de
// transações; por isso não há Update nem Delete.
type Repository interface {
	// FindByProduct lista os lançamentos de um produto, mais recentes primeiro
	FindByProduct(ctx context.Context, productID string, limit, offset int) ([]*Log, error)

	// FindByPeriod lista os lançamentos de um produto em um intervalo
	FindByPeriod(ctx context.Context, productID string, from, to time.Time) ([]*Log, error)

	// FindByReference lista os lançamentos gerados por um documento
	FindByReference(ctx context.Context, referenceID string) ([]*Log, error)

	// SumByProduct soma os deltas assinados de um produto. Usado para
	// conferir o saldo de cache contra o replay do histórico.
	SumByProduct(ctx context.Context, productID string) (decimal.Decimal, error)
}
