package account

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository define a interface para operações de repositório de contas
type Repository interface {
	// Create cria uma nova conta
	Create(ctx context.Context, a *Account) error

	// FindByID busca uma conta pelo ID
	FindByID(ctx context.Context, id string) (*Account, error)

	// List lista todas as contas
	List(ctx context.Context) ([]*Account, error)

	// Update atualiza os dados cadastrais de uma conta
	Update(ctx context.Context, a *Account) error

	// Exists verifica se uma conta existe
	Exists(ctx context.Context, id string) (bool, error)
}

// TransactionRepository define a interface de consulta das movimentações.
// Movimentações são gravadas apenas pelas operações do ledger; por isso
// não há Update nem Delete.
type TransactionRepository interface {
	// FindByAccount lista as movimentações de uma conta, mais recentes primeiro
	FindByAccount(ctx context.Context, accountID string, limit, offset int) ([]*Transaction, error)

	// FindByPeriod lista as movimentações de uma conta em um intervalo
	FindByPeriod(ctx context.Context, accountID string, from, to time.Time) ([]*Transaction, error)

	// FindByReference lista as movimentações geradas por um documento
	FindByReference(ctx context.Context, module ReferenceModule, referenceID string) ([]*Transaction, error)

	// SumByAccount soma, com sinal, todas as movimentações de uma conta.
	// Usado para conferir o saldo de cache contra o replay do ledger.
	SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
}
