package ledger

import (
	"context"
	"time"
)

// Repository define a interface de consulta do razão financeiro.
// Lançamentos são gravados apenas pelas operações do orquestrador de
// transações; por isso não há Update nem Delete.
type Repository interface {
	// FindByEntity lista os lançamentos de uma entidade em ordem cronológica
	FindByEntity(ctx context.Context, entityType EntityType, entityID string, limit, offset int) ([]*Entry, error)

	// FindByPeriod lista os lançamentos de uma entidade em um intervalo
	FindByPeriod(ctx context.Context, entityType EntityType, entityID string, from, to time.Time) ([]*Entry, error)

	// FindByReference lista os lançamentos gerados por um documento
	FindByReference(ctx context.Context, referenceID string) ([]*Entry, error)

	// CountByEntity conta os lançamentos de uma entidade
	CountByEntity(ctx context.Context, entityType EntityType, entityID string) (int, error)
}
