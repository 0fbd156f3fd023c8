package settings

import (
	"context"
)

// Repository define a interface para blocos de configuração
type Repository interface {
	// Get busca um bloco de configuração pela chave
	Get(ctx context.Context, key string) (*Setting, error)

	// Upsert grava um bloco de configuração, criando ou substituindo
	Upsert(ctx context.Context, setting *Setting) error

	// List lista todos os blocos de configuração
	List(ctx context.Context) ([]*Setting, error)
}
