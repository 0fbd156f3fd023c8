package expense

import (
	"context"
	"time"
)

// Repository define a interface para despesas
type Repository interface {
	// FindByID busca uma despesa pelo ID
	FindByID(ctx context.Context, id string) (*Expense, error)

	// List lista as despesas, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Expense, error)

	// FindByCategory lista as despesas de uma categoria
	FindByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*Expense, error)

	// FindByPeriod lista as despesas em um intervalo
	FindByPeriod(ctx context.Context, from, to time.Time) ([]*Expense, error)

	// Count conta o total de despesas
	Count(ctx context.Context) (int, error)
}

// CategoryRepository define a interface para categorias de despesa
type CategoryRepository interface {
	// Create cria uma nova categoria de despesa
	Create(ctx context.Context, category *Category) error

	// FindByID busca uma categoria pelo ID
	FindByID(ctx context.Context, id string) (*Category, error)

	// FindByName busca uma categoria pelo nome exato
	FindByName(ctx context.Context, name string) (*Category, error)

	// List lista todas as categorias de despesa
	List(ctx context.Context) ([]*Category, error)

	// Update atualiza uma categoria
	Update(ctx context.Context, category *Category) error

	// Delete remove uma categoria sem despesas vinculadas
	Delete(ctx context.Context, id string) error

	// HasExpenses verifica se a categoria possui despesas vinculadas
	HasExpenses(ctx context.Context, id string) (bool, error)
}
