package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pos-ceramica/internal/domain/expense"
)

// Erros específicos do repositório
var (
	ErrExpenseNotFound         = errors.New("despesa não encontrada")
	ErrExpenseCategoryNotFound = errors.New("categoria de despesa não encontrada")
	ErrExpenseCategoryInUse    = errors.New("categoria de despesa possui despesas vinculadas")
	ErrExpenseCategoryExists   = errors.New("já existe categoria de despesa com este nome")
)

const expenseColumns = `
	id, category_id, account_id, date, amount, note, created_at`

// ExpenseRepository implementa a interface expense.Repository usando
// PostgreSQL. Criação e exclusão de despesas passam pela unidade de
// trabalho do orquestrador, que também lança o movimento na conta.
type ExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository cria uma nova instância de ExpenseRepository
func NewExpenseRepository(db *pgxpool.Pool) expense.Repository {
	return &ExpenseRepository{db: db}
}

func scanExpense(row pgx.Row) (*expense.Expense, error) {
	e := &expense.Expense{}
	err := row.Scan(&e.ID, &e.CategoryID, &e.AccountID, &e.Date, &e.Amount, &e.Note, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("falha ao ler despesa: %w", err)
	}
	return e, nil
}

func collectExpenses(rows pgx.Rows) ([]*expense.Expense, error) {
	defer rows.Close()
	var out []*expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// FindByID implementa expense.Repository.FindByID
func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	query := `SELECT` + expenseColumns + ` FROM expenses WHERE id = $1`
	return scanExpense(r.db.QueryRow(ctx, query, id))
}

// List implementa expense.Repository.List
func (r *ExpenseRepository) List(ctx context.Context, limit, offset int) ([]*expense.Expense, error) {
	query := `SELECT` + expenseColumns + ` FROM expenses ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar despesas: %w", err)
	}
	return collectExpenses(rows)
}

// FindByCategory implementa expense.Repository.FindByCategory
func (r *ExpenseRepository) FindByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*expense.Expense, error) {
	query := `SELECT` + expenseColumns + `
		FROM expenses WHERE category_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar despesas da categoria: %w", err)
	}
	return collectExpenses(rows)
}

// FindByPeriod implementa expense.Repository.FindByPeriod
func (r *ExpenseRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]*expense.Expense, error) {
	query := `SELECT` + expenseColumns + `
		FROM expenses WHERE date >= $1 AND date <= $2
		ORDER BY date`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar despesas por período: %w", err)
	}
	return collectExpenses(rows)
}

// Count implementa expense.Repository.Count
func (r *ExpenseRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar despesas: %w", err)
	}
	return count, nil
}

// ExpenseCategoryRepository implementa a interface expense.CategoryRepository
type ExpenseCategoryRepository struct {
	db *pgxpool.Pool
}

// NewExpenseCategoryRepository cria uma nova instância de ExpenseCategoryRepository
func NewExpenseCategoryRepository(db *pgxpool.Pool) expense.CategoryRepository {
	return &ExpenseCategoryRepository{db: db}
}

func scanExpenseCategory(row pgx.Row) (*expense.Category, error) {
	c := &expense.Category{}
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseCategoryNotFound
		}
		return nil, fmt.Errorf("falha ao ler categoria de despesa: %w", err)
	}
	return c, nil
}

// Create implementa expense.CategoryRepository.Create
func (r *ExpenseCategoryRepository) Create(ctx context.Context, category *expense.Category) error {
	query := `
		INSERT INTO expense_categories (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrExpenseCategoryExists
		}
		return fmt.Errorf("falha ao criar categoria de despesa: %w", err)
	}
	return nil
}

// FindByID implementa expense.CategoryRepository.FindByID
func (r *ExpenseCategoryRepository) FindByID(ctx context.Context, id string) (*expense.Category, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM expense_categories WHERE id = $1`
	return scanExpenseCategory(r.db.QueryRow(ctx, query, id))
}

// FindByName implementa expense.CategoryRepository.FindByName
func (r *ExpenseCategoryRepository) FindByName(ctx context.Context, name string) (*expense.Category, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM expense_categories WHERE name = $1`
	return scanExpenseCategory(r.db.QueryRow(ctx, query, name))
}

// List implementa expense.CategoryRepository.List
func (r *ExpenseCategoryRepository) List(ctx context.Context) ([]*expense.Category, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM expense_categories ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar categorias de despesa: %w", err)
	}
	defer rows.Close()

	var out []*expense.Category
	for rows.Next() {
		c, err := scanExpenseCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update implementa expense.CategoryRepository.Update
func (r *ExpenseCategoryRepository) Update(ctx context.Context, category *expense.Category) error {
	query := `
		UPDATE expense_categories SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrExpenseCategoryExists
		}
		return fmt.Errorf("falha ao atualizar categoria de despesa: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrExpenseCategoryNotFound
	}
	return nil
}

// Delete implementa expense.CategoryRepository.Delete
func (r *ExpenseCategoryRepository) Delete(ctx context.Context, id string) error {
	hasExpenses, err := r.HasExpenses(ctx, id)
	if err != nil {
		return err
	}
	if hasExpenses {
		return ErrExpenseCategoryInUse
	}

	result, err := r.db.Exec(ctx, `DELETE FROM expense_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("falha ao remover categoria de despesa: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrExpenseCategoryNotFound
	}
	return nil
}

// HasExpenses implementa expense.CategoryRepository.HasExpenses
func (r *ExpenseCategoryRepository) HasExpenses(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM expenses WHERE category_id = $1)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("falha ao verificar despesas da categoria: %w", err)
	}
	return exists, nil
}
