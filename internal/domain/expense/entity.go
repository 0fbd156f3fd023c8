package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Erros do domínio de despesa
var (
	ErrInvalidExpense   = errors.New("despesa inválida")
	ErrExpenseNotFound  = errors.New("despesa não encontrada")
	ErrInvalidAmount    = errors.New("valor da despesa deve ser positivo")
	ErrCategoryNotFound = errors.New("categoria de despesa não encontrada")
	ErrCategoryInUse    = errors.New("categoria de despesa possui despesas vinculadas")
	ErrCategoryExists   = errors.New("já existe categoria de despesa com este nome")
)

// Category representa uma categoria de despesa (aluguel, energia, frete)
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategory cria uma nova categoria de despesa
func NewCategory(name, description string) (*Category, error) {
	if name == "" {
		return nil, ErrInvalidExpense
	}
	now := time.Now()
	return &Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados da categoria
func (c *Category) Update(name, description string) error {
	if name == "" {
		return ErrInvalidExpense
	}
	c.Name = name
	c.Description = description
	c.UpdatedAt = time.Now()
	return nil
}

// Expense representa uma despesa paga por uma conta financeira.
// A exclusão de uma despesa não apaga o histórico: gera um lançamento
// de estorno na conta, mantendo o razão imutável.
type Expense struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	AccountID  string          `json:"account_id"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewExpense cria uma nova despesa
func NewExpense(categoryID, accountID string, date time.Time, amount decimal.Decimal, note string) (*Expense, error) {
	if categoryID == "" || accountID == "" {
		return nil, ErrInvalidExpense
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	now := time.Now()
	if date.IsZero() {
		date = now
	}
	return &Expense{
		ID:         uuid.New().String(),
		CategoryID: categoryID,
		AccountID:  accountID,
		Date:       date,
		Amount:     amount,
		Note:       note,
		CreatedAt:  now,
	}, nil
}
