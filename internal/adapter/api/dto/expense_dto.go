package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/expense"
)

// ExpenseRequest representa a requisição de despesa
type ExpenseRequest struct {
	CategoryID string          `json:"category_id" binding:"required"`
	AccountID  string          `json:"account_id" binding:"required"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Note       string          `json:"note"`
}

// ExpenseResponse representa a resposta de despesa
type ExpenseResponse struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	AccountID  string          `json:"account_id"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ExpenseListResponse representa a resposta de lista de despesas
type ExpenseListResponse struct {
	Items      []ExpenseResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ExpenseCategoryRequest representa a requisição de categoria de despesa
type ExpenseCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ExpenseCategoryResponse representa a resposta de categoria de despesa
type ExpenseCategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToExpenseResponse converte uma despesa do domínio para DTO
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:         e.ID,
		CategoryID: e.CategoryID,
		AccountID:  e.AccountID,
		Date:       e.Date,
		Amount:     e.Amount,
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
}

// ToExpenseListResponse converte uma lista de despesas do domínio para DTO
func ToExpenseListResponse(expenses []*expense.Expense, total, page, size int) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		items[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}

// ToExpenseCategoryResponse converte uma categoria de despesa para DTO
func ToExpenseCategoryResponse(c *expense.Category) ExpenseCategoryResponse {
	return ExpenseCategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToExpenseCategoryResponses converte categorias de despesa para DTO
func ToExpenseCategoryResponses(categories []*expense.Category) []ExpenseCategoryResponse {
	out := make([]ExpenseCategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = ToExpenseCategoryResponse(c)
	}
	return out
}
