package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/account"
)

// AccountRequest representa a requisição de conta financeira
type AccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	Type           string          `json:"type" binding:"required"`
	BankName       string          `json:"bank_name"`
	Description    string          `json:"description"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// AccountResponse representa a resposta de conta financeira
type AccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	BankName       string          `json:"bank_name"`
	Description    string          `json:"description"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TransferRequest representa uma transferência entre contas
type TransferRequest struct {
	FromAccountID string          `json:"from_account_id" binding:"required"`
	ToAccountID   string          `json:"to_account_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          time.Time       `json:"date"`
	Note          string          `json:"note"`
}

// AccountTransactionResponse representa uma movimentação de conta
type AccountTransactionResponse struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	Kind            string          `json:"kind"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	ReferenceModule string          `json:"reference_module"`
	ReferenceID     string          `json:"reference_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToAccountResponse converte uma conta do domínio para DTO
func ToAccountResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		Type:           string(a.Type),
		BankName:       a.BankName,
		Description:    a.Description,
		OpeningBalance: a.OpeningBalance,
		CurrentBalance: a.CurrentBalance,
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ToAccountResponses converte uma lista de contas do domínio para DTO
func ToAccountResponses(accounts []*account.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = ToAccountResponse(a)
	}
	return out
}

// ToAccountTransactionResponses converte movimentações de conta para DTO
func ToAccountTransactionResponses(txs []*account.Transaction) []AccountTransactionResponse {
	out := make([]AccountTransactionResponse, len(txs))
	for i, t := range txs {
		out[i] = AccountTransactionResponse{
			ID:              t.ID,
			AccountID:       t.AccountID,
			Kind:            string(t.Kind),
			Amount:          t.Amount,
			Date:            t.Date,
			Description:     t.Description,
			ReferenceModule: string(t.ReferenceModule),
			ReferenceID:     t.ReferenceID,
			CreatedAt:       t.CreatedAt,
		}
	}
	return out
}
