package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/customer"
	"github.com/hugohenrick/pos-ceramica/internal/domain/ledger"
)

// CustomerRequest representa a requisição de cliente
type CustomerRequest struct {
	Name           string          `json:"name" binding:"required"`
	Mobile         []string        `json:"mobile"`
	Email          string          `json:"email"`
	CNIC           string          `json:"cnic"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	AllowCredit    bool            `json:"allow_credit"`
	Notes          string          `json:"notes"`
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Mobile         []string        `json:"mobile"`
	Email          string          `json:"email"`
	CNIC           string          `json:"cnic"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	AllowCredit    bool            `json:"allow_credit"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CustomerListResponse representa a resposta de lista de clientes
type CustomerListResponse struct {
	Items      []CustomerResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ReceivePaymentRequest representa o recebimento de um cliente
type ReceivePaymentRequest struct {
	AccountID string          `json:"account_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      time.Time       `json:"date"`
	Note      string          `json:"note"`
}

// LedgerEntryResponse representa um lançamento do razão financeiro
type LedgerEntryResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	EntityType  string          `json:"entity_type"`
	EntityID    string          `json:"entity_id"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
	ReferenceID string          `json:"reference_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToCustomerResponse converte um cliente do domínio para DTO
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Mobile:         c.Mobile,
		Email:          c.Email,
		CNIC:           c.CNIC,
		Address:        c.Address,
		City:           c.City,
		OpeningBalance: c.OpeningBalance,
		CurrentBalance: c.CurrentBalance,
		CreditLimit:    c.CreditLimit,
		AllowCredit:    c.AllowCredit,
		Status:         string(c.Status),
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToCustomerListResponse converte uma lista de clientes do domínio para DTO
func ToCustomerListResponse(customers []*customer.Customer, total, page, size int) CustomerListResponse {
	items := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		items[i] = ToCustomerResponse(c)
	}
	return CustomerListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}

// ToLedgerEntryResponses converte lançamentos do razão para DTO
func ToLedgerEntryResponses(entries []*ledger.Entry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = LedgerEntryResponse{
			ID:          e.ID,
			Date:        e.Date,
			EntityType:  string(e.EntityType),
			EntityID:    e.EntityID,
			Kind:        string(e.Kind),
			Description: e.Description,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Balance:     e.Balance,
			ReferenceID: e.ReferenceID,
			CreatedAt:   e.CreatedAt,
		}
	}
	return out
}
