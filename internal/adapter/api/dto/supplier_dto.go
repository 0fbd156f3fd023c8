package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/supplier"
)

// SupplierRequest representa a requisição de fornecedor
type SupplierRequest struct {
	Name           string          `json:"name" binding:"required"`
	CompanyName    string          `json:"company_name"`
	ContactPerson  string          `json:"contact_person"`
	Mobile         []string        `json:"mobile"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	NTN            string          `json:"ntn"`
	Notes          string          `json:"notes"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// SupplierResponse representa a resposta de fornecedor
type SupplierResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CompanyName    string          `json:"company_name"`
	ContactPerson  string          `json:"contact_person"`
	Mobile         []string        `json:"mobile"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	NTN            string          `json:"ntn"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SupplierListResponse representa a resposta de lista de fornecedores
type SupplierListResponse struct {
	Items      []SupplierResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// PaySupplierRequest representa um pagamento a fornecedor
type PaySupplierRequest struct {
	AccountID string          `json:"account_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      time.Time       `json:"date"`
	Note      string          `json:"note"`
}

// ToSupplierResponse converte um fornecedor do domínio para DTO
func ToSupplierResponse(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:             s.ID,
		Name:           s.Name,
		CompanyName:    s.CompanyName,
		ContactPerson:  s.ContactPerson,
		Mobile:         s.Mobile,
		Email:          s.Email,
		Address:        s.Address,
		NTN:            s.NTN,
		Status:         string(s.Status),
		Notes:          s.Notes,
		OpeningBalance: s.OpeningBalance,
		CurrentBalance: s.CurrentBalance,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// ToSupplierListResponse converte uma lista de fornecedores do domínio para DTO
func ToSupplierListResponse(suppliers []*supplier.Supplier, total, page, size int) SupplierListResponse {
	items := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		items[i] = ToSupplierResponse(s)
	}
	return SupplierListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}
