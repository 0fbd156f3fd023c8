package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/salesreturn"
)

// ReturnItemRequest representa um item devolvido
type ReturnItemRequest struct {
	ProductID    string          `json:"product_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	SelectedUnit string          `json:"selected_unit" binding:"required"`
}

// ReturnRequest representa a requisição de devolução de venda
type ReturnRequest struct {
	SaleInvoiceID string              `json:"sale_invoice_id" binding:"required"`
	Date          time.Time           `json:"date"`
	Items         []ReturnItemRequest `json:"items" binding:"required,min=1"`
	RefundMethod  string              `json:"refund_method" binding:"required"`
	AccountID     string              `json:"account_id"`
	Note          string              `json:"note"`
}

// ReturnItemResponse representa um item devolvido
type ReturnItemResponse struct {
	ProductID    string          `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	SelectedUnit string          `json:"selected_unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Total        decimal.Decimal `json:"total"`
}

// ReturnResponse representa a resposta de devolução de venda
type ReturnResponse struct {
	ID            string               `json:"id"`
	SaleInvoiceID string               `json:"sale_invoice_id"`
	CustomerID    string               `json:"customer_id,omitempty"`
	Date          time.Time            `json:"date"`
	Items         []ReturnItemResponse `json:"items"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	RefundMethod  string               `json:"refund_method"`
	AccountID     string               `json:"account_id,omitempty"`
	Note          string               `json:"note,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// ReturnListResponse representa a resposta de lista de devoluções
type ReturnListResponse struct {
	Items      []ReturnResponse `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
}

// ToReturnResponse converte uma devolução do domínio para DTO
func ToReturnResponse(inv *salesreturn.Invoice) ReturnResponse {
	items := make([]ReturnItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = ReturnItemResponse{
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			SelectedUnit: it.SelectedUnit,
			UnitPrice:    it.UnitPrice,
			Total:        it.Total,
		}
	}
	return ReturnResponse{
		ID:            inv.ID,
		SaleInvoiceID: inv.SaleInvoiceID,
		CustomerID:    inv.CustomerID,
		Date:          inv.Date,
		Items:         items,
		TotalAmount:   inv.TotalAmount,
		RefundMethod:  string(inv.RefundMethod),
		AccountID:     inv.AccountID,
		Note:          inv.Note,
		CreatedAt:     inv.CreatedAt,
	}
}

// ToReturnListResponse converte uma lista de devoluções do domínio para DTO
func ToReturnListResponse(invoices []*salesreturn.Invoice, total, page, size int) ReturnListResponse {
	items := make([]ReturnResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = ToReturnResponse(inv)
	}
	return ReturnListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}
