package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/purchase"
)

// PurchaseItemRequest representa uma linha da nota de compra
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	CostPrice decimal.Decimal `json:"cost_price" binding:"required"`
}

// PurchaseRequest representa a requisição de compra
type PurchaseRequest struct {
	SupplierID string                `json:"supplier_id" binding:"required"`
	Date       time.Time             `json:"date"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1"`
	PaidAmount decimal.Decimal       `json:"paid_amount"`
	AccountID  string                `json:"account_id"`
	Note       string                `json:"note"`
}

// PurchaseItemResponse representa uma linha da nota de compra
type PurchaseItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Total       decimal.Decimal `json:"total"`
}

// PurchaseResponse representa a resposta de compra
type PurchaseResponse struct {
	ID          string                 `json:"id"`
	Date        time.Time              `json:"date"`
	SupplierID  string                 `json:"supplier_id"`
	Items       []PurchaseItemResponse `json:"items"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	Status      string                 `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
}

// PurchaseListResponse representa a resposta de lista de compras
type PurchaseListResponse struct {
	Items      []PurchaseResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToPurchaseResponse converte uma nota de compra do domínio para DTO
func ToPurchaseResponse(inv *purchase.Invoice) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = PurchaseItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			CostPrice:   it.CostPrice,
			Total:       it.Total,
		}
	}
	return PurchaseResponse{
		ID:          inv.ID,
		Date:        inv.Date,
		SupplierID:  inv.SupplierID,
		Items:       items,
		TotalAmount: inv.TotalAmount,
		Status:      string(inv.Status),
		CreatedAt:   inv.CreatedAt,
	}
}

// ToPurchaseListResponse converte uma lista de notas de compra para DTO
func ToPurchaseListResponse(invoices []*purchase.Invoice, total, page, size int) PurchaseListResponse {
	items := make([]PurchaseResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = ToPurchaseResponse(inv)
	}
	return PurchaseListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}
