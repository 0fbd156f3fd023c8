package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/quotation"
)

// QuotationRequest representa a requisição de orçamento
type QuotationRequest struct {
	CustomerID   string            `json:"customer_id"`
	CustomerName string            `json:"customer_name" binding:"required"`
	ValidUntil   time.Time         `json:"valid_until"`
	Items        []SaleItemRequest `json:"items" binding:"required,min=1"`
	Discount     decimal.Decimal   `json:"discount"`
	Tax          decimal.Decimal   `json:"tax"`
	Note         string            `json:"note"`
	Terms        string            `json:"terms"`
}

// QuotationConvertRequest representa a conversão de orçamento em venda
type QuotationConvertRequest struct {
	ReceivedAmount decimal.Decimal      `json:"received_amount"`
	Payments       []SalePaymentRequest `json:"payments"`
	AccountID      string               `json:"account_id" binding:"required"`
	CreditOverride bool                 `json:"credit_override"`
}

// QuotationResponse representa a resposta de orçamento
type QuotationResponse struct {
	ID           string             `json:"id"`
	Date         time.Time          `json:"date"`
	ValidUntil   time.Time          `json:"valid_until"`
	CustomerID   string             `json:"customer_id,omitempty"`
	CustomerName string             `json:"customer_name"`
	Items        []SaleItemResponse `json:"items"`
	Subtotal     decimal.Decimal    `json:"subtotal"`
	Discount     decimal.Decimal    `json:"discount"`
	Tax          decimal.Decimal    `json:"tax"`
	Total        decimal.Decimal    `json:"total"`
	Status       string             `json:"status"`
	Expired      bool               `json:"expired"`
	Note         string             `json:"note,omitempty"`
	Terms        string             `json:"terms,omitempty"`
	CreatedBy    string             `json:"created_by,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// QuotationListResponse representa a resposta de lista de orçamentos
type QuotationListResponse struct {
	Items      []QuotationResponse `json:"items"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	Size       int                 `json:"size"`
	TotalPages int                 `json:"total_pages"`
}

// ToQuotationResponse converte um orçamento do domínio para DTO
func ToQuotationResponse(q *quotation.Quotation) QuotationResponse {
	items := make([]SaleItemResponse, len(q.Items))
	for i, it := range q.Items {
		items[i] = SaleItemResponse{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			SelectedUnit: string(it.SelectedUnit),
			UnitPrice:    it.UnitPrice,
			Discount:     it.Discount,
			Total:        it.Total,
		}
	}
	return QuotationResponse{
		ID:           q.ID,
		Date:         q.Date,
		ValidUntil:   q.ValidUntil,
		CustomerID:   q.CustomerID,
		CustomerName: q.CustomerName,
		Items:        items,
		Subtotal:     q.Subtotal,
		Discount:     q.Discount,
		Tax:          q.Tax,
		Total:        q.Total,
		Status:       string(q.Status),
		Expired:      q.IsExpired(time.Now()),
		Note:         q.Note,
		Terms:        q.Terms,
		CreatedBy:    q.CreatedBy,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

// ToQuotationListResponse converte uma lista de orçamentos do domínio para DTO
func ToQuotationListResponse(quotations []*quotation.Quotation, total, page, size int) QuotationListResponse {
	items := make([]QuotationResponse, len(quotations))
	for i, q := range quotations {
		items[i] = ToQuotationResponse(q)
	}
	return QuotationListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}
