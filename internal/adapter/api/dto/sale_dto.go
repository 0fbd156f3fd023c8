package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
	"github.com/hugohenrick/pos-ceramica/internal/domain/sale"
	"github.com/hugohenrick/pos-ceramica/internal/service"
)

// SaleItemRequest representa uma linha do carrinho
type SaleItemRequest struct {
	ProductID    string          `json:"product_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	SelectedUnit string          `json:"selected_unit" binding:"required"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Discount     decimal.Decimal `json:"discount"`
}

// SalePaymentRequest representa uma forma de pagamento da venda
type SalePaymentRequest struct {
	Method string          `json:"method" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// SaleRequest representa a requisição de venda
type SaleRequest struct {
	CustomerID     string               `json:"customer_id"`
	Date           time.Time            `json:"date"`
	Items          []SaleItemRequest    `json:"items" binding:"required,min=1"`
	Discount       decimal.Decimal      `json:"discount"`
	Tax            decimal.Decimal      `json:"tax"`
	ReceivedAmount decimal.Decimal      `json:"received_amount"`
	Payments       []SalePaymentRequest `json:"payments"`
	AccountID      string               `json:"account_id" binding:"required"`
	Note           string               `json:"note"`
	CreditOverride bool                 `json:"credit_override"`
	HeldInvoiceID  string               `json:"held_invoice_id"`
}

// SaleItemResponse representa uma linha da fatura
type SaleItemResponse struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	SelectedUnit string          `json:"selected_unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Discount     decimal.Decimal `json:"discount"`
	Total        decimal.Decimal `json:"total"`
}

// SalePaymentResponse representa um pagamento registrado na fatura
type SalePaymentResponse struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID             string                `json:"id"`
	Date           time.Time             `json:"date"`
	CustomerID     string                `json:"customer_id,omitempty"`
	CustomerName   string                `json:"customer_name"`
	Items          []SaleItemResponse    `json:"items"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	Discount       decimal.Decimal       `json:"discount"`
	Tax            decimal.Decimal       `json:"tax"`
	Total          decimal.Decimal       `json:"total"`
	ReceivedAmount decimal.Decimal       `json:"received_amount"`
	ChangeAmount   decimal.Decimal       `json:"change_amount"`
	CreditExtended decimal.Decimal       `json:"credit_extended"`
	Payments       []SalePaymentResponse `json:"payments"`
	Status         string                `json:"status"`
	Note           string                `json:"note,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items      []SaleResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToSaleInput converte a requisição para a entrada do orquestrador
func (r *SaleRequest) ToSaleInput() service.CreateSaleInput {
	items := make([]service.SaleItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = service.SaleItemInput{
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			SelectedUnit: product.UnitType(it.SelectedUnit),
			UnitPrice:    it.UnitPrice,
			Discount:     it.Discount,
		}
	}
	payments := make([]sale.Payment, len(r.Payments))
	for i, p := range r.Payments {
		payments[i] = sale.Payment{
			Method: sale.PaymentMethod(p.Method),
			Amount: p.Amount,
		}
	}
	return service.CreateSaleInput{
		CustomerID:     r.CustomerID,
		Date:           r.Date,
		Items:          items,
		Discount:       r.Discount,
		Tax:            r.Tax,
		ReceivedAmount: r.ReceivedAmount,
		Payments:       payments,
		AccountID:      r.AccountID,
		Note:           r.Note,
		CreditOverride: r.CreditOverride,
		HeldInvoiceID:  r.HeldInvoiceID,
	}
}

// ToSaleResponse converte uma fatura do domínio para DTO
func ToSaleResponse(inv *sale.Invoice) SaleResponse {
	items := make([]SaleItemResponse, len(inv.Items))
	for i, it := range inv.Items {
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
	payments := make([]SalePaymentResponse, len(inv.Payments))
	for i, p := range inv.Payments {
		payments[i] = SalePaymentResponse{
			Method: string(p.Method),
			Amount: p.Amount,
		}
	}
	return SaleResponse{
		ID:             inv.ID,
		Date:           inv.Date,
		CustomerID:     inv.CustomerID,
		CustomerName:   inv.CustomerName,
		Items:          items,
		Subtotal:       inv.Subtotal,
		Discount:       inv.Discount,
		Tax:            inv.Tax,
		Total:          inv.Total,
		ReceivedAmount: inv.ReceivedAmount,
		ChangeAmount:   inv.ChangeAmount,
		CreditExtended: inv.CreditExtended(),
		Payments:       payments,
		Status:         string(inv.Status),
		Note:           inv.Note,
		CreatedAt:      inv.CreatedAt,
	}
}

// ToSaleListResponse converte uma lista de faturas do domínio para DTO
func ToSaleListResponse(invoices []*sale.Invoice, total, page, size int) SaleListResponse {
	items := make([]SaleResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = ToSaleResponse(inv)
	}
	return SaleListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}
