package salesreturn

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Erros do domínio de devolução de venda
var (
	ErrInvalidReturn      = errors.New("devolução inválida")
	ErrEmptyItems         = errors.New("devolução sem itens")
	ErrInvalidRefund      = errors.New("método de reembolso inválido")
	ErrQuantityExceeded   = errors.New("quantidade devolvida excede a quantidade vendida")
	ErrInvoiceNotEligible = errors.New("nota fiscal não permite devolução")
)

// RefundMethod indica como o valor devolvido retorna ao cliente
type RefundMethod string

const (
	// RefundCash devolve o valor em dinheiro pelo caixa
	RefundCash RefundMethod = "CASH"
	// RefundBank devolve o valor por conta bancária
	RefundBank RefundMethod = "BANK"
	// RefundCredit abate o valor do saldo devedor do cliente
	RefundCredit RefundMethod = "CREDIT"
)

// IsValid verifica se o método de reembolso é válido
func (m RefundMethod) IsValid() bool {
	switch m {
	case RefundCash, RefundBank, RefundCredit:
		return true
	}
	return false
}

// Item representa um item devolvido, na mesma unidade em que foi vendido
type Item struct {
	ProductID    string          `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	SelectedUnit string          `json:"selected_unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Total        decimal.Decimal `json:"total"`
}

// Invoice representa uma devolução de venda vinculada à nota original
type Invoice struct {
	ID            string          `json:"id"`
	SaleInvoiceID string          `json:"sale_invoice_id"`
	CustomerID    string          `json:"customer_id,omitempty"`
	Date          time.Time       `json:"date"`
	Items         []Item          `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	RefundMethod  RefundMethod    `json:"refund_method"`
	AccountID     string          `json:"account_id,omitempty"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewInvoice cria uma devolução calculando os totais por item
func NewInvoice(saleInvoiceID, customerID string, date time.Time, items []Item, method RefundMethod, accountID, note string) (*Invoice, error) {
	if saleInvoiceID == "" {
		return nil, ErrInvalidReturn
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	if !method.IsValid() {
		return nil, ErrInvalidRefund
	}
	if method == RefundCredit && customerID == "" {
		// abatimento em saldo só faz sentido com cliente cadastrado
		return nil, ErrInvalidRefund
	}
	if (method == RefundCash || method == RefundBank) && accountID == "" {
		return nil, ErrInvalidRefund
	}

	total := decimal.Zero
	for i := range items {
		if !items[i].Quantity.IsPositive() {
			return nil, ErrInvalidReturn
		}
		items[i].Total = items[i].Quantity.Mul(items[i].UnitPrice)
		total = total.Add(items[i].Total)
	}

	now := time.Now()
	if date.IsZero() {
		date = now
	}

	return &Invoice{
		ID:            uuid.New().String(),
		SaleInvoiceID: saleInvoiceID,
		CustomerID:    customerID,
		Date:          date,
		Items:         items,
		TotalAmount:   total,
		RefundMethod:  method,
		AccountID:     accountID,
		Note:          note,
		CreatedAt:     now,
	}, nil
}
