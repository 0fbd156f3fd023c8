package quotation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/pos-ceramica/internal/domain/sale"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyItems       = errors.New("orçamento sem itens")
	ErrAlreadyConverted = errors.New("orçamento já convertido em venda")
)

// Status representa o estado do orçamento
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConverted Status = "CONVERTED"
	StatusExpired   Status = "EXPIRED"
)

// Quotation representa um orçamento. Orçamentos não movimentam estoque
// nem razão; apenas a conversão em venda (via orquestrador) o faz.
type Quotation struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	ValidUntil   time.Time       `json:"valid_until"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Items        []sale.CartItem `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	Status       Status          `json:"status"`
	Note         string          `json:"note"`
	Terms        string          `json:"terms"`
	CreatedBy    string          `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewQuotation cria um orçamento calculando os totais das linhas
func NewQuotation(customerID, customerName string, validUntil time.Time, items []sale.CartItem, discount, tax decimal.Decimal, note, terms, createdBy string) (*Quotation, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	subtotal := decimal.Zero
	for i := range items {
		items[i].Total = items[i].LineTotal()
		subtotal = subtotal.Add(items[i].Total)
	}

	now := time.Now()
	return &Quotation{
		ID:           uuid.New().String(),
		Date:         now,
		ValidUntil:   validUntil,
		CustomerID:   customerID,
		CustomerName: customerName,
		Items:        items,
		Subtotal:     subtotal,
		Discount:     discount,
		Tax:          tax,
		Total:        subtotal.Sub(discount).Add(tax),
		Status:       StatusPending,
		Note:         note,
		Terms:        terms,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// MarkConverted marca o orçamento como convertido em venda. Converter
// duas vezes é um conflito de estado.
func (q *Quotation) MarkConverted() error {
	if q.Status == StatusConverted {
		return ErrAlreadyConverted
	}
	q.Status = StatusConverted
	q.UpdatedAt = time.Now()
	return nil
}

// IsExpired verifica se o orçamento passou da validade
func (q *Quotation) IsExpired(now time.Time) bool {
	return !q.ValidUntil.IsZero() && now.After(q.ValidUntil)
}
