package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptySupplier = errors.New("fornecedor não informado")
	ErrEmptyItems    = errors.New("compra sem itens")
	ErrInvalidQty    = errors.New("quantidade deve ser positiva")
)

// Status representa o estado da nota de compra
type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusPending   Status = "PENDING"
)

// Item representa uma linha da nota de compra. Compras entram sempre na
// unidade de estoque do produto; não há conversão de unidade.
type Item struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice representa uma nota de compra de um fornecedor
type Invoice struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	SupplierID  string          `json:"supplier_id"`
	Items       []Item          `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewInvoice monta uma nota de compra calculando os totais das linhas
func NewInvoice(supplierID string, date time.Time, items []Item) (*Invoice, error) {
	if supplierID == "" {
		return nil, ErrEmptySupplier
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	total := decimal.Zero
	for i := range items {
		if !items[i].Quantity.IsPositive() {
			return nil, ErrInvalidQty
		}
		items[i].Total = items[i].Quantity.Mul(items[i].CostPrice)
		total = total.Add(items[i].Total)
	}

	return &Invoice{
		ID:          uuid.New().String(),
		Date:        date,
		SupplierID:  supplierID,
		Items:       items,
		TotalAmount: total,
		Status:      StatusCompleted,
		CreatedAt:   time.Now(),
	}, nil
}
