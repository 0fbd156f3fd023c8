package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart     = errors.New("carrinho não pode ser vazio")
	ErrInvalidQty    = errors.New("quantidade deve ser positiva")
	ErrInvalidAmount = errors.New("valor recebido inválido")
)

// Status representa o estado da fatura de venda
type Status string

const (
	StatusPaid          Status = "PAID"
	StatusHold          Status = "HOLD"
	StatusReturned      Status = "RETURNED"
	StatusPartialReturn Status = "PARTIAL_RETURN"
)

// PaymentMethod identifica a forma de recebimento
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCard   PaymentMethod = "Card"
	PaymentBank   PaymentMethod = "Bank"
	PaymentCheque PaymentMethod = "Cheque"
)

// CartItem representa uma linha do carrinho. SelectedUnit pode diferir
// da unidade de estoque do produto apenas quando o produto suporta
// conversão (Tile com fator de cobertura); a baixa de estoque é sempre
// convertida para a unidade de estoque.
type CartItem struct {
	ProductID    string           `json:"product_id"`
	ProductName  string           `json:"product_name"`
	Quantity     decimal.Decimal  `json:"quantity"`
	SelectedUnit product.UnitType `json:"selected_unit"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	Discount     decimal.Decimal  `json:"discount"`
	Total        decimal.Decimal  `json:"total"`
}

// LineTotal calcula o total da linha: quantidade x preço − desconto
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice).Sub(i.Discount)
}

// Payment representa um recebimento registrado na fatura
type Payment struct {
	Method PaymentMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// Invoice representa uma fatura de venda. CustomerID vazio indica venda
// balcão (walk-in): nesse caso nenhum lançamento é feito no razão de
// clientes.
type Invoice struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	Items          []CartItem      `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	ChangeAmount   decimal.Decimal `json:"change_amount"`
	Payments       []Payment       `json:"payments"`
	Status         Status          `json:"status"`
	Note           string          `json:"note"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewInvoice monta uma fatura calculando subtotal, total e troco a
// partir das linhas do carrinho.
func NewInvoice(customerID, customerName string, date time.Time, items []CartItem, discount, tax, received decimal.Decimal, payments []Payment, note string) (*Invoice, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if received.IsNegative() {
		return nil, ErrInvalidAmount
	}

	subtotal := decimal.Zero
	for i := range items {
		if !items[i].Quantity.IsPositive() {
			return nil, ErrInvalidQty
		}
		items[i].Total = items[i].LineTotal()
		subtotal = subtotal.Add(items[i].Total)
	}

	total := subtotal.Sub(discount).Add(tax)
	change := decimal.Zero
	if received.GreaterThan(total) {
		change = received.Sub(total)
	}

	return &Invoice{
		ID:             uuid.New().String(),
		Date:           date,
		CustomerID:     customerID,
		CustomerName:   customerName,
		Items:          items,
		Subtotal:       subtotal,
		Discount:       discount,
		Tax:            tax,
		Total:          total,
		ReceivedAmount: received,
		ChangeAmount:   change,
		Payments:       payments,
		Status:         StatusPaid,
		Note:           note,
		CreatedAt:      time.Now(),
	}, nil
}

// CreditExtended retorna quanto da fatura ficou em aberto (venda a prazo)
func (inv *Invoice) CreditExtended() decimal.Decimal {
	outstanding := inv.Total.Sub(inv.ReceivedAmount)
	if outstanding.IsNegative() {
		return decimal.Zero
	}
	return outstanding
}

// CashCollected retorna o valor que efetivamente entrou no caixa:
// recebido menos troco devolvido.
func (inv *Invoice) CashCollected() decimal.Decimal {
	collected := inv.ReceivedAmount.Sub(inv.ChangeAmount)
	if collected.IsNegative() {
		return decimal.Zero
	}
	return collected
}

// SoldQty retorna a quantidade vendida de um produto na unidade
// selecionada da linha. Usado na validação de devoluções.
func (inv *Invoice) SoldQty(productID string, unit product.UnitType) decimal.Decimal {
	qty := decimal.Zero
	for _, item := range inv.Items {
		if item.ProductID == productID && item.SelectedUnit == unit {
			qty = qty.Add(item.Quantity)
		}
	}
	return qty
}
