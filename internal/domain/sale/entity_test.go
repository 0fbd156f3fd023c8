package sale

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
)

func cartItem(productID, qty, price string, unit product.UnitType) CartItem {
	return CartItem{
		ProductID:    productID,
		ProductName:  "Porcelanato Bege 60x60",
		Quantity:     decimal.RequireFromString(qty),
		SelectedUnit: unit,
		UnitPrice:    decimal.RequireFromString(price),
	}
}

func TestNewInvoiceTotals(t *testing.T) {
	items := []CartItem{
		cartItem("p1", "2", "2800", product.UnitBox),
		cartItem("p2", "3", "450", product.UnitPcs),
	}

	inv, err := NewInvoice("c1", "Cliente Teste", time.Now(), items,
		decimal.RequireFromString("100"), decimal.Zero,
		decimal.RequireFromString("7000"), nil, "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !inv.Subtotal.Equal(decimal.RequireFromString("6950")) {
		t.Errorf("subtotal esperado 6950, obtido %s", inv.Subtotal)
	}
	if !inv.Total.Equal(decimal.RequireFromString("6850")) {
		t.Errorf("total esperado 6850, obtido %s", inv.Total)
	}
	if !inv.ChangeAmount.Equal(decimal.RequireFromString("150")) {
		t.Errorf("troco esperado 150, obtido %s", inv.ChangeAmount)
	}
	if !inv.CreditExtended().IsZero() {
		t.Errorf("fatura paga não deveria ter saldo em aberto, obtido %s", inv.CreditExtended())
	}
}

func TestNewInvoiceEmptyCart(t *testing.T) {
	_, err := NewInvoice("c1", "Cliente", time.Now(), nil,
		decimal.Zero, decimal.Zero, decimal.Zero, nil, "")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("esperado ErrEmptyCart, obtido %v", err)
	}
}

func TestNewInvoiceRejectsNonPositiveQty(t *testing.T) {
	items := []CartItem{cartItem("p1", "0", "2800", product.UnitBox)}

	_, err := NewInvoice("c1", "Cliente", time.Now(), items,
		decimal.Zero, decimal.Zero, decimal.Zero, nil, "")
	if !errors.Is(err, ErrInvalidQty) {
		t.Fatalf("esperado ErrInvalidQty, obtido %v", err)
	}
}

func TestCreditExtendedPartialPayment(t *testing.T) {
	items := []CartItem{cartItem("p1", "2", "2800", product.UnitBox)}

	inv, err := NewInvoice("c1", "Cliente", time.Now(), items,
		decimal.Zero, decimal.Zero, decimal.RequireFromString("2000"), nil, "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !inv.CreditExtended().Equal(decimal.RequireFromString("3600")) {
		t.Errorf("saldo em aberto esperado 3600, obtido %s", inv.CreditExtended())
	}
	if !inv.CashCollected().Equal(decimal.RequireFromString("2000")) {
		t.Errorf("caixa esperado 2000, obtido %s", inv.CashCollected())
	}
}

func TestCashCollectedDiscountsChange(t *testing.T) {
	items := []CartItem{cartItem("p1", "1", "450", product.UnitPcs)}

	inv, err := NewInvoice("", "", time.Now(), items,
		decimal.Zero, decimal.Zero, decimal.RequireFromString("500"), nil, "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// Só entra no caixa o que não voltou como troco
	if !inv.CashCollected().Equal(decimal.RequireFromString("450")) {
		t.Errorf("caixa esperado 450, obtido %s", inv.CashCollected())
	}
}

func TestSoldQtySumsMatchingLines(t *testing.T) {
	items := []CartItem{
		cartItem("p1", "2", "2800", product.UnitBox),
		cartItem("p1", "32", "175", product.UnitSqft),
		cartItem("p1", "1", "2800", product.UnitBox),
	}

	inv, err := NewInvoice("c1", "Cliente", time.Now(), items,
		decimal.Zero, decimal.Zero, decimal.RequireFromString("14000"), nil, "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !inv.SoldQty("p1", product.UnitBox).Equal(decimal.RequireFromString("3")) {
		t.Errorf("esperado 3 caixas, obtido %s", inv.SoldQty("p1", product.UnitBox))
	}
	if !inv.SoldQty("p1", product.UnitSqft).Equal(decimal.RequireFromString("32")) {
		t.Errorf("esperado 32 sqft, obtido %s", inv.SoldQty("p1", product.UnitSqft))
	}
	if !inv.SoldQty("p2", product.UnitBox).IsZero() {
		t.Errorf("produto não vendido deveria somar zero")
	}
}
