package quotation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
	"github.com/hugohenrick/pos-ceramica/internal/domain/sale"
)

func sampleItems() []sale.CartItem {
	return []sale.CartItem{
		{
			ProductID:    "p1",
			ProductName:  "Porcelanato Cinza 60x60",
			Quantity:     decimal.RequireFromString("4"),
			SelectedUnit: product.UnitBox,
			UnitPrice:    decimal.RequireFromString("2800"),
		},
	}
}

func TestNewQuotationTotals(t *testing.T) {
	q, err := NewQuotation("c1", "Cliente Teste", time.Now().Add(7*24*time.Hour),
		sampleItems(), decimal.RequireFromString("200"), decimal.Zero, "", "", "u1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if q.Status != StatusPending {
		t.Errorf("status esperado PENDING, obtido %s", q.Status)
	}
	if !q.Subtotal.Equal(decimal.RequireFromString("11200")) {
		t.Errorf("subtotal esperado 11200, obtido %s", q.Subtotal)
	}
	if !q.Total.Equal(decimal.RequireFromString("11000")) {
		t.Errorf("total esperado 11000, obtido %s", q.Total)
	}
}

func TestNewQuotationEmptyItems(t *testing.T) {
	_, err := NewQuotation("c1", "Cliente", time.Time{}, nil,
		decimal.Zero, decimal.Zero, "", "", "u1")
	if !errors.Is(err, ErrEmptyItems) {
		t.Fatalf("esperado ErrEmptyItems, obtido %v", err)
	}
}

func TestMarkConvertedTwice(t *testing.T) {
	q, err := NewQuotation("c1", "Cliente", time.Time{}, sampleItems(),
		decimal.Zero, decimal.Zero, "", "", "u1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := q.MarkConverted(); err != nil {
		t.Fatalf("primeira conversão deveria passar: %v", err)
	}
	if err := q.MarkConverted(); !errors.Is(err, ErrAlreadyConverted) {
		t.Fatalf("esperado ErrAlreadyConverted, obtido %v", err)
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Now()

	q, err := NewQuotation("c1", "Cliente", now.Add(24*time.Hour), sampleItems(),
		decimal.Zero, decimal.Zero, "", "", "u1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if q.IsExpired(now) {
		t.Error("orçamento dentro da validade não deveria expirar")
	}
	if !q.IsExpired(now.Add(48 * time.Hour)) {
		t.Error("orçamento após a validade deveria expirar")
	}

	// Sem validade definida nunca expira
	q.ValidUntil = time.Time{}
	if q.IsExpired(now.Add(1000 * time.Hour)) {
		t.Error("orçamento sem validade não deveria expirar")
	}
}
