package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNextBalance_Customer(t *testing.T) {
	cases := []struct {
		name                 string
		prior, debit, credit string
		want                 string
	}{
		{"venda a prazo", "0", "500", "0", "500"},
		{"pagamento recebido", "500", "0", "200", "300"},
		{"devolução", "300", "0", "100", "200"},
		{"saldo negativo (crédito do cliente)", "50", "0", "80", "-30"},
	}

	for _, tc := range cases {
		got := NextBalance(EntityCustomer, d(tc.prior), d(tc.debit), d(tc.credit))
		if !got.Equal(d(tc.want)) {
			t.Errorf("%s: esperado %s, obtido %s", tc.name, tc.want, got)
		}
	}
}

func TestNextBalance_SupplierDuality(t *testing.T) {
	// compra a prazo aumenta o que a loja deve
	got := NextBalance(EntitySupplier, d("0"), d("0"), d("220000"))
	if !got.Equal(d("220000")) {
		t.Fatalf("compra: esperado 220000, obtido %s", got)
	}

	// pagamento ao fornecedor reduz
	got = NextBalance(EntitySupplier, got, d("50000"), d("0"))
	if !got.Equal(d("170000")) {
		t.Fatalf("pagamento: esperado 170000, obtido %s", got)
	}
}

func TestNewEntry_ComputesBalance(t *testing.T) {
	e, err := NewEntry(EntityCustomer, "c1", KindSale, time.Now(), "Venda #1", d("500"), d("0"), d("120"), "inv1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !e.Balance.Equal(d("620")) {
		t.Errorf("esperado saldo 620, obtido %s", e.Balance)
	}
}

func TestNewEntry_Validation(t *testing.T) {
	if _, err := NewEntry(EntityCustomer, "", KindSale, time.Now(), "", d("1"), d("0"), d("0"), ""); err != ErrEmptyEntity {
		t.Errorf("esperado ErrEmptyEntity, obtido %v", err)
	}
	if _, err := NewEntry(EntityCustomer, "c1", KindSale, time.Now(), "", d("-1"), d("0"), d("0"), ""); err != ErrNegativeAmount {
		t.Errorf("esperado ErrNegativeAmount, obtido %v", err)
	}
}

func TestReplay(t *testing.T) {
	now := time.Now()
	mk := func(kind Kind, debit, credit string) *Entry {
		e, err := NewEntry(EntityCustomer, "c1", kind, now, "", d(debit), d(credit), decimal.Zero, "")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		return e
	}

	entries := []*Entry{
		mk(KindSale, "500", "0"),
		mk(KindPaymentIn, "0", "200"),
		mk(KindSale, "150", "0"),
		mk(KindReturnIn, "0", "100"),
	}

	got := Replay(EntityCustomer, d("100"), entries)
	if !got.Equal(d("450")) {
		t.Errorf("replay: esperado 450, obtido %s", got)
	}
}
