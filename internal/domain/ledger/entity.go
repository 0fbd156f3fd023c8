package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyEntity    = errors.New("entidade do lançamento não informada")
	ErrNegativeAmount = errors.New("débito e crédito devem ser não-negativos")
)

// EntityType identifica o lado do razão: cliente ou fornecedor
type EntityType string

const (
	EntityCustomer EntityType = "customer"
	EntitySupplier EntityType = "supplier"
)

// Kind define o tipo de lançamento do razão financeiro
type Kind string

const (
	KindSale       Kind = "SALE"
	KindPurchase   Kind = "PURCHASE"
	KindPaymentIn  Kind = "PAYMENT_IN"
	KindPaymentOut Kind = "PAYMENT_OUT"
	KindReturnIn   Kind = "RETURN_IN"
	KindReturnOut  Kind = "RETURN_OUT"
	KindAdjustment Kind = "ADJUSTMENT"
)

// Entry representa um lançamento imutável do razão financeiro de um
// cliente ou fornecedor. Balance é a fotografia do saldo da entidade
// logo após o lançamento. Lançamentos nunca são editados nem excluídos;
// correções geram lançamento inverso.
type Entry struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	EntityType  EntityType      `json:"entity_type"`
	EntityID    string          `json:"entity_id"`
	Kind        Kind            `json:"kind"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
	ReferenceID string          `json:"reference_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewEntry cria um lançamento já com o saldo resultante calculado a
// partir do saldo anterior da entidade.
func NewEntry(entityType EntityType, entityID string, kind Kind, date time.Time, description string, debit, credit, priorBalance decimal.Decimal, referenceID string) (*Entry, error) {
	if entityID == "" {
		return nil, ErrEmptyEntity
	}
	if debit.IsNegative() || credit.IsNegative() {
		return nil, ErrNegativeAmount
	}

	return &Entry{
		ID:          uuid.New().String(),
		Date:        date,
		EntityType:  entityType,
		EntityID:    entityID,
		Kind:        kind,
		Description: description,
		Debit:       debit,
		Credit:      credit,
		Balance:     NextBalance(entityType, priorBalance, debit, credit),
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	}, nil
}

// NextBalance aplica a convenção de sinais do razão. Para clientes,
// débito aumenta o que o cliente deve à loja e crédito diminui. Para
// fornecedores a dualidade inverte: crédito aumenta o que a loja deve
// ao fornecedor (compra a prazo) e débito diminui (pagamento).
func NextBalance(entityType EntityType, prior, debit, credit decimal.Decimal) decimal.Decimal {
	if entityType == EntitySupplier {
		return prior.Add(credit).Sub(debit)
	}
	return prior.Add(debit).Sub(credit)
}

// Replay reconstrói o saldo final a partir do saldo de abertura e da
// sequência de lançamentos. Usado nos testes de consistência
// cache-versus-ledger.
func Replay(entityType EntityType, opening decimal.Decimal, entries []*Entry) decimal.Decimal {
	balance := opening
	for _, e := range entries {
		balance = NextBalance(entityType, balance, e.Debit, e.Credit)
	}
	return balance
}
