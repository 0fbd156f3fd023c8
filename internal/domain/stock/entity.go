package stock

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/pos-ceramica/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

var ErrEmptyProduct = errors.New("produto do lançamento não informado")

// Log representa um lançamento imutável do histórico de estoque de um
// produto. OldStock/NewStock fotografam o saldo antes e depois do
// delta; o par deve ser sempre internamente consistente. Lançamentos
// nunca são editados; correções usam um novo lançamento de ADJUSTMENT
// com sinal oposto.
type Log struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	ProductID   string          `json:"product_id"`
	Kind        ledger.Kind     `json:"kind"`
	QtyChange   decimal.Decimal `json:"qty_change"`
	OldStock    decimal.Decimal `json:"old_stock"`
	NewStock    decimal.Decimal `json:"new_stock"`
	ReferenceID string          `json:"reference_id"`
	Note        string          `json:"note"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewLog cria um lançamento de estoque a partir do saldo de cache atual
// do produto. NewStock = oldStock + qtyChange; o chamador grava o valor
// retornado em NewStock de volta no cache do produto, na mesma unidade
// de trabalho.
func NewLog(productID string, kind ledger.Kind, date time.Time, qtyChange, oldStock decimal.Decimal, referenceID, note string) (*Log, error) {
	if productID == "" {
		return nil, ErrEmptyProduct
	}

	return &Log{
		ID:          uuid.New().String(),
		Date:        date,
		ProductID:   productID,
		Kind:        kind,
		QtyChange:   qtyChange,
		OldStock:    oldStock,
		NewStock:    oldStock.Add(qtyChange),
		ReferenceID: referenceID,
		Note:        note,
		CreatedAt:   time.Now(),
	}, nil
}
