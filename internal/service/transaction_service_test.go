package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pos-ceramica/internal/domain/account"
	"github.com/hugohenrick/pos-ceramica/internal/domain/customer"
	"github.com/hugohenrick/pos-ceramica/internal/domain/ledger"
	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
	"github.com/hugohenrick/pos-ceramica/internal/domain/quotation"
	"github.com/hugohenrick/pos-ceramica/internal/domain/sale"
	"github.com/hugohenrick/pos-ceramica/internal/domain/salesreturn"
	"github.com/hugohenrick/pos-ceramica/internal/domain/supplier"
	"github.com/hugohenrick/pos-ceramica/pkg/apperr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireDec(t *testing.T, want, got decimal.Decimal) {
	t.Helper()
	require.True(t, want.Equal(got), "esperado %s, obtido %s", want, got)
}

func newTestService(cfg Config) (*TransactionService, *memLedgerStore, *memHeldRepo) {
	store := newMemLedgerStore()
	held := newMemHeldRepo()
	return NewTransactionService(store, held, cfg, nopLogger{}), store, held
}

// seedTile cadastra um porcelanato vendido por caixa, com fator de
// cobertura de 16 sq.ft por caixa e 10 caixas em estoque
func seedTile(store *memLedgerStore) {
	p, _ := product.NewProduct("Porcelanato Bege 60x60", product.CategoryTile, product.UnitBox, "sup-1", dec("2000"), dec("2800"))
	p.ID = "tile-1"
	p.CoveragePerBox = dec("16")
	p.StockQty = dec("10")
	store.state.products[p.ID] = *p
}

func seedSanitary(store *memLedgerStore) {
	p, _ := product.NewProduct("Vaso Sanitário Branco", product.CategorySanitary, product.UnitPcs, "sup-1", dec("300"), dec("450"))
	p.ID = "san-1"
	p.StockQty = dec("5")
	store.state.products[p.ID] = *p
}

func seedCustomer(store *memLedgerStore, allowCredit bool, limit decimal.Decimal) {
	c, _ := customer.NewCustomer("Construtora Horizonte", []string{"9999-0001"}, decimal.Zero, limit, allowCredit)
	c.ID = "cust-1"
	store.state.customers[c.ID] = *c
}

func seedSupplier(store *memLedgerStore) {
	s, _ := supplier.NewSupplier("Cerâmica União", "Cerâmica União Ltda", "Paulo", []string{"8888-0001"}, decimal.Zero)
	s.ID = "sup-1"
	store.state.suppliers[s.ID] = *s
}

func seedAccount(store *memLedgerStore, id string, balance decimal.Decimal) {
	a, _ := account.NewAccount("Caixa "+id, account.TypeCash, "", "", balance)
	a.ID = id
	store.state.accounts[a.ID] = *a
}

// Venda balcão de porcelanato por metragem: 32 sq.ft com cobertura de
// 16 sq.ft/caixa baixam exatamente 2 caixas, e o preço por sq.ft é o
// preço da caixa dividido pela cobertura.
func TestCreateSaleTileBySquareFeet(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedAccount(store, "acc-1", dec("1000"))

	inv, err := svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("32"), SelectedUnit: product.UnitSqft},
		},
		ReceivedAmount: dec("5600"),
		AccountID:      "acc-1",
	})
	require.NoError(t, err)

	// preço derivado: 2800 / 16 = 175 por sq.ft; total 32 x 175 = 5600
	requireDec(t, dec("5600"), inv.Total)
	requireDec(t, decimal.Zero, inv.ChangeAmount)

	p := store.state.products["tile-1"]
	requireDec(t, dec("8"), p.StockQty)

	require.Len(t, store.state.stockLogs, 1)
	requireDec(t, dec("-2"), store.state.stockLogs[0].QtyChange)
	requireDec(t, dec("10"), store.state.stockLogs[0].OldStock)
	requireDec(t, dec("8"), store.state.stockLogs[0].NewStock)

	// venda balcão não lança nada no razão de clientes
	require.Empty(t, store.state.ledgerEntries)

	acc := store.state.accounts["acc-1"]
	requireDec(t, dec("6600"), acc.CurrentBalance)
	require.Len(t, store.state.accountTxs, 1)
	require.Equal(t, account.KindCashIn, store.state.accountTxs[0].Kind)
	require.Equal(t, account.ModulePOS, store.state.accountTxs[0].ReferenceModule)
}

// O mesmo produto em duas linhas do carrinho (caixa fechada mais
// metragem avulsa): a segunda baixa parte do estoque já reduzido pela
// primeira, e o cache fecha com o somatório do stock log.
func TestCreateSaleSameProductTwoLines(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedAccount(store, "acc-1", decimal.Zero)

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("1"), SelectedUnit: product.UnitBox},
			{ProductID: "tile-1", Quantity: dec("16"), SelectedUnit: product.UnitSqft},
		},
		ReceivedAmount: dec("5600"),
		AccountID:      "acc-1",
	})
	require.NoError(t, err)

	p := store.state.products["tile-1"]
	requireDec(t, dec("8"), p.StockQty)

	require.Len(t, store.state.stockLogs, 2)
	requireDec(t, dec("10"), store.state.stockLogs[0].OldStock)
	requireDec(t, dec("9"), store.state.stockLogs[0].NewStock)
	requireDec(t, dec("9"), store.state.stockLogs[1].OldStock)
	requireDec(t, dec("8"), store.state.stockLogs[1].NewStock)

	replayed := dec("10")
	for _, l := range store.state.stockLogs {
		replayed = replayed.Add(l.QtyChange)
	}
	requireDec(t, replayed, p.StockQty)
}

// Com estoque negativo barrado, a validação soma as baixas planejadas
// de todas as linhas do mesmo produto.
func TestCreateSaleSameProductTwoLinesStockPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowNegativeStock = false
	svc, store, _ := newTestService(cfg)
	seedTile(store)
	seedAccount(store, "acc-1", decimal.Zero)

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("6"), SelectedUnit: product.UnitBox},
			{ProductID: "tile-1", Quantity: dec("80"), SelectedUnit: product.UnitSqft},
		},
		ReceivedAmount: dec("30800"),
		AccountID:      "acc-1",
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	require.Empty(t, store.state.stockLogs)

	p := store.state.products["tile-1"]
	requireDec(t, dec("10"), p.StockQty)
}

// Venda a prazo com pagamento parcial: o razão recebe o débito da venda
// inteira e depois o crédito do recebido, nessa ordem; o saldo do
// cliente fica com a diferença e a conta só recebe o que entrou.
func TestCreateSaleOnCreditPartialPayment(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedCustomer(store, true, decimal.Zero)
	seedAccount(store, "acc-1", decimal.Zero)

	inv, err := svc.CreateSale(context.Background(), CreateSaleInput{
		CustomerID: "cust-1",
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("3"), SelectedUnit: product.UnitBox},
		},
		ReceivedAmount: dec("4000"),
		AccountID:      "acc-1",
	})
	require.NoError(t, err)
	requireDec(t, dec("8400"), inv.Total)

	entries := store.entriesFor(ledger.EntityCustomer, "cust-1")
	require.Len(t, entries, 2)
	require.Equal(t, ledger.KindSale, entries[0].Kind)
	requireDec(t, dec("8400"), entries[0].Debit)
	requireDec(t, dec("8400"), entries[0].Balance)
	require.Equal(t, ledger.KindPaymentIn, entries[1].Kind)
	requireDec(t, dec("4000"), entries[1].Credit)
	requireDec(t, dec("4400"), entries[1].Balance)

	cust := store.state.customers["cust-1"]
	requireDec(t, dec("4400"), cust.CurrentBalance)

	acc := store.state.accounts["acc-1"]
	requireDec(t, dec("4000"), acc.CurrentBalance)
}

// Troco: recebido acima do total não vira crédito do cliente; a conta
// registra apenas recebido menos troco.
func TestCreateSaleChangeDoesNotEnterLedger(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedCustomer(store, true, decimal.Zero)
	seedAccount(store, "acc-1", decimal.Zero)

	inv, err := svc.CreateSale(context.Background(), CreateSaleInput{
		CustomerID: "cust-1",
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("1"), SelectedUnit: product.UnitBox},
		},
		ReceivedAmount: dec("3000"),
		AccountID:      "acc-1",
	})
	require.NoError(t, err)
	requireDec(t, dec("200"), inv.ChangeAmount)

	cust := store.state.customers["cust-1"]
	requireDec(t, decimal.Zero, cust.CurrentBalance)

	acc := store.state.accounts["acc-1"]
	requireDec(t, dec("2800"), acc.CurrentBalance)
}

// Conversão de unidade indisponível: vender louça sanitária por
// metragem falha antes de qualquer escrita.
func TestCreateSaleInvalidUnitConversion(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedSanitary(store)
	seedAccount(store, "acc-1", decimal.Zero)

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: "san-1", Quantity: dec("10"), SelectedUnit: product.UnitSqft},
		},
		ReceivedAmount: dec("100"),
		AccountID:      "acc-1",
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidUnitConversion, apperr.KindOf(err))

	p := store.state.products["san-1"]
	requireDec(t, dec("5"), p.StockQty)
	require.Empty(t, store.state.stockLogs)
	require.Empty(t, store.state.accountTxs)
	require.Empty(t, store.state.sales)
}

// Tile sem fator de cobertura cadastrado também não converte
func TestCreateSaleTileWithoutCoverage(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	p, _ := product.NewProduct("Azulejo Sem Cadastro", product.CategoryTile, product.UnitBox, "sup-1", dec("100"), dec("150"))
	p.ID = "tile-2"
	p.StockQty = dec("4")
	store.state.products[p.ID] = *p
	seedAccount(store, "acc-1", decimal.Zero)

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: "tile-2", Quantity: dec("16"), SelectedUnit: product.UnitSqft},
		},
		ReceivedAmount: dec("150"),
		AccountID:      "acc-1",
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidUnitConversion, apperr.KindOf(err))
}

// Venda balcão exige pagamento integral
func TestCreateSaleWalkInRequiresFullPayment(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedAccount(store, "acc-1", decimal.Zero)

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("1"), SelectedUnit: product.UnitBox},
		},
		ReceivedAmount: dec("1000"),
		AccountID:      "acc-1",
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	require.Empty(t, store.state.stockLogs)
}

// Cliente sem permissão de crédito não compra a prazo
func TestCreateSaleCreditBlocked(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedCustomer(store, false, decimal.Zero)
	seedAccount(store, "acc-1", decimal.Zero)

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		CustomerID: "cust-1",
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("2"), SelectedUnit: product.UnitBox},
		},
		ReceivedAmount: dec("1000"),
		AccountID:      "acc-1",
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindCreditBlocked, apperr.KindOf(err))
	require.Empty(t, store.state.stockLogs)
	require.Empty(t, store.state.ledgerEntries)
}

// Limite de crédito: com a política ativa a venda acima do limite é
// barrada, salvo confirmação explícita do operador.
func TestCreateSaleCreditLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnforceCreditLimit = true
	svc, store, _ := newTestService(cfg)
	seedTile(store)
	seedCustomer(store, true, dec("5000"))
	seedAccount(store, "acc-1", decimal.Zero)

	in := CreateSaleInput{
		CustomerID: "cust-1",
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("3"), SelectedUnit: product.UnitBox},
		},
		ReceivedAmount: decimal.Zero,
		AccountID:      "acc-1",
	}

	_, err := svc.CreateSale(context.Background(), in)
	require.Error(t, err)
	require.Equal(t, apperr.KindCreditLimit, apperr.KindOf(err))

	in.CreditOverride = true
	inv, err := svc.CreateSale(context.Background(), in)
	require.NoError(t, err)
	requireDec(t, dec("8400"), inv.Total)
}

// Estoque negativo: permitido por padrão (venda da exposição), barrado
// quando a política desliga.
func TestCreateSaleNegativeStockPolicy(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedAccount(store, "acc-1", decimal.Zero)

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("12"), SelectedUnit: product.UnitBox},
		},
		ReceivedAmount: dec("33600"),
		AccountID:      "acc-1",
	})
	require.NoError(t, err)
	p := store.state.products["tile-1"]
	requireDec(t, dec("-2"), p.StockQty)

	cfg := DefaultConfig()
	cfg.AllowNegativeStock = false
	svc2, store2, _ := newTestService(cfg)
	seedTile(store2)
	seedAccount(store2, "acc-1", decimal.Zero)

	_, err = svc2.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("12"), SelectedUnit: product.UnitBox},
		},
		ReceivedAmount: dec("33600"),
		AccountID:      "acc-1",
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

// Venda em espera é rascunho: nada entra nos razões; finalizar a venda
// remove o rascunho.
func TestHoldAndRetrieveInvoice(t *testing.T) {
	svc, store, held := newTestService(DefaultConfig())
	seedTile(store)
	seedAccount(store, "acc-1", decimal.Zero)

	draft, err := svc.HoldInvoice(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("2"), SelectedUnit: product.UnitBox, UnitPrice: dec("2800")},
		},
	})
	require.NoError(t, err)
	require.Equal(t, sale.StatusHold, draft.Status)

	require.Empty(t, store.state.stockLogs)
	require.Empty(t, store.state.ledgerEntries)
	require.Empty(t, store.state.accountTxs)
	p := store.state.products["tile-1"]
	requireDec(t, dec("10"), p.StockQty)

	got, err := svc.RetrieveHeldInvoice(context.Background(), draft.ID)
	require.NoError(t, err)
	requireDec(t, dec("5600"), got.Total)

	_, err = svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("2"), SelectedUnit: product.UnitBox},
		},
		ReceivedAmount: dec("5600"),
		AccountID:      "acc-1",
		HeldInvoiceID:  draft.ID,
	})
	require.NoError(t, err)
	require.Empty(t, held.held)
}

// Compra a prazo seguida de pagamento: a dualidade de sinais do
// fornecedor (crédito aumenta a dívida da loja, débito reduz).
func TestPurchaseAndPaySupplier(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedSupplier(store)
	seedAccount(store, "acc-1", dec("50000"))

	inv, err := svc.CreatePurchase(context.Background(), CreatePurchaseInput{
		SupplierID: "sup-1",
		Items: []PurchaseItemInput{
			{ProductID: "tile-1", Quantity: dec("10"), CostPrice: dec("2000")},
		},
	})
	require.NoError(t, err)
	requireDec(t, dec("20000"), inv.TotalAmount)

	p := store.state.products["tile-1"]
	requireDec(t, dec("20"), p.StockQty)

	sup := store.state.suppliers["sup-1"]
	requireDec(t, dec("20000"), sup.CurrentBalance)

	err = svc.PaySupplier(context.Background(), PaymentInput{
		EntityID:  "sup-1",
		AccountID: "acc-1",
		Amount:    dec("5000"),
	})
	require.NoError(t, err)

	sup = store.state.suppliers["sup-1"]
	requireDec(t, dec("15000"), sup.CurrentBalance)

	acc := store.state.accounts["acc-1"]
	requireDec(t, dec("45000"), acc.CurrentBalance)

	entries := store.entriesFor(ledger.EntitySupplier, "sup-1")
	require.Len(t, entries, 2)
	require.Equal(t, ledger.KindPurchase, entries[0].Kind)
	require.Equal(t, ledger.KindPaymentOut, entries[1].Kind)
	requireDec(t, dec("15000"), entries[1].Balance)
}

// Compra com pagamento parcial na hora: crédito da nota e débito do
// pago entram juntos, com saída da conta.
func TestPurchaseWithPartialPayment(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedSupplier(store)
	seedAccount(store, "acc-1", dec("10000"))

	_, err := svc.CreatePurchase(context.Background(), CreatePurchaseInput{
		SupplierID: "sup-1",
		Items: []PurchaseItemInput{
			{ProductID: "tile-1", Quantity: dec("5"), CostPrice: dec("2000")},
		},
		PaidAmount: dec("4000"),
		AccountID:  "acc-1",
	})
	require.NoError(t, err)

	sup := store.state.suppliers["sup-1"]
	requireDec(t, dec("6000"), sup.CurrentBalance)

	acc := store.state.accounts["acc-1"]
	requireDec(t, dec("6000"), acc.CurrentBalance)
}

// Saldo insuficiente aborta o pagamento inteiro: nenhum lançamento
// persiste, nem no razão do fornecedor.
func TestPaySupplierInsufficientFundsRollsBack(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedSupplier(store)
	seedAccount(store, "acc-1", dec("1000"))

	// dívida prévia para o pagamento fazer sentido
	sup := store.state.suppliers["sup-1"]
	sup.CurrentBalance = dec("20000")
	store.state.suppliers["sup-1"] = sup

	err := svc.PaySupplier(context.Background(), PaymentInput{
		EntityID:  "sup-1",
		AccountID: "acc-1",
		Amount:    dec("5000"),
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindInsufficientFunds, apperr.KindOf(err))

	require.Empty(t, store.entriesFor(ledger.EntitySupplier, "sup-1"))
	require.Empty(t, store.state.accountTxs)
	sup = store.state.suppliers["sup-1"]
	requireDec(t, dec("20000"), sup.CurrentBalance)
	acc := store.state.accounts["acc-1"]
	requireDec(t, dec("1000"), acc.CurrentBalance)
}

// Recebimento de cliente baixa o saldo devedor e entra na conta
func TestReceiveCustomerPayment(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedCustomer(store, true, decimal.Zero)
	seedAccount(store, "acc-1", decimal.Zero)

	cust := store.state.customers["cust-1"]
	cust.CurrentBalance = dec("4400")
	store.state.customers["cust-1"] = cust

	err := svc.ReceiveCustomerPayment(context.Background(), PaymentInput{
		EntityID:  "cust-1",
		AccountID: "acc-1",
		Amount:    dec("4400"),
	})
	require.NoError(t, err)

	cust = store.state.customers["cust-1"]
	requireDec(t, decimal.Zero, cust.CurrentBalance)
	acc := store.state.accounts["acc-1"]
	requireDec(t, dec("4400"), acc.CurrentBalance)
}

// Devolução parcial em dinheiro: estoque volta, a conta paga o
// reembolso e a nota vira PARTIAL_RETURN; devolvendo o resto vira
// RETURNED.
func TestProcessReturnPartialThenFull(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedAccount(store, "acc-1", dec("10000"))

	inv, err := svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("2"), SelectedUnit: product.UnitBox},
		},
		ReceivedAmount: dec("5600"),
		AccountID:      "acc-1",
	})
	require.NoError(t, err)

	ret, err := svc.ProcessReturn(context.Background(), ProcessReturnInput{
		SaleInvoiceID: inv.ID,
		Items: []ReturnItemInput{
			{ProductID: "tile-1", Quantity: dec("1"), SelectedUnit: product.UnitBox},
		},
		RefundMethod: salesreturn.RefundCash,
		AccountID:    "acc-1",
	})
	require.NoError(t, err)
	requireDec(t, dec("2800"), ret.TotalAmount)

	p := store.state.products["tile-1"]
	requireDec(t, dec("9"), p.StockQty)

	acc := store.state.accounts["acc-1"]
	requireDec(t, dec("12800"), acc.CurrentBalance) // 10000 + 5600 - 2800

	stored := store.state.sales[inv.ID]
	require.Equal(t, sale.StatusPartialReturn, stored.Status)

	_, err = svc.ProcessReturn(context.Background(), ProcessReturnInput{
		SaleInvoiceID: inv.ID,
		Items: []ReturnItemInput{
			{ProductID: "tile-1", Quantity: dec("1"), SelectedUnit: product.UnitBox},
		},
		RefundMethod: salesreturn.RefundCash,
		AccountID:    "acc-1",
	})
	require.NoError(t, err)

	stored = store.state.sales[inv.ID]
	require.Equal(t, sale.StatusReturned, stored.Status)
	p = store.state.products["tile-1"]
	requireDec(t, dec("10"), p.StockQty)
}

// Devolver mais do que foi vendido é conflito e não escreve nada
func TestProcessReturnExceedsSoldQty(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedAccount(store, "acc-1", dec("10000"))

	inv, err := svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("2"), SelectedUnit: product.UnitBox},
		},
		ReceivedAmount: dec("5600"),
		AccountID:      "acc-1",
	})
	require.NoError(t, err)
	logsBefore := len(store.state.stockLogs)

	_, err = svc.ProcessReturn(context.Background(), ProcessReturnInput{
		SaleInvoiceID: inv.ID,
		Items: []ReturnItemInput{
			{ProductID: "tile-1", Quantity: dec("3"), SelectedUnit: product.UnitBox},
		},
		RefundMethod: salesreturn.RefundCash,
		AccountID:    "acc-1",
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	require.Len(t, store.state.stockLogs, logsBefore)
	require.Empty(t, store.state.returns)
}

// Devolução em crédito abate o saldo devedor do cliente em vez de sair
// da conta
func TestProcessReturnAsCustomerCredit(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedCustomer(store, true, decimal.Zero)
	seedAccount(store, "acc-1", decimal.Zero)

	inv, err := svc.CreateSale(context.Background(), CreateSaleInput{
		CustomerID: "cust-1",
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("2"), SelectedUnit: product.UnitBox},
		},
		ReceivedAmount: decimal.Zero,
		AccountID:      "acc-1",
	})
	require.NoError(t, err)

	cust := store.state.customers["cust-1"]
	requireDec(t, dec("5600"), cust.CurrentBalance)

	_, err = svc.ProcessReturn(context.Background(), ProcessReturnInput{
		SaleInvoiceID: inv.ID,
		Items: []ReturnItemInput{
			{ProductID: "tile-1", Quantity: dec("1"), SelectedUnit: product.UnitBox},
		},
		RefundMethod: salesreturn.RefundCredit,
	})
	require.NoError(t, err)

	cust = store.state.customers["cust-1"]
	requireDec(t, dec("2800"), cust.CurrentBalance)
	require.Empty(t, store.state.accountTxs)
}

// Reembolso em dinheiro de venda com cliente: a conta paga o reembolso
// e o razão do cliente também recebe o crédito da devolução.
func TestProcessReturnCashWithCustomer(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedCustomer(store, true, decimal.Zero)
	seedAccount(store, "acc-1", dec("10000"))

	inv, err := svc.CreateSale(context.Background(), CreateSaleInput{
		CustomerID: "cust-1",
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("3"), SelectedUnit: product.UnitBox},
		},
		ReceivedAmount: dec("8400"),
		AccountID:      "acc-1",
	})
	require.NoError(t, err)

	_, err = svc.ProcessReturn(context.Background(), ProcessReturnInput{
		SaleInvoiceID: inv.ID,
		Items: []ReturnItemInput{
			{ProductID: "tile-1", Quantity: dec("1"), SelectedUnit: product.UnitBox},
		},
		RefundMethod: salesreturn.RefundCash,
		AccountID:    "acc-1",
	})
	require.NoError(t, err)

	// conta: 10000 + 8400 - 2800
	acc := store.state.accounts["acc-1"]
	requireDec(t, dec("15600"), acc.CurrentBalance)

	// razão do cliente: venda, recebimento e devolução
	entries := store.entriesFor(ledger.EntityCustomer, "cust-1")
	require.Len(t, entries, 3)
	require.Equal(t, ledger.KindReturnIn, entries[2].Kind)
	requireDec(t, dec("2800"), entries[2].Credit)

	cust := store.state.customers["cust-1"]
	requireDec(t, dec("-2800"), cust.CurrentBalance)
}

// Despesa: lançar tira da conta; excluir devolve por estorno, sem
// apagar a movimentação original.
func TestAddAndDeleteExpense(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedAccount(store, "acc-1", dec("5000"))

	exp, err := svc.AddExpense(context.Background(), AddExpenseInput{
		CategoryID: "cat-1",
		AccountID:  "acc-1",
		Amount:     dec("1500"),
		Note:       "Frete",
	})
	require.NoError(t, err)

	acc := store.state.accounts["acc-1"]
	requireDec(t, dec("3500"), acc.CurrentBalance)

	err = svc.DeleteExpense(context.Background(), exp.ID)
	require.NoError(t, err)

	acc = store.state.accounts["acc-1"]
	requireDec(t, dec("5000"), acc.CurrentBalance)
	require.Empty(t, store.state.expenses)

	// as duas movimentações continuam no histórico
	require.Len(t, store.state.accountTxs, 2)
	require.Equal(t, account.KindCashOut, store.state.accountTxs[0].Kind)
	require.Equal(t, account.KindCashIn, store.state.accountTxs[1].Kind)
	require.Equal(t, store.state.accountTxs[0].ReferenceID, store.state.accountTxs[1].ReferenceID)
}

// Transferência entre contas: saída e entrada com a mesma referência
func TestTransferFunds(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedAccount(store, "acc-1", dec("8000"))
	seedAccount(store, "acc-2", dec("1000"))

	err := svc.TransferFunds(context.Background(), TransferFundsInput{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        dec("2000"),
	})
	require.NoError(t, err)

	requireDec(t, dec("6000"), store.state.accounts["acc-1"].CurrentBalance)
	requireDec(t, dec("3000"), store.state.accounts["acc-2"].CurrentBalance)

	require.Len(t, store.state.accountTxs, 2)
	require.Equal(t, account.KindTransferOut, store.state.accountTxs[0].Kind)
	require.Equal(t, account.KindTransferIn, store.state.accountTxs[1].Kind)
	require.Equal(t, store.state.accountTxs[0].ReferenceID, store.state.accountTxs[1].ReferenceID)

	// transferir acima do saldo é permitido: o bloqueio por saldo
	// vale só para pagamento a fornecedor
	err = svc.TransferFunds(context.Background(), TransferFundsInput{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        dec("7000"),
	})
	require.NoError(t, err)
	requireDec(t, dec("-1000"), store.state.accounts["acc-1"].CurrentBalance)
	requireDec(t, dec("10000"), store.state.accounts["acc-2"].CurrentBalance)
}

// Ajuste manual de estoque lança a diferença como ADJUSTMENT
func TestAdjustStock(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)

	log, err := svc.AdjustStock(context.Background(), AdjustStockInput{
		ProductID: "tile-1",
		NewQty:    dec("7"),
		Note:      "contagem física",
	})
	require.NoError(t, err)
	requireDec(t, dec("-3"), log.QtyChange)
	require.Equal(t, ledger.KindAdjustment, log.Kind)

	p := store.state.products["tile-1"]
	requireDec(t, dec("7"), p.StockQty)

	_, err = svc.AdjustStock(context.Background(), AdjustStockInput{
		ProductID: "tile-1",
		NewQty:    dec("7"),
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

// Conversão de orçamento: vira venda na mesma unidade de trabalho;
// converter de novo é conflito.
func TestConvertQuotation(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedCustomer(store, true, decimal.Zero)
	seedAccount(store, "acc-1", decimal.Zero)

	q, err := quotation.NewQuotation("cust-1", "Construtora Horizonte", time.Now().Add(7*24*time.Hour),
		[]sale.CartItem{
			{ProductID: "tile-1", Quantity: dec("2"), SelectedUnit: product.UnitBox, UnitPrice: dec("2800")},
		}, decimal.Zero, decimal.Zero, "", "", "user-1")
	require.NoError(t, err)
	store.state.quotations[q.ID] = *q

	inv, err := svc.ConvertQuotation(context.Background(), ConvertQuotationInput{
		QuotationID:    q.ID,
		ReceivedAmount: dec("5600"),
		AccountID:      "acc-1",
	})
	require.NoError(t, err)
	requireDec(t, dec("5600"), inv.Total)

	stored := store.state.quotations[q.ID]
	require.Equal(t, quotation.StatusConverted, stored.Status)

	p := store.state.products["tile-1"]
	requireDec(t, dec("8"), p.StockQty)

	_, err = svc.ConvertQuotation(context.Background(), ConvertQuotationInput{
		QuotationID:    q.ID,
		ReceivedAmount: dec("5600"),
		AccountID:      "acc-1",
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	p = store.state.products["tile-1"]
	requireDec(t, dec("8"), p.StockQty)
}

// Orçamento vencido não converte em venda
func TestConvertQuotationExpired(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedCustomer(store, true, decimal.Zero)
	seedAccount(store, "acc-1", decimal.Zero)

	q, err := quotation.NewQuotation("cust-1", "Construtora Horizonte", time.Now().Add(-24*time.Hour),
		[]sale.CartItem{
			{ProductID: "tile-1", Quantity: dec("1"), SelectedUnit: product.UnitBox, UnitPrice: dec("2800")},
		}, decimal.Zero, decimal.Zero, "", "", "user-1")
	require.NoError(t, err)
	store.state.quotations[q.ID] = *q

	_, err = svc.ConvertQuotation(context.Background(), ConvertQuotationInput{
		QuotationID:    q.ID,
		ReceivedAmount: dec("2800"),
		AccountID:      "acc-1",
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	stored := store.state.quotations[q.ID]
	require.Equal(t, quotation.StatusPending, stored.Status)
	p := store.state.products["tile-1"]
	requireDec(t, dec("10"), p.StockQty)
	require.Empty(t, store.state.sales)
}

// Consistência por replay: depois de uma sequência de operações, cada
// saldo de cache bate com a reconstrução a partir do seu razão.
func TestReplayConsistencyAfterMixedOperations(t *testing.T) {
	svc, store, _ := newTestService(DefaultConfig())
	seedTile(store)
	seedCustomer(store, true, decimal.Zero)
	seedSupplier(store)
	seedAccount(store, "acc-1", dec("30000"))

	ctx := context.Background()

	_, err := svc.CreatePurchase(ctx, CreatePurchaseInput{
		SupplierID: "sup-1",
		Items:      []PurchaseItemInput{{ProductID: "tile-1", Quantity: dec("10"), CostPrice: dec("2000")}},
		PaidAmount: dec("8000"),
		AccountID:  "acc-1",
	})
	require.NoError(t, err)

	inv, err := svc.CreateSale(ctx, CreateSaleInput{
		CustomerID: "cust-1",
		Items: []SaleItemInput{
			{ProductID: "tile-1", Quantity: dec("64"), SelectedUnit: product.UnitSqft},
		},
		ReceivedAmount: dec("5000"),
		AccountID:      "acc-1",
	})
	require.NoError(t, err)

	err = svc.ReceiveCustomerPayment(ctx, PaymentInput{EntityID: "cust-1", AccountID: "acc-1", Amount: dec("3000")})
	require.NoError(t, err)

	err = svc.PaySupplier(ctx, PaymentInput{EntityID: "sup-1", AccountID: "acc-1", Amount: dec("6000")})
	require.NoError(t, err)

	_, err = svc.ProcessReturn(ctx, ProcessReturnInput{
		SaleInvoiceID: inv.ID,
		Items:         []ReturnItemInput{{ProductID: "tile-1", Quantity: dec("16"), SelectedUnit: product.UnitSqft}},
		RefundMethod:  salesreturn.RefundCredit,
	})
	require.NoError(t, err)

	// cliente: cache == replay do razão sobre o saldo de abertura
	cust := store.state.customers["cust-1"]
	replayed := ledger.Replay(ledger.EntityCustomer, cust.OpeningBalance, store.entriesFor(ledger.EntityCustomer, cust.ID))
	requireDec(t, replayed, cust.CurrentBalance)

	// fornecedor idem, com a dualidade de sinais
	sup := store.state.suppliers["sup-1"]
	replayed = ledger.Replay(ledger.EntitySupplier, sup.OpeningBalance, store.entriesFor(ledger.EntitySupplier, sup.ID))
	requireDec(t, replayed, sup.CurrentBalance)

	// estoque: cache == somatório dos deltas do stock log
	p := store.state.products["tile-1"]
	sum := dec("10") // estoque semeado antes do primeiro lançamento
	for _, l := range store.state.stockLogs {
		if l.ProductID == p.ID {
			sum = sum.Add(l.QtyChange)
		}
	}
	requireDec(t, sum, p.StockQty)

	// conta: cache == abertura + somatório assinado das movimentações
	acc := store.state.accounts["acc-1"]
	balance := acc.OpeningBalance
	for _, tx := range store.state.accountTxs {
		if tx.AccountID != acc.ID {
			continue
		}
		if tx.Kind.Increases() {
			balance = balance.Add(tx.Amount)
		} else {
			balance = balance.Sub(tx.Amount)
		}
	}
	requireDec(t, balance, acc.CurrentBalance)

	// cada par OldStock/NewStock é internamente consistente
	for _, l := range store.state.stockLogs {
		requireDec(t, l.OldStock.Add(l.QtyChange), l.NewStock)
	}
}
