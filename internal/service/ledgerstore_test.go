package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/account"
	"github.com/hugohenrick/pos-ceramica/internal/domain/customer"
	"github.com/hugohenrick/pos-ceramica/internal/domain/expense"
	"github.com/hugohenrick/pos-ceramica/internal/domain/ledger"
	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
	"github.com/hugohenrick/pos-ceramica/internal/domain/purchase"
	"github.com/hugohenrick/pos-ceramica/internal/domain/quotation"
	"github.com/hugohenrick/pos-ceramica/internal/domain/sale"
	"github.com/hugohenrick/pos-ceramica/internal/domain/salesreturn"
	"github.com/hugohenrick/pos-ceramica/internal/domain/stock"
	"github.com/hugohenrick/pos-ceramica/internal/domain/supplier"
)

var errMemNotFound = errors.New("registro não encontrado")

// memState guarda todas as coleções em memória
type memState struct {
	products   map[string]product.Product
	customers  map[string]customer.Customer
	suppliers  map[string]supplier.Supplier
	accounts   map[string]account.Account
	sales      map[string]sale.Invoice
	purchases  map[string]purchase.Invoice
	returns    map[string]salesreturn.Invoice
	expenses   map[string]expense.Expense
	quotations map[string]quotation.Quotation

	stockLogs     []*stock.Log
	ledgerEntries []*ledger.Entry
	accountTxs    []*account.Transaction
}

func newMemState() *memState {
	return &memState{
		products:   map[string]product.Product{},
		customers:  map[string]customer.Customer{},
		suppliers:  map[string]supplier.Supplier{},
		accounts:   map[string]account.Account{},
		sales:      map[string]sale.Invoice{},
		purchases:  map[string]purchase.Invoice{},
		returns:    map[string]salesreturn.Invoice{},
		expenses:   map[string]expense.Expense{},
		quotations: map[string]quotation.Quotation{},
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.suppliers {
		c.suppliers[k] = v
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	for k, v := range s.purchases {
		c.purchases[k] = v
	}
	for k, v := range s.returns {
		c.returns[k] = v
	}
	for k, v := range s.expenses {
		c.expenses[k] = v
	}
	for k, v := range s.quotations {
		c.quotations[k] = v
	}
	c.stockLogs = append([]*stock.Log(nil), s.stockLogs...)
	c.ledgerEntries = append([]*ledger.Entry(nil), s.ledgerEntries...)
	c.accountTxs = append([]*account.Transaction(nil), s.accountTxs...)
	return c
}

// memLedgerStore implementa LedgerStore e LedgerOps sobre memState.
// Execute tira uma fotografia do estado antes de fn e restaura em caso
// de erro, reproduzindo o rollback da transação real.
type memLedgerStore struct {
	state *memState
}

func newMemLedgerStore() *memLedgerStore {
	return &memLedgerStore{state: newMemState()}
}

func (m *memLedgerStore) Execute(ctx context.Context, fn func(ops LedgerOps) error) error {
	snapshot := m.state.clone()
	if err := fn(m); err != nil {
		m.state = snapshot
		return err
	}
	return nil
}

func (m *memLedgerStore) GetProductForUpdate(ctx context.Context, id string) (*product.Product, error) {
	p, ok := m.state.products[id]
	if !ok {
		return nil, errMemNotFound
	}
	return &p, nil
}

func (m *memLedgerStore) UpdateProductStock(ctx context.Context, id string, newQty decimal.Decimal) error {
	p, ok := m.state.products[id]
	if !ok {
		return errMemNotFound
	}
	p.StockQty = newQty
	m.state.products[id] = p
	return nil
}

func (m *memLedgerStore) AppendStockLog(ctx context.Context, log *stock.Log) error {
	m.state.stockLogs = append(m.state.stockLogs, log)
	return nil
}

func (m *memLedgerStore) GetCustomerForUpdate(ctx context.Context, id string) (*customer.Customer, error) {
	c, ok := m.state.customers[id]
	if !ok {
		return nil, errMemNotFound
	}
	return &c, nil
}

func (m *memLedgerStore) UpdateCustomerBalance(ctx context.Context, id string, newBalance decimal.Decimal) error {
	c, ok := m.state.customers[id]
	if !ok {
		return errMemNotFound
	}
	c.CurrentBalance = newBalance
	m.state.customers[id] = c
	return nil
}

func (m *memLedgerStore) GetSupplierForUpdate(ctx context.Context, id string) (*supplier.Supplier, error) {
	s, ok := m.state.suppliers[id]
	if !ok {
		return nil, errMemNotFound
	}
	return &s, nil
}

func (m *memLedgerStore) UpdateSupplierBalance(ctx context.Context, id string, newBalance decimal.Decimal) error {
	s, ok := m.state.suppliers[id]
	if !ok {
		return errMemNotFound
	}
	s.CurrentBalance = newBalance
	m.state.suppliers[id] = s
	return nil
}

func (m *memLedgerStore) AppendLedgerEntry(ctx context.Context, entry *ledger.Entry) error {
	m.state.ledgerEntries = append(m.state.ledgerEntries, entry)
	return nil
}

func (m *memLedgerStore) GetAccountForUpdate(ctx context.Context, id string) (*account.Account, error) {
	a, ok := m.state.accounts[id]
	if !ok {
		return nil, errMemNotFound
	}
	return &a, nil
}

func (m *memLedgerStore) UpdateAccountBalance(ctx context.Context, id string, newBalance decimal.Decimal) error {
	a, ok := m.state.accounts[id]
	if !ok {
		return errMemNotFound
	}
	a.CurrentBalance = newBalance
	m.state.accounts[id] = a
	return nil
}

func (m *memLedgerStore) AppendAccountTransaction(ctx context.Context, tx *account.Transaction) error {
	m.state.accountTxs = append(m.state.accountTxs, tx)
	return nil
}

func (m *memLedgerStore) CreateSaleInvoice(ctx context.Context, inv *sale.Invoice) error {
	m.state.sales[inv.ID] = *inv
	return nil
}

func (m *memLedgerStore) GetSaleInvoiceForUpdate(ctx context.Context, id string) (*sale.Invoice, error) {
	inv, ok := m.state.sales[id]
	if !ok {
		return nil, errMemNotFound
	}
	return &inv, nil
}

func (m *memLedgerStore) UpdateSaleInvoiceStatus(ctx context.Context, id string, status sale.Status) error {
	inv, ok := m.state.sales[id]
	if !ok {
		return errMemNotFound
	}
	inv.Status = status
	m.state.sales[id] = inv
	return nil
}

func (m *memLedgerStore) CreatePurchaseInvoice(ctx context.Context, inv *purchase.Invoice) error {
	m.state.purchases[inv.ID] = *inv
	return nil
}

func (m *memLedgerStore) CreateReturnInvoice(ctx context.Context, inv *salesreturn.Invoice) error {
	m.state.returns[inv.ID] = *inv
	return nil
}

func (m *memLedgerStore) SumReturnedQty(ctx context.Context, saleInvoiceID, productID, unit string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, ret := range m.state.returns {
		if ret.SaleInvoiceID != saleInvoiceID {
			continue
		}
		for _, it := range ret.Items {
			if it.ProductID == productID && it.SelectedUnit == unit {
				sum = sum.Add(it.Quantity)
			}
		}
	}
	return sum, nil
}

func (m *memLedgerStore) CreateExpense(ctx context.Context, exp *expense.Expense) error {
	m.state.expenses[exp.ID] = *exp
	return nil
}

func (m *memLedgerStore) GetExpenseForUpdate(ctx context.Context, id string) (*expense.Expense, error) {
	exp, ok := m.state.expenses[id]
	if !ok {
		return nil, errMemNotFound
	}
	return &exp, nil
}

func (m *memLedgerStore) DeleteExpense(ctx context.Context, id string) error {
	if _, ok := m.state.expenses[id]; !ok {
		return errMemNotFound
	}
	delete(m.state.expenses, id)
	return nil
}

func (m *memLedgerStore) GetQuotationForUpdate(ctx context.Context, id string) (*quotation.Quotation, error) {
	q, ok := m.state.quotations[id]
	if !ok {
		return nil, errMemNotFound
	}
	return &q, nil
}

func (m *memLedgerStore) UpdateQuotationStatus(ctx context.Context, q *quotation.Quotation) error {
	if _, ok := m.state.quotations[q.ID]; !ok {
		return errMemNotFound
	}
	m.state.quotations[q.ID] = *q
	return nil
}

// entriesFor filtra os lançamentos do razão de uma entidade, na ordem
// em que foram gravados
func (m *memLedgerStore) entriesFor(entityType ledger.EntityType, entityID string) []*ledger.Entry {
	var out []*ledger.Entry
	for _, e := range m.state.ledgerEntries {
		if e.EntityType == entityType && e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out
}

// memHeldRepo implementa sale.HeldRepository em memória
type memHeldRepo struct {
	held map[string]sale.Invoice
}

func newMemHeldRepo() *memHeldRepo {
	return &memHeldRepo{held: map[string]sale.Invoice{}}
}

func (r *memHeldRepo) Save(ctx context.Context, inv *sale.Invoice) error {
	r.held[inv.ID] = *inv
	return nil
}

func (r *memHeldRepo) FindByID(ctx context.Context, id string) (*sale.Invoice, error) {
	inv, ok := r.held[id]
	if !ok {
		return nil, errMemNotFound
	}
	return &inv, nil
}

func (r *memHeldRepo) List(ctx context.Context) ([]*sale.Invoice, error) {
	out := make([]*sale.Invoice, 0, len(r.held))
	for id := range r.held {
		inv := r.held[id]
		out = append(out, &inv)
	}
	return out, nil
}

func (r *memHeldRepo) Delete(ctx context.Context, id string) error {
	delete(r.held, id)
	return nil
}
