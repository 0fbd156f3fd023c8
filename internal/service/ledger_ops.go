package service

import (
	"context"

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

// LedgerOps expõe as operações de escrita disponíveis dentro de uma
// unidade de trabalho. Todas as leituras ForUpdate travam a linha até o
// fim da transação. Os razões (stock_logs, ledger_entries,
// account_transactions) só recebem Append: nunca update ou delete.
type LedgerOps interface {
	// Produtos e estoque
	GetProductForUpdate(ctx context.Context, id string) (*product.Product, error)
	UpdateProductStock(ctx context.Context, id string, newQty decimal.Decimal) error
	AppendStockLog(ctx context.Context, log *stock.Log) error

	// Clientes e fornecedores
	GetCustomerForUpdate(ctx context.Context, id string) (*customer.Customer, error)
	UpdateCustomerBalance(ctx context.Context, id string, newBalance decimal.Decimal) error
	GetSupplierForUpdate(ctx context.Context, id string) (*supplier.Supplier, error)
	UpdateSupplierBalance(ctx context.Context, id string, newBalance decimal.Decimal) error
	AppendLedgerEntry(ctx context.Context, entry *ledger.Entry) error

	// Contas financeiras
	GetAccountForUpdate(ctx context.Context, id string) (*account.Account, error)
	UpdateAccountBalance(ctx context.Context, id string, newBalance decimal.Decimal) error
	AppendAccountTransaction(ctx context.Context, tx *account.Transaction) error

	// Documentos
	CreateSaleInvoice(ctx context.Context, inv *sale.Invoice) error
	GetSaleInvoiceForUpdate(ctx context.Context, id string) (*sale.Invoice, error)
	UpdateSaleInvoiceStatus(ctx context.Context, id string, status sale.Status) error
	CreatePurchaseInvoice(ctx context.Context, inv *purchase.Invoice) error
	CreateReturnInvoice(ctx context.Context, inv *salesreturn.Invoice) error
	SumReturnedQty(ctx context.Context, saleInvoiceID, productID, unit string) (decimal.Decimal, error)
	CreateExpense(ctx context.Context, exp *expense.Expense) error
	GetExpenseForUpdate(ctx context.Context, id string) (*expense.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	GetQuotationForUpdate(ctx context.Context, id string) (*quotation.Quotation, error)
	UpdateQuotationStatus(ctx context.Context, q *quotation.Quotation) error
}

// LedgerStore abre unidades de trabalho atômicas sobre os quatro saldos
// e seus razões. Se fn retorna erro, nenhuma escrita persiste.
type LedgerStore interface {
	Execute(ctx context.Context, fn func(ops LedgerOps) error) error
}
