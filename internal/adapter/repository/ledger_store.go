package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
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
	"github.com/hugohenrick/pos-ceramica/internal/infrastructure/database"
	"github.com/hugohenrick/pos-ceramica/internal/service"
)

// PostgresLedgerStore implementa service.LedgerStore sobre uma transação
// pgx. As leituras ForUpdate usam SELECT ... FOR UPDATE, de modo que dois
// caixas vendendo o mesmo produto serializam na linha do produto.
type PostgresLedgerStore struct {
	db *pgxpool.Pool
}

// NewPostgresLedgerStore cria uma nova instância de PostgresLedgerStore
func NewPostgresLedgerStore(db *pgxpool.Pool) service.LedgerStore {
	return &PostgresLedgerStore{db: db}
}

// Execute implementa service.LedgerStore.Execute
func (s *PostgresLedgerStore) Execute(ctx context.Context, fn func(ops service.LedgerOps) error) error {
	return database.Transaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(&txLedgerOps{tx: tx})
	})
}

// txLedgerOps implementa service.LedgerOps dentro de uma transação
type txLedgerOps struct {
	tx pgx.Tx
}

// GetProductForUpdate trava e lê a linha do produto
func (o *txLedgerOps) GetProductForUpdate(ctx context.Context, id string) (*product.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return scanProduct(o.tx.QueryRow(ctx, query, id))
}

// UpdateProductStock grava o novo saldo de cache de estoque
func (o *txLedgerOps) UpdateProductStock(ctx context.Context, id string, newQty decimal.Decimal) error {
	result, err := o.tx.Exec(ctx,
		`UPDATE products SET stock_qty = $2, updated_at = NOW() WHERE id = $1`, id, newQty)
	if err != nil {
		return fmt.Errorf("falha ao atualizar estoque do produto: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// AppendStockLog insere um lançamento no razão de estoque
func (o *txLedgerOps) AppendStockLog(ctx context.Context, log *stock.Log) error {
	query := `
		INSERT INTO stock_logs (` + stockLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := o.tx.Exec(ctx, query,
		log.ID, log.Date, log.ProductID, string(log.Kind), log.QtyChange,
		log.OldStock, log.NewStock, log.ReferenceID, log.Note, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao lançar movimento de estoque: %w", err)
	}
	return nil
}

// GetCustomerForUpdate trava e lê a linha do cliente
func (o *txLedgerOps) GetCustomerForUpdate(ctx context.Context, id string) (*customer.Customer, error) {
	query := `SELECT` + customerColumns + ` FROM customers WHERE id = $1 FOR UPDATE`
	return scanCustomer(o.tx.QueryRow(ctx, query, id))
}

// UpdateCustomerBalance grava o novo saldo de cache do cliente
func (o *txLedgerOps) UpdateCustomerBalance(ctx context.Context, id string, newBalance decimal.Decimal) error {
	result, err := o.tx.Exec(ctx,
		`UPDATE customers SET current_balance = $2, updated_at = NOW() WHERE id = $1`, id, newBalance)
	if err != nil {
		return fmt.Errorf("falha ao atualizar saldo do cliente: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// GetSupplierForUpdate trava e lê a linha do fornecedor
func (o *txLedgerOps) GetSupplierForUpdate(ctx context.Context, id string) (*supplier.Supplier, error) {
	query := `SELECT` + supplierColumns + ` FROM suppliers WHERE id = $1 FOR UPDATE`
	return scanSupplier(o.tx.QueryRow(ctx, query, id))
}

// UpdateSupplierBalance grava o novo saldo de cache do fornecedor
func (o *txLedgerOps) UpdateSupplierBalance(ctx context.Context, id string, newBalance decimal.Decimal) error {
	result, err := o.tx.Exec(ctx,
		`UPDATE suppliers SET current_balance = $2, updated_at = NOW() WHERE id = $1`, id, newBalance)
	if err != nil {
		return fmt.Errorf("falha ao atualizar saldo do fornecedor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// AppendLedgerEntry insere um lançamento no razão financeiro
func (o *txLedgerOps) AppendLedgerEntry(ctx context.Context, entry *ledger.Entry) error {
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := o.tx.Exec(ctx, query,
		entry.ID, entry.Date, string(entry.EntityType), entry.EntityID, string(entry.Kind),
		entry.Description, entry.Debit, entry.Credit, entry.Balance,
		entry.ReferenceID, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao lançar no razão: %w", err)
	}
	return nil
}

// GetAccountForUpdate trava e lê a linha da conta financeira
func (o *txLedgerOps) GetAccountForUpdate(ctx context.Context, id string) (*account.Account, error) {
	query := `SELECT` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	return scanAccount(o.tx.QueryRow(ctx, query, id))
}

// UpdateAccountBalance grava o novo saldo de cache da conta
func (o *txLedgerOps) UpdateAccountBalance(ctx context.Context, id string, newBalance decimal.Decimal) error {
	result, err := o.tx.Exec(ctx,
		`UPDATE accounts SET current_balance = $2, updated_at = NOW() WHERE id = $1`, id, newBalance)
	if err != nil {
		return fmt.Errorf("falha ao atualizar saldo da conta: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// AppendAccountTransaction insere uma movimentação de conta
func (o *txLedgerOps) AppendAccountTransaction(ctx context.Context, t *account.Transaction) error {
	query := `
		INSERT INTO account_transactions (` + accountTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := o.tx.Exec(ctx, query,
		t.ID, t.AccountID, string(t.Kind), t.Amount, t.Date,
		t.Description, string(t.ReferenceModule), t.ReferenceID, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao lançar movimentação da conta: %w", err)
	}
	return nil
}

// CreateSaleInvoice insere a fatura de venda
func (o *txLedgerOps) CreateSaleInvoice(ctx context.Context, inv *sale.Invoice) error {
	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("falha ao codificar itens da fatura: %w", err)
	}
	paymentsJSON, err := json.Marshal(inv.Payments)
	if err != nil {
		return fmt.Errorf("falha ao codificar pagamentos da fatura: %w", err)
	}

	query := `
		INSERT INTO invoices (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = o.tx.Exec(ctx, query,
		inv.ID, inv.Date, inv.CustomerID, inv.CustomerName, itemsJSON,
		inv.Subtotal, inv.Discount, inv.Tax, inv.Total, inv.ReceivedAmount,
		inv.ChangeAmount, paymentsJSON, string(inv.Status), inv.Note, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao criar fatura de venda: %w", err)
	}
	return nil
}

// GetSaleInvoiceForUpdate trava e lê a fatura de venda
func (o *txLedgerOps) GetSaleInvoiceForUpdate(ctx context.Context, id string) (*sale.Invoice, error) {
	query := `SELECT` + saleColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`
	return scanSaleInvoice(o.tx.QueryRow(ctx, query, id))
}

// UpdateSaleInvoiceStatus atualiza o status da fatura de venda
func (o *txLedgerOps) UpdateSaleInvoiceStatus(ctx context.Context, id string, status sale.Status) error {
	result, err := o.tx.Exec(ctx,
		`UPDATE invoices SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("falha ao atualizar status da fatura: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSaleNotFound
	}
	return nil
}

// CreatePurchaseInvoice insere a nota de compra
func (o *txLedgerOps) CreatePurchaseInvoice(ctx context.Context, inv *purchase.Invoice) error {
	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("falha ao codificar itens da nota de compra: %w", err)
	}

	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = o.tx.Exec(ctx, query,
		inv.ID, inv.Date, inv.SupplierID, itemsJSON, inv.TotalAmount,
		string(inv.Status), inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao criar nota de compra: %w", err)
	}
	return nil
}

// CreateReturnInvoice insere a devolução de venda
func (o *txLedgerOps) CreateReturnInvoice(ctx context.Context, inv *salesreturn.Invoice) error {
	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("falha ao codificar itens da devolução: %w", err)
	}

	query := `
		INSERT INTO returns (` + returnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = o.tx.Exec(ctx, query,
		inv.ID, inv.SaleInvoiceID, inv.CustomerID, inv.Date, itemsJSON,
		inv.TotalAmount, string(inv.RefundMethod), inv.AccountID, inv.Note, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao criar devolução: %w", err)
	}
	return nil
}

// SumReturnedQty soma a quantidade já devolvida de um produto em uma
// fatura, na unidade vendida. Os itens ficam em JSONB dentro de returns.
func (o *txLedgerOps) SumReturnedQty(ctx context.Context, saleInvoiceID, productID, unit string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM((item->>'quantity')::numeric), 0)
		FROM returns r, jsonb_array_elements(r.items) AS item
		WHERE r.sale_invoice_id = $1
		  AND item->>'product_id' = $2
		  AND item->>'selected_unit' = $3`

	var total decimal.Decimal
	if err := o.tx.QueryRow(ctx, query, saleInvoiceID, productID, unit).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("falha ao somar quantidade devolvida: %w", err)
	}
	return total, nil
}

// CreateExpense insere a despesa
func (o *txLedgerOps) CreateExpense(ctx context.Context, exp *expense.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := o.tx.Exec(ctx, query,
		exp.ID, exp.CategoryID, exp.AccountID, exp.Date, exp.Amount, exp.Note, exp.CreatedAt)
	if err != nil {
		return fmt.Errorf("falha ao criar despesa: %w", err)
	}
	return nil
}

// GetExpenseForUpdate trava e lê a despesa
func (o *txLedgerOps) GetExpenseForUpdate(ctx context.Context, id string) (*expense.Expense, error) {
	query := `SELECT` + expenseColumns + ` FROM expenses WHERE id = $1 FOR UPDATE`
	return scanExpense(o.tx.QueryRow(ctx, query, id))
}

// DeleteExpense remove a linha da despesa. O estorno na conta é lançado
// pelo orquestrador na mesma transação.
func (o *txLedgerOps) DeleteExpense(ctx context.Context, id string) error {
	result, err := o.tx.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("falha ao remover despesa: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// GetQuotationForUpdate trava e lê o orçamento
func (o *txLedgerOps) GetQuotationForUpdate(ctx context.Context, id string) (*quotation.Quotation, error) {
	query := `SELECT` + quotationColumns + ` FROM quotations WHERE id = $1 FOR UPDATE`
	return scanQuotation(o.tx.QueryRow(ctx, query, id))
}

// UpdateQuotationStatus grava o status do orçamento após a conversão
func (o *txLedgerOps) UpdateQuotationStatus(ctx context.Context, q *quotation.Quotation) error {
	result, err := o.tx.Exec(ctx,
		`UPDATE quotations SET status = $2, updated_at = $3 WHERE id = $1`,
		q.ID, string(q.Status), q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do orçamento: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrQuotationNotFound
	}
	return nil
}
