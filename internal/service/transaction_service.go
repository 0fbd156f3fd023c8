package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/account"
	"github.com/hugohenrick/pos-ceramica/internal/domain/customer"
	"github.com/hugohenrick/pos-ceramica/internal/domain/expense"
	"github.com/hugohenrick/pos-ceramica/internal/domain/ledger"
	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
	"github.com/hugohenrick/pos-ceramica/internal/domain/purchase"
	"github.com/hugohenrick/pos-ceramica/internal/domain/sale"
	"github.com/hugohenrick/pos-ceramica/internal/domain/salesreturn"
	"github.com/hugohenrick/pos-ceramica/internal/domain/stock"
	"github.com/hugohenrick/pos-ceramica/pkg/apperr"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// Config controla as políticas do orquestrador de transações
type Config struct {
	// AllowNegativeStock permite vender com estoque insuficiente
	// (a loja vende da exposição e repõe depois)
	AllowNegativeStock bool
	// EnforceCreditLimit bloqueia venda a prazo acima do limite de
	// crédito do cliente, salvo confirmação explícita do operador
	EnforceCreditLimit bool
}

// DefaultConfig retorna as políticas padrão
func DefaultConfig() Config {
	return Config{AllowNegativeStock: true, EnforceCreditLimit: false}
}

// TransactionService orquestra as operações que tocam mais de um saldo.
// Toda operação roda dentro de uma unidade de trabalho do LedgerStore:
// ou todas as escritas persistem, ou nenhuma.
type TransactionService struct {
	store    LedgerStore
	heldRepo sale.HeldRepository
	cfg      Config
	log      logger.Logger
}

// NewTransactionService cria o orquestrador de transações
func NewTransactionService(store LedgerStore, heldRepo sale.HeldRepository, cfg Config, log logger.Logger) *TransactionService {
	return &TransactionService{store: store, heldRepo: heldRepo, cfg: cfg, log: log}
}

// SaleItemInput é uma linha do carrinho na entrada da venda. UnitPrice
// zero usa o preço de tabela do produto na unidade selecionada.
type SaleItemInput struct {
	ProductID    string
	Quantity     decimal.Decimal
	SelectedUnit product.UnitType
	UnitPrice    decimal.Decimal
	Discount     decimal.Decimal
}

// CreateSaleInput é a entrada da finalização de venda
type CreateSaleInput struct {
	CustomerID     string
	Date           time.Time
	Items          []SaleItemInput
	Discount       decimal.Decimal
	Tax            decimal.Decimal
	ReceivedAmount decimal.Decimal
	Payments       []sale.Payment
	AccountID      string
	Note           string
	// CreditOverride confirma a venda acima do limite de crédito
	CreditOverride bool
	// HeldInvoiceID remove a venda em espera após a finalização
	HeldInvoiceID string
}

// CreateSale finaliza uma venda: baixa o estoque, lança no razão do
// cliente (venda com cadastro), movimenta a conta e grava a fatura,
// tudo na mesma unidade de trabalho.
func (s *TransactionService) CreateSale(ctx context.Context, in CreateSaleInput) (*sale.Invoice, error) {
	var inv *sale.Invoice
	err := s.store.Execute(ctx, func(ops LedgerOps) error {
		created, err := s.applySale(ctx, ops, in)
		if err != nil {
			return err
		}
		inv = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if in.HeldInvoiceID != "" {
		if err := s.heldRepo.Delete(ctx, in.HeldInvoiceID); err != nil {
			// a venda já persistiu; o rascunho órfão não afeta os saldos
			s.log.Warn("falha ao remover venda em espera", "held_id", in.HeldInvoiceID, "error", err)
		}
	}

	s.log.Info("venda finalizada", "invoice_id", inv.ID, "total", inv.Total.String())
	return inv, nil
}

// applySale executa os quatro efeitos da venda dentro da unidade de
// trabalho. Usado também pela conversão de orçamento.
func (s *TransactionService) applySale(ctx context.Context, ops LedgerOps, in CreateSaleInput) (*sale.Invoice, error) {
	if len(in.Items) == 0 {
		return nil, apperr.New(apperr.KindValidation, "carrinho não pode ser vazio")
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	// Monta as linhas resolvendo preço e nome a partir do produto, e
	// valida a unidade de cada linha antes de qualquer baixa. O mesmo
	// produto pode aparecer em mais de uma linha (caixa + metragem da
	// mesma cerâmica): cada produto é travado uma única vez e as
	// linhas seguintes reutilizam o mesmo registro, acumulando a baixa
	// planejada para a validação de estoque.
	items := make([]sale.CartItem, 0, len(in.Items))
	deductions := make([]decimal.Decimal, 0, len(in.Items))
	products := make([]*product.Product, 0, len(in.Items))
	locked := make(map[string]*product.Product)
	planned := make(map[string]decimal.Decimal)
	for _, it := range in.Items {
		p, ok := locked[it.ProductID]
		if !ok {
			var err error
			p, err = ops.GetProductForUpdate(ctx, it.ProductID)
			if err != nil {
				return nil, apperr.Wrap(apperr.KindNotFound, "produto não encontrado", err)
			}
			locked[it.ProductID] = p
		}

		deduction, err := p.StockUnitsFor(it.SelectedUnit, it.Quantity)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInvalidUnitConversion,
				"produto não permite venda na unidade selecionada", err)
		}

		price := it.UnitPrice
		if price.IsZero() {
			if price, err = p.UnitPriceFor(it.SelectedUnit); err != nil {
				return nil, apperr.Wrap(apperr.KindInvalidUnitConversion,
					"produto não tem preço na unidade selecionada", err)
			}
		}

		already := planned[p.ID]
		if !s.cfg.AllowNegativeStock && p.StockQty.Sub(already).Sub(deduction).IsNegative() {
			return nil, apperr.New(apperr.KindConflict, "estoque insuficiente para "+p.Name)
		}
		planned[p.ID] = already.Add(deduction)

		items = append(items, sale.CartItem{
			ProductID:    p.ID,
			ProductName:  p.Name,
			Quantity:     it.Quantity,
			SelectedUnit: it.SelectedUnit,
			UnitPrice:    price,
			Discount:     it.Discount,
		})
		deductions = append(deductions, deduction)
		products = append(products, p)
	}

	var customerName string
	cust, err := s.loadCustomer(ctx, ops, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if cust != nil {
		customerName = cust.Name
	}

	inv, err := sale.NewInvoice(in.CustomerID, customerName, date, items, in.Discount, in.Tax, in.ReceivedAmount, in.Payments, in.Note)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "venda inválida", err)
	}

	outstanding := inv.CreditExtended()
	if outstanding.IsPositive() {
		if cust == nil {
			return nil, apperr.New(apperr.KindValidation, "venda balcão exige pagamento integral")
		}
		if !cust.AllowCredit {
			return nil, apperr.New(apperr.KindCreditBlocked, "cliente não autorizado a comprar a prazo")
		}
		if s.cfg.EnforceCreditLimit && !in.CreditOverride && cust.ExceedsCreditLimit(outstanding) {
			return nil, apperr.New(apperr.KindCreditLimit, "venda ultrapassa o limite de crédito do cliente")
		}
	}

	// Baixa de estoque, sempre na unidade de estoque do produto
	for i, p := range products {
		log, err := stock.NewLog(p.ID, ledger.KindSale, date, deductions[i].Neg(), p.StockQty, inv.ID, "")
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "falha ao lançar estoque", err)
		}
		if err := ops.AppendStockLog(ctx, log); err != nil {
			return nil, err
		}
		if err := ops.UpdateProductStock(ctx, p.ID, log.NewStock); err != nil {
			return nil, err
		}
		p.StockQty = log.NewStock
	}

	// Razão do cliente: débito da venda inteira, depois crédito do que
	// foi recebido. Venda balcão não lança nada.
	if cust != nil {
		entry, err := ledger.NewEntry(ledger.EntityCustomer, cust.ID, ledger.KindSale, date,
			"Venda "+inv.ID, inv.Total, decimal.Zero, cust.CurrentBalance, inv.ID)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "falha ao lançar no razão", err)
		}
		if err := ops.AppendLedgerEntry(ctx, entry); err != nil {
			return nil, err
		}
		cust.CurrentBalance = entry.Balance

		if collected := inv.CashCollected(); collected.IsPositive() {
			payment, err := ledger.NewEntry(ledger.EntityCustomer, cust.ID, ledger.KindPaymentIn, date,
				"Recebimento da venda "+inv.ID, decimal.Zero, collected, cust.CurrentBalance, inv.ID)
			if err != nil {
				return nil, apperr.Wrap(apperr.KindInternal, "falha ao lançar no razão", err)
			}
			if err := ops.AppendLedgerEntry(ctx, payment); err != nil {
				return nil, err
			}
			cust.CurrentBalance = payment.Balance
		}
		if err := ops.UpdateCustomerBalance(ctx, cust.ID, cust.CurrentBalance); err != nil {
			return nil, err
		}
	}

	// Entrada na conta: o que ficou no caixa é recebido menos troco
	if collected := inv.CashCollected(); collected.IsPositive() {
		if in.AccountID == "" {
			return nil, apperr.New(apperr.KindValidation, "conta de destino não informada")
		}
		if err := s.applyAccountMove(ctx, ops, in.AccountID, account.KindCashIn, collected, date,
			"Venda "+inv.ID, account.ModulePOS, inv.ID, false); err != nil {
			return nil, err
		}
	}

	if err := ops.CreateSaleInvoice(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// HoldInvoice guarda uma venda em espera. Vendas em espera são rascunho:
// não movimentam estoque, razão nem conta.
func (s *TransactionService) HoldInvoice(ctx context.Context, in CreateSaleInput) (*sale.Invoice, error) {
	if len(in.Items) == 0 {
		return nil, apperr.New(apperr.KindValidation, "carrinho não pode ser vazio")
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	items := make([]sale.CartItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, sale.CartItem{
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			SelectedUnit: it.SelectedUnit,
			UnitPrice:    it.UnitPrice,
			Discount:     it.Discount,
		})
	}

	inv, err := sale.NewInvoice(in.CustomerID, "", date, items, in.Discount, in.Tax, decimal.Zero, nil, in.Note)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "venda inválida", err)
	}
	inv.Status = sale.StatusHold

	if err := s.heldRepo.Save(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// RetrieveHeldInvoice busca uma venda em espera para retomar no caixa
func (s *TransactionService) RetrieveHeldInvoice(ctx context.Context, id string) (*sale.Invoice, error) {
	inv, err := s.heldRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, "venda em espera não encontrada", err)
	}
	return inv, nil
}

// ListHeldInvoices lista as vendas em espera
func (s *TransactionService) ListHeldInvoices(ctx context.Context) ([]*sale.Invoice, error) {
	return s.heldRepo.List(ctx)
}

// DeleteHeldInvoice descarta uma venda em espera
func (s *TransactionService) DeleteHeldInvoice(ctx context.Context, id string) error {
	return s.heldRepo.Delete(ctx, id)
}

// ReturnItemInput é uma linha da devolução, na unidade em que foi vendida
type ReturnItemInput struct {
	ProductID    string
	Quantity     decimal.Decimal
	SelectedUnit product.UnitType
}

// ProcessReturnInput é a entrada da devolução de venda
type ProcessReturnInput struct {
	SaleInvoiceID string
	Date          time.Time
	Items         []ReturnItemInput
	RefundMethod  salesreturn.RefundMethod
	AccountID     string
	Note          string
}

// ProcessReturn devolve itens de uma venda: estoque volta, o valor sai
// da conta (reembolso) ou abate o saldo do cliente (crédito), e a nota
// original muda de status.
func (s *TransactionService) ProcessReturn(ctx context.Context, in ProcessReturnInput) (*salesreturn.Invoice, error) {
	var ret *salesreturn.Invoice
	err := s.store.Execute(ctx, func(ops LedgerOps) error {
		if len(in.Items) == 0 {
			return apperr.New(apperr.KindValidation, "devolução sem itens")
		}
		date := in.Date
		if date.IsZero() {
			date = time.Now()
		}

		orig, err := ops.GetSaleInvoiceForUpdate(ctx, in.SaleInvoiceID)
		if err != nil {
			return apperr.Wrap(apperr.KindNotFound, "nota de venda não encontrada", err)
		}
		if orig.Status != sale.StatusPaid && orig.Status != sale.StatusPartialReturn {
			return apperr.Wrap(apperr.KindConflict, "nota de venda não permite devolução", salesreturn.ErrInvoiceNotEligible)
		}

		// Valida cada linha contra o que foi vendido menos o que já voltou
		items := make([]salesreturn.Item, 0, len(in.Items))
		for _, it := range in.Items {
			if !it.Quantity.IsPositive() {
				return apperr.New(apperr.KindValidation, "quantidade devolvida deve ser positiva")
			}
			sold := orig.SoldQty(it.ProductID, it.SelectedUnit)
			if sold.IsZero() {
				return apperr.New(apperr.KindValidation, "item não consta na nota de venda")
			}
			returned, err := ops.SumReturnedQty(ctx, orig.ID, it.ProductID, string(it.SelectedUnit))
			if err != nil {
				return err
			}
			if returned.Add(it.Quantity).GreaterThan(sold) {
				return apperr.Wrap(apperr.KindConflict, "quantidade devolvida excede a quantidade vendida", salesreturn.ErrQuantityExceeded)
			}

			price := decimal.Zero
			for _, line := range orig.Items {
				if line.ProductID == it.ProductID && line.SelectedUnit == it.SelectedUnit {
					price = line.UnitPrice
					break
				}
			}

			items = append(items, salesreturn.Item{
				ProductID:    it.ProductID,
				Quantity:     it.Quantity,
				SelectedUnit: string(it.SelectedUnit),
				UnitPrice:    price,
			})
		}

		ret, err = salesreturn.NewInvoice(orig.ID, orig.CustomerID, date, items, in.RefundMethod, in.AccountID, in.Note)
		if err != nil {
			return apperr.Wrap(apperr.KindValidation, "devolução inválida", err)
		}

		// Estoque volta, convertendo para a unidade de estoque
		for _, it := range in.Items {
			p, err := ops.GetProductForUpdate(ctx, it.ProductID)
			if err != nil {
				return apperr.Wrap(apperr.KindNotFound, "produto não encontrado", err)
			}
			restock, err := p.StockUnitsFor(it.SelectedUnit, it.Quantity)
			if err != nil {
				return apperr.Wrap(apperr.KindInvalidUnitConversion,
					"produto não permite devolução na unidade selecionada", err)
			}
			log, err := stock.NewLog(p.ID, ledger.KindReturnIn, date, restock, p.StockQty, ret.ID, "")
			if err != nil {
				return apperr.Wrap(apperr.KindInternal, "falha ao lançar estoque", err)
			}
			if err := ops.AppendStockLog(ctx, log); err != nil {
				return err
			}
			if err := ops.UpdateProductStock(ctx, p.ID, log.NewStock); err != nil {
				return err
			}
		}

		// O razão do cliente recebe o crédito da devolução sempre que a
		// venda original tinha cliente, seja qual for o método de
		// reembolso. Dinheiro/banco sai ainda da conta informada.
		cust, err := s.loadCustomer(ctx, ops, orig.CustomerID)
		if err != nil {
			return err
		}
		if ret.RefundMethod == salesreturn.RefundCredit && cust == nil {
			return apperr.New(apperr.KindValidation, "devolução em crédito exige cliente cadastrado")
		}
		if cust != nil {
			entry, err := ledger.NewEntry(ledger.EntityCustomer, cust.ID, ledger.KindReturnIn, date,
				"Devolução da venda "+orig.ID, decimal.Zero, ret.TotalAmount, cust.CurrentBalance, ret.ID)
			if err != nil {
				return apperr.Wrap(apperr.KindInternal, "falha ao lançar no razão", err)
			}
			if err := ops.AppendLedgerEntry(ctx, entry); err != nil {
				return err
			}
			if err := ops.UpdateCustomerBalance(ctx, cust.ID, entry.Balance); err != nil {
				return err
			}
		}
		if ret.RefundMethod != salesreturn.RefundCredit {
			if err := s.applyAccountMove(ctx, ops, ret.AccountID, account.KindCashOut, ret.TotalAmount, date,
				"Reembolso da venda "+orig.ID, account.ModuleReturn, ret.ID, false); err != nil {
				return err
			}
		}

		status := sale.StatusPartialReturn
		if s.fullyReturned(ctx, ops, orig, in.Items) {
			status = sale.StatusReturned
		}
		if err := ops.UpdateSaleInvoiceStatus(ctx, orig.ID, status); err != nil {
			return err
		}

		return ops.CreateReturnInvoice(ctx, ret)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("devolução registrada", "return_id", ret.ID, "sale_id", ret.SaleInvoiceID)
	return ret, nil
}

// fullyReturned verifica se, somando esta devolução, todas as linhas da
// nota original voltaram por inteiro.
func (s *TransactionService) fullyReturned(ctx context.Context, ops LedgerOps, orig *sale.Invoice, items []ReturnItemInput) bool {
	thisReturn := func(productID string, unit product.UnitType) decimal.Decimal {
		qty := decimal.Zero
		for _, it := range items {
			if it.ProductID == productID && it.SelectedUnit == unit {
				qty = qty.Add(it.Quantity)
			}
		}
		return qty
	}

	for _, line := range orig.Items {
		returned, err := ops.SumReturnedQty(ctx, orig.ID, line.ProductID, string(line.SelectedUnit))
		if err != nil {
			return false
		}
		if returned.Add(thisReturn(line.ProductID, line.SelectedUnit)).LessThan(line.Quantity) {
			return false
		}
	}
	return true
}

// PurchaseItemInput é uma linha da compra, sempre na unidade de estoque
type PurchaseItemInput struct {
	ProductID string
	Quantity  decimal.Decimal
	CostPrice decimal.Decimal
}

// CreatePurchaseInput é a entrada do registro de compra
type CreatePurchaseInput struct {
	SupplierID string
	Date       time.Time
	Items      []PurchaseItemInput
	PaidAmount decimal.Decimal
	AccountID  string
	Note       string
}

// CreatePurchase registra uma compra: estoque sobe, o razão do
// fornecedor recebe o crédito da nota e, havendo pagamento na hora, o
// débito correspondente com saída da conta.
func (s *TransactionService) CreatePurchase(ctx context.Context, in CreatePurchaseInput) (*purchase.Invoice, error) {
	var inv *purchase.Invoice
	err := s.store.Execute(ctx, func(ops LedgerOps) error {
		if in.PaidAmount.IsNegative() {
			return apperr.New(apperr.KindValidation, "valor pago inválido")
		}
		date := in.Date
		if date.IsZero() {
			date = time.Now()
		}

		sup, err := ops.GetSupplierForUpdate(ctx, in.SupplierID)
		if err != nil {
			return apperr.Wrap(apperr.KindNotFound, "fornecedor não encontrado", err)
		}

		items := make([]purchase.Item, 0, len(in.Items))
		for _, it := range in.Items {
			p, err := ops.GetProductForUpdate(ctx, it.ProductID)
			if err != nil {
				return apperr.Wrap(apperr.KindNotFound, "produto não encontrado", err)
			}
			items = append(items, purchase.Item{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    it.Quantity,
				CostPrice:   it.CostPrice,
			})
		}

		inv, err = purchase.NewInvoice(in.SupplierID, date, items)
		if err != nil {
			return apperr.Wrap(apperr.KindValidation, "compra inválida", err)
		}
		if in.PaidAmount.GreaterThan(inv.TotalAmount) {
			return apperr.New(apperr.KindValidation, "valor pago maior que o total da nota")
		}

		// Entrada de estoque, na unidade de estoque do produto
		for _, it := range in.Items {
			p, err := ops.GetProductForUpdate(ctx, it.ProductID)
			if err != nil {
				return err
			}
			log, err := stock.NewLog(p.ID, ledger.KindPurchase, date, it.Quantity, p.StockQty, inv.ID, "")
			if err != nil {
				return apperr.Wrap(apperr.KindInternal, "falha ao lançar estoque", err)
			}
			if err := ops.AppendStockLog(ctx, log); err != nil {
				return err
			}
			if err := ops.UpdateProductStock(ctx, p.ID, log.NewStock); err != nil {
				return err
			}
		}

		// Razão do fornecedor: crédito da nota inteira
		entry, err := ledger.NewEntry(ledger.EntitySupplier, sup.ID, ledger.KindPurchase, date,
			"Compra "+inv.ID, decimal.Zero, inv.TotalAmount, sup.CurrentBalance, inv.ID)
		if err != nil {
			return apperr.Wrap(apperr.KindInternal, "falha ao lançar no razão", err)
		}
		if err := ops.AppendLedgerEntry(ctx, entry); err != nil {
			return err
		}
		sup.CurrentBalance = entry.Balance

		// Pagamento na hora: débito no razão e saída da conta
		if in.PaidAmount.IsPositive() {
			payment, err := ledger.NewEntry(ledger.EntitySupplier, sup.ID, ledger.KindPaymentOut, date,
				"Pagamento da compra "+inv.ID, in.PaidAmount, decimal.Zero, sup.CurrentBalance, inv.ID)
			if err != nil {
				return apperr.Wrap(apperr.KindInternal, "falha ao lançar no razão", err)
			}
			if err := ops.AppendLedgerEntry(ctx, payment); err != nil {
				return err
			}
			sup.CurrentBalance = payment.Balance

			if err := s.applyAccountMove(ctx, ops, in.AccountID, account.KindCashOut, in.PaidAmount, date,
				"Compra "+inv.ID, account.ModulePurchase, inv.ID, true); err != nil {
				return err
			}
		}

		if err := ops.UpdateSupplierBalance(ctx, sup.ID, sup.CurrentBalance); err != nil {
			return err
		}

		return ops.CreatePurchaseInvoice(ctx, inv)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("compra registrada", "purchase_id", inv.ID, "total", inv.TotalAmount.String())
	return inv, nil
}

// PaymentInput é a entrada de pagamento a fornecedor ou recebimento de
// cliente
type PaymentInput struct {
	EntityID  string
	AccountID string
	Amount    decimal.Decimal
	Date      time.Time
	Note      string
}

// PaySupplier paga um fornecedor: débito no razão dele e saída da conta
func (s *TransactionService) PaySupplier(ctx context.Context, in PaymentInput) error {
	return s.store.Execute(ctx, func(ops LedgerOps) error {
		if !in.Amount.IsPositive() {
			return apperr.New(apperr.KindValidation, "valor deve ser positivo")
		}
		date := in.Date
		if date.IsZero() {
			date = time.Now()
		}

		sup, err := ops.GetSupplierForUpdate(ctx, in.EntityID)
		if err != nil {
			return apperr.Wrap(apperr.KindNotFound, "fornecedor não encontrado", err)
		}

		refID := uuid.New().String()
		entry, err := ledger.NewEntry(ledger.EntitySupplier, sup.ID, ledger.KindPaymentOut, date,
			"Pagamento a fornecedor", in.Amount, decimal.Zero, sup.CurrentBalance, refID)
		if err != nil {
			return apperr.Wrap(apperr.KindInternal, "falha ao lançar no razão", err)
		}
		if err := ops.AppendLedgerEntry(ctx, entry); err != nil {
			return err
		}
		if err := ops.UpdateSupplierBalance(ctx, sup.ID, entry.Balance); err != nil {
			return err
		}

		return s.applyAccountMove(ctx, ops, in.AccountID, account.KindCashOut, in.Amount, date,
			"Pagamento a "+sup.Name, account.ModuleSupplier, refID, true)
	})
}

// ReceiveCustomerPayment recebe de um cliente: crédito no razão dele e
// entrada na conta
func (s *TransactionService) ReceiveCustomerPayment(ctx context.Context, in PaymentInput) error {
	return s.store.Execute(ctx, func(ops LedgerOps) error {
		if !in.Amount.IsPositive() {
			return apperr.New(apperr.KindValidation, "valor deve ser positivo")
		}
		date := in.Date
		if date.IsZero() {
			date = time.Now()
		}

		cust, err := ops.GetCustomerForUpdate(ctx, in.EntityID)
		if err != nil {
			return apperr.Wrap(apperr.KindNotFound, "cliente não encontrado", err)
		}

		refID := uuid.New().String()
		entry, err := ledger.NewEntry(ledger.EntityCustomer, cust.ID, ledger.KindPaymentIn, date,
			"Recebimento de cliente", decimal.Zero, in.Amount, cust.CurrentBalance, refID)
		if err != nil {
			return apperr.Wrap(apperr.KindInternal, "falha ao lançar no razão", err)
		}
		if err := ops.AppendLedgerEntry(ctx, entry); err != nil {
			return err
		}
		if err := ops.UpdateCustomerBalance(ctx, cust.ID, entry.Balance); err != nil {
			return err
		}

		return s.applyAccountMove(ctx, ops, in.AccountID, account.KindCashIn, in.Amount, date,
			"Recebimento de "+cust.Name, account.ModuleCustomer, refID, false)
	})
}

// AddExpenseInput é a entrada do lançamento de despesa
type AddExpenseInput struct {
	CategoryID string
	AccountID  string
	Amount     decimal.Decimal
	Date       time.Time
	Note       string
}

// AddExpense lança uma despesa com saída da conta
func (s *TransactionService) AddExpense(ctx context.Context, in AddExpenseInput) (*expense.Expense, error) {
	var exp *expense.Expense
	err := s.store.Execute(ctx, func(ops LedgerOps) error {
		var err error
		exp, err = expense.NewExpense(in.CategoryID, in.AccountID, in.Date, in.Amount, in.Note)
		if err != nil {
			return apperr.Wrap(apperr.KindValidation, "despesa inválida", err)
		}
		if err := ops.CreateExpense(ctx, exp); err != nil {
			return err
		}
		return s.applyAccountMove(ctx, ops, exp.AccountID, account.KindCashOut, exp.Amount, exp.Date,
			"Despesa", account.ModuleExpense, exp.ID, false)
	})
	if err != nil {
		return nil, err
	}
	return exp, nil
}

// DeleteExpense remove uma despesa. O histórico da conta é imutável:
// em vez de apagar a movimentação original, entra um estorno CASH_IN
// referenciando a despesa.
func (s *TransactionService) DeleteExpense(ctx context.Context, id string) error {
	return s.store.Execute(ctx, func(ops LedgerOps) error {
		exp, err := ops.GetExpenseForUpdate(ctx, id)
		if err != nil {
			return apperr.Wrap(apperr.KindNotFound, "despesa não encontrada", err)
		}
		if err := s.applyAccountMove(ctx, ops, exp.AccountID, account.KindCashIn, exp.Amount, time.Now(),
			"Estorno de despesa", account.ModuleExpense, exp.ID, false); err != nil {
			return err
		}
		return ops.DeleteExpense(ctx, exp.ID)
	})
}

// TransferFundsInput é a entrada da transferência entre contas
type TransferFundsInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Date          time.Time
	Note          string
}

// TransferFunds move valor entre duas contas: TRANSFER_OUT na origem e
// TRANSFER_IN no destino, com a mesma referência.
func (s *TransactionService) TransferFunds(ctx context.Context, in TransferFundsInput) error {
	return s.store.Execute(ctx, func(ops LedgerOps) error {
		if !in.Amount.IsPositive() {
			return apperr.New(apperr.KindValidation, "valor deve ser positivo")
		}
		if in.FromAccountID == in.ToAccountID {
			return apperr.New(apperr.KindValidation, "contas de origem e destino devem ser diferentes")
		}
		date := in.Date
		if date.IsZero() {
			date = time.Now()
		}

		refID := uuid.New().String()
		if err := s.applyAccountMove(ctx, ops, in.FromAccountID, account.KindTransferOut, in.Amount, date,
			"Transferência enviada", account.ModuleTransfer, refID, false); err != nil {
			return err
		}
		return s.applyAccountMove(ctx, ops, in.ToAccountID, account.KindTransferIn, in.Amount, date,
			"Transferência recebida", account.ModuleTransfer, refID, false)
	})
}

// AdjustStockInput é a entrada do ajuste manual de estoque
type AdjustStockInput struct {
	ProductID string
	NewQty    decimal.Decimal
	Note      string
}

// AdjustStock corrige o estoque de um produto para a quantidade contada,
// lançando a diferença como ADJUSTMENT no histórico.
func (s *TransactionService) AdjustStock(ctx context.Context, in AdjustStockInput) (*stock.Log, error) {
	var log *stock.Log
	err := s.store.Execute(ctx, func(ops LedgerOps) error {
		p, err := ops.GetProductForUpdate(ctx, in.ProductID)
		if err != nil {
			return apperr.Wrap(apperr.KindNotFound, "produto não encontrado", err)
		}

		delta := in.NewQty.Sub(p.StockQty)
		if delta.IsZero() {
			return apperr.New(apperr.KindValidation, "quantidade informada igual ao estoque atual")
		}

		log, err = stock.NewLog(p.ID, ledger.KindAdjustment, time.Now(), delta, p.StockQty, "", in.Note)
		if err != nil {
			return apperr.Wrap(apperr.KindInternal, "falha ao lançar estoque", err)
		}
		if err := ops.AppendStockLog(ctx, log); err != nil {
			return err
		}
		return ops.UpdateProductStock(ctx, p.ID, log.NewStock)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("estoque ajustado", "product_id", in.ProductID, "new_qty", in.NewQty.String())
	return log, nil
}

// ConvertQuotationInput é a entrada da conversão de orçamento em venda
type ConvertQuotationInput struct {
	QuotationID    string
	ReceivedAmount decimal.Decimal
	Payments       []sale.Payment
	AccountID      string
	CreditOverride bool
}

// ConvertQuotation transforma um orçamento pendente em venda. A
// conversão e a venda acontecem na mesma unidade de trabalho: se a
// venda falhar, o orçamento continua pendente.
func (s *TransactionService) ConvertQuotation(ctx context.Context, in ConvertQuotationInput) (*sale.Invoice, error) {
	var inv *sale.Invoice
	err := s.store.Execute(ctx, func(ops LedgerOps) error {
		q, err := ops.GetQuotationForUpdate(ctx, in.QuotationID)
		if err != nil {
			return apperr.Wrap(apperr.KindNotFound, "orçamento não encontrado", err)
		}
		if q.IsExpired(time.Now()) {
			return apperr.New(apperr.KindConflict, "orçamento vencido não pode ser convertido")
		}
		if err := q.MarkConverted(); err != nil {
			return apperr.Wrap(apperr.KindConflict, "orçamento já convertido em venda", err)
		}

		items := make([]SaleItemInput, 0, len(q.Items))
		for _, it := range q.Items {
			items = append(items, SaleItemInput{
				ProductID:    it.ProductID,
				Quantity:     it.Quantity,
				SelectedUnit: it.SelectedUnit,
				UnitPrice:    it.UnitPrice,
				Discount:     it.Discount,
			})
		}

		inv, err = s.applySale(ctx, ops, CreateSaleInput{
			CustomerID:     q.CustomerID,
			Items:          items,
			Discount:       q.Discount,
			Tax:            q.Tax,
			ReceivedAmount: in.ReceivedAmount,
			Payments:       in.Payments,
			AccountID:      in.AccountID,
			Note:           "Orçamento " + q.ID,
			CreditOverride: in.CreditOverride,
		})
		if err != nil {
			return err
		}

		return ops.UpdateQuotationStatus(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("orçamento convertido", "quotation_id", in.QuotationID, "invoice_id", inv.ID)
	return inv, nil
}

// loadCustomer trava e carrega o cliente quando informado. ID vazio é
// venda balcão: retorna nil sem erro.
func (s *TransactionService) loadCustomer(ctx context.Context, ops LedgerOps, customerID string) (*customer.Customer, error) {
	if customerID == "" {
		return nil, nil
	}
	cust, err := ops.GetCustomerForUpdate(ctx, customerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, "cliente não encontrado", err)
	}
	return cust, nil
}

// applyAccountMove aplica uma movimentação em conta: grava a
// movimentação imutável e atualiza o cache de saldo. O bloqueio por
// saldo insuficiente é política de quem chama: pagamento a fornecedor
// exige saldo, enquanto transferências, despesas e reembolsos podem
// deixar a conta negativa.
func (s *TransactionService) applyAccountMove(ctx context.Context, ops LedgerOps, accountID string, kind account.TransactionKind, amount decimal.Decimal, date time.Time, description string, module account.ReferenceModule, referenceID string, enforceBalance bool) error {
	if accountID == "" {
		return apperr.New(apperr.KindValidation, "conta não informada")
	}
	acc, err := ops.GetAccountForUpdate(ctx, accountID)
	if err != nil {
		return apperr.Wrap(apperr.KindNotFound, "conta não encontrada", err)
	}
	if enforceBalance && !kind.Increases() && acc.CurrentBalance.LessThan(amount) {
		return apperr.New(apperr.KindInsufficientFunds, "saldo insuficiente na conta "+acc.Name)
	}

	tx, err := account.NewTransaction(accountID, kind, amount, date, description, module, referenceID)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, "movimentação inválida", err)
	}
	if err := ops.AppendAccountTransaction(ctx, tx); err != nil {
		return err
	}
	return ops.UpdateAccountBalance(ctx, accountID, acc.BalanceAfter(kind, amount))
}
