package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrInvalidAmount = errors.New("valor deve ser positivo")
)

// Type define o tipo da conta financeira
type Type string

const (
	TypeCash   Type = "Cash"   // Caixa da loja
	TypeBank   Type = "Bank"   // Conta bancária
	TypeWallet Type = "Wallet" // Carteira digital
)

// Status representa o estado da conta
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// TransactionKind define o tipo de movimentação da conta
type TransactionKind string

const (
	KindCashIn      TransactionKind = "CASH_IN"
	KindCashOut     TransactionKind = "CASH_OUT"
	KindTransferIn  TransactionKind = "TRANSFER_IN"
	KindTransferOut TransactionKind = "TRANSFER_OUT"
)

// Increases informa se o tipo de movimentação aumenta o saldo da conta
func (k TransactionKind) Increases() bool {
	return k == KindCashIn || k == KindTransferIn
}

// ReferenceModule identifica o módulo que originou a movimentação
type ReferenceModule string

const (
	ModulePOS        ReferenceModule = "POS"
	ModuleSupplier   ReferenceModule = "SUPPLIER"
	ModuleCustomer   ReferenceModule = "CUSTOMER"
	ModulePurchase   ReferenceModule = "PURCHASE"
	ModuleExpense    ReferenceModule = "EXPENSE"
	ModuleTransfer   ReferenceModule = "TRANSFER"
	ModuleReturn     ReferenceModule = "RETURN"
	ModuleAdjustment ReferenceModule = "ADJUSTMENT"
)

// Account representa uma conta financeira (caixa, banco, carteira).
// CurrentBalance é um saldo de cache: deve ser sempre igual ao saldo de
// abertura mais o somatório assinado das movimentações.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           Type            `json:"type"`
	BankName       string          `json:"bank_name"`
	Description    string          `json:"description"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Status         Status          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewAccount cria uma nova conta financeira
func NewAccount(name string, typ Type, bankName, description string, openingBalance decimal.Decimal) (*Account, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Account{
		ID:             uuid.New().String(),
		Name:           name,
		Type:           typ,
		BankName:       bankName,
		Description:    description,
		OpeningBalance: openingBalance,
		CurrentBalance: openingBalance,
		Status:         StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Update atualiza os dados cadastrais da conta. O saldo não passa por
// aqui: só muda por movimentação.
func (a *Account) Update(name string, typ Type, bankName, description string) error {
	if name == "" {
		return ErrEmptyName
	}
	a.Name = name
	a.Type = typ
	a.BankName = bankName
	a.Description = description
	a.UpdatedAt = time.Now()
	return nil
}

// IsActive verifica se a conta está ativa
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

// BalanceAfter calcula o saldo resultante de uma movimentação
func (a *Account) BalanceAfter(kind TransactionKind, amount decimal.Decimal) decimal.Decimal {
	if kind.Increases() {
		return a.CurrentBalance.Add(amount)
	}
	return a.CurrentBalance.Sub(amount)
}

// Transaction representa uma movimentação imutável de uma conta.
// Nunca é editada nem excluída; correções geram movimentação inversa.
type Transaction struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	Kind            TransactionKind `json:"kind"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	ReferenceModule ReferenceModule `json:"reference_module"`
	ReferenceID     string          `json:"reference_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewTransaction cria uma movimentação de conta
func NewTransaction(accountID string, kind TransactionKind, amount decimal.Decimal, date time.Time, description string, module ReferenceModule, referenceID string) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	return &Transaction{
		ID:              uuid.New().String(),
		AccountID:       accountID,
		Kind:            kind,
		Amount:          amount,
		Date:            date,
		Description:     description,
		ReferenceModule: module,
		ReferenceID:     referenceID,
		CreatedAt:       time.Now(),
	}, nil
}
