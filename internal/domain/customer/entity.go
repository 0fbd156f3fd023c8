package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrEmptyMobile  = errors.New("telefone não pode ser vazio")
	ErrInvalidLimit = errors.New("limite de crédito inválido")
)

// Status representa o estado do cliente
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Customer representa um cliente da loja.
// CurrentBalance é um saldo de cache (contas a receber): positivo
// significa que o cliente deve à loja. Só muda por lançamento no
// ledger financeiro; OpeningBalance é a base imutável do replay.
type Customer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Mobile         []string        `json:"mobile"`
	Email          string          `json:"email"`
	CNIC           string          `json:"cnic"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	AllowCredit    bool            `json:"allow_credit"`
	Status         Status          `json:"status"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewCustomer cria um novo cliente. O saldo atual nasce igual ao saldo
// de abertura.
func NewCustomer(name string, mobile []string, openingBalance, creditLimit decimal.Decimal, allowCredit bool) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(mobile) == 0 {
		return nil, ErrEmptyMobile
	}
	if creditLimit.IsNegative() {
		return nil, ErrInvalidLimit
	}

	now := time.Now()
	return &Customer{
		ID:             uuid.New().String(),
		Name:           name,
		Mobile:         mobile,
		OpeningBalance: openingBalance,
		CurrentBalance: openingBalance,
		CreditLimit:    creditLimit,
		AllowCredit:    allowCredit,
		Status:         StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// IsActive verifica se o cliente está ativo
func (c *Customer) IsActive() bool {
	return c.Status == StatusActive
}

// ExceedsCreditLimit verifica se uma exposição adicional ultrapassaria o
// limite de crédito. Limite zero significa sem limite.
func (c *Customer) ExceedsCreditLimit(additional decimal.Decimal) bool {
	if !c.CreditLimit.IsPositive() {
		return false
	}
	return c.CurrentBalance.Add(additional).GreaterThan(c.CreditLimit)
}

// Update atualiza os dados cadastrais do cliente. Saldos não passam por
// aqui: mudam apenas pelas operações do ledger.
func (c *Customer) Update(name string, mobile []string, email, cnic, address, city string, creditLimit decimal.Decimal, allowCredit bool, notes string) error {
	if name == "" {
		return ErrEmptyName
	}
	if creditLimit.IsNegative() {
		return ErrInvalidLimit
	}

	c.Name = name
	c.Mobile = mobile
	c.Email = email
	c.CNIC = cnic
	c.Address = address
	c.City = city
	c.CreditLimit = creditLimit
	c.AllowCredit = allowCredit
	c.Notes = notes
	c.UpdatedAt = time.Now()

	return nil
}
