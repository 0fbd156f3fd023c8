package supplier

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrEmptyCompany = errors.New("razão social não pode ser vazia")
)

// Status representa o estado do fornecedor
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Supplier representa um fornecedor da loja.
// CurrentBalance é um saldo de cache (contas a pagar): positivo
// significa que a loja deve ao fornecedor. Só muda por lançamento no
// ledger financeiro.
type Supplier struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CompanyName    string          `json:"company_name"`
	ContactPerson  string          `json:"contact_person"`
	Mobile         []string        `json:"mobile"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	NTN            string          `json:"ntn"`
	Status         Status          `json:"status"`
	Notes          string          `json:"notes"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewSupplier cria um novo fornecedor
func NewSupplier(name, companyName, contactPerson string, mobile []string, openingBalance decimal.Decimal) (*Supplier, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if companyName == "" {
		return nil, ErrEmptyCompany
	}

	now := time.Now()
	return &Supplier{
		ID:             uuid.New().String(),
		Name:           name,
		CompanyName:    companyName,
		ContactPerson:  contactPerson,
		Mobile:         mobile,
		OpeningBalance: openingBalance,
		CurrentBalance: openingBalance,
		Status:         StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// IsActive verifica se o fornecedor está ativo
func (s *Supplier) IsActive() bool {
	return s.Status == StatusActive
}

// Update atualiza os dados cadastrais do fornecedor
func (s *Supplier) Update(name, companyName, contactPerson string, mobile []string, email, address, ntn, notes string, status Status) error {
	if name == "" {
		return ErrEmptyName
	}
	if companyName == "" {
		return ErrEmptyCompany
	}

	s.Name = name
	s.CompanyName = companyName
	s.ContactPerson = contactPerson
	s.Mobile = mobile
	s.Email = email
	s.Address = address
	s.NTN = ntn
	s.Notes = notes
	s.Status = status
	s.UpdatedAt = time.Now()

	return nil
}
