package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/account"
)

// Erros específicos do repositório
var ErrAccountNotFound = errors.New("conta não encontrada")

const accountColumns = `
	id, name, type, bank_name, description, opening_balance, current_balance,
	status, created_at, updated_at`

// AccountRepository implementa a interface account.Repository usando PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository cria uma nova instância de AccountRepository
func NewAccountRepository(db *pgxpool.Pool) account.Repository {
	return &AccountRepository{db: db}
}

func scanAccount(row pgx.Row) (*account.Account, error) {
	a := &account.Account{}
	var typ, status string
	err := row.Scan(
		&a.ID, &a.Name, &typ, &a.BankName, &a.Description, &a.OpeningBalance,
		&a.CurrentBalance, &status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("falha ao ler conta: %w", err)
	}
	a.Type = account.Type(typ)
	a.Status = account.Status(status)
	return a, nil
}

// Create implementa account.Repository.Create
func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts (
			id, name, type, bank_name, description, opening_balance, current_balance,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`

	_, err := r.db.Exec(ctx, query,
		a.ID, a.Name, string(a.Type), a.BankName, a.Description, a.OpeningBalance,
		a.CurrentBalance, string(a.Status), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir conta: %w", err)
	}
	return nil
}

// FindByID implementa account.Repository.FindByID
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*account.Account, error) {
	query := `SELECT` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.db.QueryRow(ctx, query, id))
}

// List implementa account.Repository.List
func (r *AccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	query := `SELECT` + accountColumns + ` FROM accounts ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar contas: %w", err)
	}
	defer rows.Close()

	var out []*account.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update implementa account.Repository.Update. O saldo não é atualizado
// por aqui: muda apenas pelas movimentações do ledger.
func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	query := `
		UPDATE accounts SET
			name = $2, type = $3, bank_name = $4, description = $5, status = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		a.ID, a.Name, string(a.Type), a.BankName, a.Description, string(a.Status), a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar conta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// Exists implementa account.Repository.Exists
func (r *AccountRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar existência da conta: %w", err)
	}
	return exists, nil
}

const accountTxColumns = `
	id, account_id, kind, amount, date, description, reference_module, reference_id, created_at`

// AccountTransactionRepository implementa account.TransactionRepository
// usando PostgreSQL. Somente consulta: as movimentações entram pela
// unidade de trabalho do ledger.
type AccountTransactionRepository struct {
	db *pgxpool.Pool
}

// NewAccountTransactionRepository cria uma nova instância de AccountTransactionRepository
func NewAccountTransactionRepository(db *pgxpool.Pool) account.TransactionRepository {
	return &AccountTransactionRepository{db: db}
}

func collectAccountTxs(rows pgx.Rows) ([]*account.Transaction, error) {
	defer rows.Close()
	var out []*account.Transaction
	for rows.Next() {
		t := &account.Transaction{}
		var kind, module string
		err := rows.Scan(
			&t.ID, &t.AccountID, &kind, &t.Amount, &t.Date, &t.Description,
			&module, &t.ReferenceID, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler movimentação: %w", err)
		}
		t.Kind = account.TransactionKind(kind)
		t.ReferenceModule = account.ReferenceModule(module)
		out = append(out, t)
	}
	return out, rows.Err()
}

// FindByAccount implementa account.TransactionRepository.FindByAccount
func (r *AccountTransactionRepository) FindByAccount(ctx context.Context, accountID string, limit, offset int) ([]*account.Transaction, error) {
	query := `SELECT` + accountTxColumns + `
		FROM account_transactions
		WHERE account_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar movimentações: %w", err)
	}
	return collectAccountTxs(rows)
}

// FindByPeriod implementa account.TransactionRepository.FindByPeriod
func (r *AccountTransactionRepository) FindByPeriod(ctx context.Context, accountID string, from, to time.Time) ([]*account.Transaction, error) {
	query := `SELECT` + accountTxColumns + `
		FROM account_transactions
		WHERE account_id = $1 AND date >= $2 AND date <= $3
		ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar movimentações por período: %w", err)
	}
	return collectAccountTxs(rows)
}

// FindByReference implementa account.TransactionRepository.FindByReference
func (r *AccountTransactionRepository) FindByReference(ctx context.Context, module account.ReferenceModule, referenceID string) ([]*account.Transaction, error) {
	query := `SELECT` + accountTxColumns + `
		FROM account_transactions
		WHERE reference_module = $1 AND reference_id = $2
		ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, string(module), referenceID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar movimentações por referência: %w", err)
	}
	return collectAccountTxs(rows)
}

// SumByAccount implementa account.TransactionRepository.SumByAccount
func (r *AccountTransactionRepository) SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE WHEN kind IN ('CASH_IN', 'TRANSFER_IN') THEN amount ELSE -amount END
		), 0)
		FROM account_transactions
		WHERE account_id = $1`

	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("falha ao somar movimentações: %w", err)
	}
	return sum, nil
}
