package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Erros do domínio de usuário
var (
	ErrInvalidUser        = errors.New("usuário inválido")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUsernameExists     = errors.New("já existe usuário com este nome de acesso")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserLocked         = errors.New("usuário bloqueado por excesso de tentativas")
	ErrUserInactive       = errors.New("usuário inativo")
)

// MaxFailedAttempts é o limite de tentativas de login antes do bloqueio
const MaxFailedAttempts = 5

// Role representa o papel/função do usuário
type Role string

// Status representa o status do usuário
type Status string

// Constantes para Role
const (
	RoleAdmin   Role = "admin"   // Administrador do sistema
	RoleManager Role = "manager" // Gerente da loja
	RoleCashier Role = "cashier" // Operador de caixa
)

// IsValid verifica se o papel é válido
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier:
		return true
	}
	return false
}

// Constantes para Status
const (
	StatusActive   Status = "active"   // Usuário ativo
	StatusInactive Status = "inactive" // Usuário inativo
	StatusLocked   Status = "locked"   // Usuário bloqueado por tentativas falhas
)

// User representa um usuário do sistema
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // O campo senha não é retornado nas respostas JSON
	Role           Role      `json:"role"`
	Status         Status    `json:"status"`
	FailedAttempts int       `json:"failed_attempts"`
	LastLoginAt    time.Time `json:"last_login_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser cria um novo usuário com a senha já com hash
func NewUser(name, username, password string, role Role) (*User, error) {
	if name == "" || username == "" || password == "" {
		return nil, ErrInvalidUser
	}
	if !role.IsValid() {
		return nil, ErrInvalidUser
	}
	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Username:  username,
		Role:      role,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterFailure registra uma tentativa de login falha.
// Ao atingir o limite o usuário é bloqueado até um administrador liberar.
func (u *User) RegisterFailure() {
	u.FailedAttempts++
	if u.FailedAttempts >= MaxFailedAttempts {
		u.Status = StatusLocked
	}
	u.UpdatedAt = time.Now()
}

// RegisterLogin registra um login bem sucedido e zera as tentativas falhas
func (u *User) RegisterLogin() {
	u.FailedAttempts = 0
	u.LastLoginAt = time.Now()
	u.UpdatedAt = u.LastLoginAt
}

// Unlock libera um usuário bloqueado
func (u *User) Unlock() {
	if u.Status == StatusLocked {
		u.Status = StatusActive
	}
	u.FailedAttempts = 0
	u.UpdatedAt = time.Now()
}

// AuthLog registra uma tentativa de autenticação para auditoria
type AuthLog struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	UserID    string    `json:"user_id,omitempty"`
	Success   bool      `json:"success"`
	IP        string    `json:"ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAuthLog cria um registro de tentativa de autenticação
func NewAuthLog(username, userID string, success bool, ip string) *AuthLog {
	return &AuthLog{
		ID:        uuid.New().String(),
		Username:  username,
		UserID:    userID,
		Success:   success,
		IP:        ip,
		CreatedAt: time.Now(),
	}
}
