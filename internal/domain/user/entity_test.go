package user

import (
	"errors"
	"testing"
)

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser("Maria Silva", "maria", "segredo123", RoleCashier)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if u.Password == "segredo123" {
		t.Fatal("senha não deveria ficar em texto claro")
	}
	if !u.CheckPassword("segredo123") {
		t.Error("senha correta deveria validar")
	}
	if u.CheckPassword("errada") {
		t.Error("senha errada não deveria validar")
	}
	if !u.IsActive() {
		t.Error("usuário novo deveria estar ativo")
	}
}

func TestNewUserInvalidRole(t *testing.T) {
	_, err := NewUser("Maria", "maria", "segredo123", Role("gerente"))
	if !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("esperado ErrInvalidUser, obtido %v", err)
	}
}

func TestLockoutAfterMaxFailures(t *testing.T) {
	u, err := NewUser("João", "joao", "segredo123", RoleCashier)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	for i := 0; i < MaxFailedAttempts-1; i++ {
		u.RegisterFailure()
		if !u.IsActive() {
			t.Fatalf("usuário bloqueado cedo demais na tentativa %d", i+1)
		}
	}

	u.RegisterFailure()
	if u.Status != StatusLocked {
		t.Fatalf("esperado bloqueio após %d falhas, status %s", MaxFailedAttempts, u.Status)
	}

	// Login correto não destrava conta bloqueada; só o Unlock
	u.Unlock()
	if !u.IsActive() {
		t.Error("Unlock deveria reativar o usuário")
	}
	if u.FailedAttempts != 0 {
		t.Errorf("tentativas deveriam zerar, obtido %d", u.FailedAttempts)
	}
}

func TestRegisterLoginResetsFailures(t *testing.T) {
	u, err := NewUser("Ana", "ana", "segredo123", RoleManager)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	u.RegisterFailure()
	u.RegisterFailure()
	u.RegisterLogin()

	if u.FailedAttempts != 0 {
		t.Errorf("tentativas deveriam zerar após login, obtido %d", u.FailedAttempts)
	}
	if u.LastLoginAt.IsZero() {
		t.Error("LastLoginAt deveria ser registrado")
	}
}
