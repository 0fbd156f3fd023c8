package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindInvalidUnitConversion, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindCreditBlocked, http.StatusForbidden},
		{KindCreditLimit, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInsufficientFunds, http.StatusUnprocessableEntity},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := StatusCode(New(c.kind, "x")); got != c.want {
			t.Errorf("%s: esperado %d, obtido %d", c.kind, c.want, got)
		}
	}
}

func TestStatusCodeUnclassifiedError(t *testing.T) {
	if got := StatusCode(errors.New("qualquer coisa")); got != http.StatusInternalServerError {
		t.Errorf("erro não classificado deveria virar 500, obtido %d", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("linha não encontrada")
	err := Wrap(KindNotFound, "produto não encontrado", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is deveria alcançar o erro de origem")
	}
	if KindOf(err) != KindNotFound {
		t.Errorf("esperado KindNotFound, obtido %s", KindOf(err))
	}

	// A classificação sobrevive a camadas de fmt.Errorf %w
	wrapped := fmt.Errorf("falha na venda: %w", err)
	if KindOf(wrapped) != KindNotFound {
		t.Errorf("classificação deveria sobreviver ao wrap, obtido %s", KindOf(wrapped))
	}
	if Message(wrapped) != "produto não encontrado" {
		t.Errorf("mensagem inesperada: %s", Message(wrapped))
	}
}

func TestMessageHidesInternalDetails(t *testing.T) {
	if got := Message(errors.New("pq: deadlock detected")); got != "erro interno do servidor" {
		t.Errorf("mensagem interna não deveria vazar, obtido %q", got)
	}
}
