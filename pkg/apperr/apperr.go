package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifica um erro da aplicação para mapeamento em HTTP
type Kind string

const (
	// KindValidation indica entrada inválida do cliente
	KindValidation Kind = "VALIDATION"
	// KindInvalidUnitConversion indica venda em unidade sem conversão definida
	KindInvalidUnitConversion Kind = "INVALID_UNIT_CONVERSION"
	// KindInsufficientFunds indica conta sem saldo para a saída
	KindInsufficientFunds Kind = "INSUFFICIENT_FUNDS"
	// KindCreditBlocked indica venda a prazo bloqueada para o cliente
	KindCreditBlocked Kind = "CREDIT_BLOCKED"
	// KindCreditLimit indica limite de crédito excedido sem confirmação
	KindCreditLimit Kind = "CREDIT_LIMIT_EXCEEDED"
	// KindNotFound indica recurso inexistente
	KindNotFound Kind = "NOT_FOUND"
	// KindConflict indica operação incompatível com o estado atual
	KindConflict Kind = "CONFLICT"
	// KindUnauthorized indica falha de autenticação
	KindUnauthorized Kind = "UNAUTHORIZED"
	// KindForbidden indica falta de permissão
	KindForbidden Kind = "FORBIDDEN"
	// KindInternal indica falha interna
	KindInternal Kind = "INTERNAL"
)

// Error é um erro da aplicação com classificação e mensagem para o cliente
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implementa a interface error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap expõe o erro de origem para errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// New cria um erro da aplicação
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap cria um erro da aplicação preservando o erro de origem
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extrai a classificação de um erro, ou KindInternal
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// StatusCode mapeia a classificação do erro para um status HTTP
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInvalidUnitConversion:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden, KindCreditBlocked, KindCreditLimit:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInsufficientFunds:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Message extrai a mensagem para o cliente, ocultando detalhes internos
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "erro interno do servidor"
}
