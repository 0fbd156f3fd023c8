package settings

import (
	"encoding/json"
	"errors"
	"time"
)

// Erros do domínio de configurações
var (
	ErrInvalidKey      = errors.New("chave de configuração inválida")
	ErrSettingNotFound = errors.New("configuração não encontrada")
)

// Chaves de configuração conhecidas. Cada chave guarda um bloco JSON
// com as preferências daquela área do sistema.
const (
	KeyPOS     = "pos"     // Preferências do ponto de venda
	KeyBarcode = "barcode" // Prefixo e formato de código de barras
	KeyPrinter = "printer" // Impressora de cupom
	KeyInvoice = "invoice" // Cabeçalho e rodapé da nota
	KeyBackup  = "backup"  // Agendamento de backup
)

// validKeys guarda as chaves aceitas
var validKeys = map[string]bool{
	KeyPOS:     true,
	KeyBarcode: true,
	KeyPrinter: true,
	KeyInvoice: true,
	KeyBackup:  true,
}

// IsValidKey verifica se a chave é conhecida
func IsValidKey(key string) bool {
	return validKeys[key]
}

// Setting representa um bloco de configuração identificado por chave
type Setting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewSetting cria um bloco de configuração validando a chave e o JSON
func NewSetting(key string, value json.RawMessage) (*Setting, error) {
	if !IsValidKey(key) {
		return nil, ErrInvalidKey
	}
	if !json.Valid(value) {
		return nil, ErrInvalidKey
	}
	return &Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}, nil
}
