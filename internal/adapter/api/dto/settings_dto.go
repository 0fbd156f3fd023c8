package dto

import (
	"encoding/json"
	"time"

	"github.com/hugohenrick/pos-ceramica/internal/domain/settings"
)

// SettingRequest representa a gravação de um bloco de configuração
type SettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

// SettingResponse representa um bloco de configuração
type SettingResponse struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToSettingResponse converte um bloco de configuração para DTO
func ToSettingResponse(s *settings.Setting) SettingResponse {
	return SettingResponse{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSettingResponses converte blocos de configuração para DTO
func ToSettingResponses(list []*settings.Setting) []SettingResponse {
	out := make([]SettingResponse, len(list))
	for i, s := range list {
		out[i] = ToSettingResponse(s)
	}
	return out
}
