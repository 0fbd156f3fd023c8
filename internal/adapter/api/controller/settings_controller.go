package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/repository"
	"github.com/hugohenrick/pos-ceramica/internal/domain/settings"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// SettingsController gerencia as requisições de configuração do sistema
type SettingsController struct {
	settingsRepo settings.Repository
	logger       logger.Logger
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(settingsRepo settings.Repository, logger logger.Logger) *SettingsController {
	return &SettingsController{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get retorna um bloco de configuração pela chave
// @Summary Buscar configuração
// @Description Retorna o bloco de configuração identificado pela chave
// @Tags settings
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param key path string true "Chave da configuração"
// @Success 200 {object} dto.SettingResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /settings/{key} [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	key := ctx.Param("key")
	if !settings.IsValidKey(key) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "chave de configuração inválida", ""))
		return
	}

	setting, err := c.settingsRepo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "configuração não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar configuração", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configuração", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingResponse(setting))
}

// List retorna todos os blocos de configuração
// @Summary Listar configurações
// @Description Retorna todos os blocos de configuração gravados
// @Tags settings
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.SettingResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings [get]
func (c *SettingsController) List(ctx *gin.Context) {
	list, err := c.settingsRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar configurações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingResponses(list))
}

// Upsert grava um bloco de configuração
// @Summary Gravar configuração
// @Description Cria ou substitui o bloco de configuração identificado pela chave
// @Tags settings
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param key path string true "Chave da configuração"
// @Param setting body dto.SettingRequest true "Conteúdo da configuração"
// @Success 200 {object} dto.SettingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /settings/{key} [put]
func (c *SettingsController) Upsert(ctx *gin.Context) {
	var req dto.SettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	setting, err := settings.NewSetting(ctx.Param("key"), req.Value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "chave de configuração inválida", err.Error()))
		return
	}

	if err := c.settingsRepo.Upsert(ctx, setting); err != nil {
		c.logger.Error("erro ao gravar configuração", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar configuração", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingResponse(setting))
}
