package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/repository"
	"github.com/hugohenrick/pos-ceramica/internal/domain/ledger"
	supplierdomain "github.com/hugohenrick/pos-ceramica/internal/domain/supplier"
	"github.com/hugohenrick/pos-ceramica/internal/service"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// SupplierController gerencia as requisições relacionadas a fornecedores
type SupplierController struct {
	supplierRepo supplierdomain.Repository
	ledgerRepo   ledger.Repository
	txService    *service.TransactionService
	logger       logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(supplierRepo supplierdomain.Repository, ledgerRepo ledger.Repository, txService *service.TransactionService, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepo: supplierRepo,
		ledgerRepo:   ledgerRepo,
		txService:    txService,
		logger:       logger,
	}
}

// Create cria um novo fornecedor
// @Summary Criar fornecedor
// @Description Cria um novo fornecedor com saldo de abertura
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := supplierdomain.NewSupplier(req.Name, req.CompanyName, req.ContactPerson, req.Mobile, req.OpeningBalance)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar fornecedor", err.Error()))
		return
	}

	err = s.Update(req.Name, req.CompanyName, req.ContactPerson, req.Mobile, req.Email, req.Address, req.NTN, req.Notes, s.Status)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao preencher fornecedor", err.Error()))
		return
	}

	if err := c.supplierRepo.Create(ctx, s); err != nil {
		c.logger.Error("erro ao criar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(s))
}

// Get retorna um fornecedor pelo ID
// @Summary Buscar fornecedor
// @Description Retorna os dados de um fornecedor pelo ID
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /suppliers/{id} [get]
func (c *SupplierController) Get(ctx *gin.Context) {
	s, err := c.supplierRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(s))
}

// List retorna a lista de fornecedores
// @Summary Listar fornecedores
// @Description Retorna a lista de fornecedores paginada, com filtro opcional por nome
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param name query string false "Busca parcial por nome"
// @Success 200 {object} dto.SupplierListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [get]
func (c *SupplierController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	var (
		suppliers []*supplierdomain.Supplier
		err       error
	)
	if name := ctx.Query("name"); name != "" {
		suppliers, err = c.supplierRepo.FindByName(ctx, name, p.PageSize, p.Offset())
	} else {
		suppliers, err = c.supplierRepo.List(ctx, p.PageSize, p.Offset())
	}
	if err != nil {
		c.logger.Error("erro ao listar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fornecedores", err.Error()))
		return
	}

	total, err := c.supplierRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar fornecedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(suppliers, total, p.Page, p.PageSize))
}

// Update atualiza um fornecedor
// @Summary Atualizar fornecedor
// @Description Atualiza os dados cadastrais de um fornecedor; o saldo não muda por aqui
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /suppliers/{id} [put]
func (c *SupplierController) Update(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := c.supplierRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	err = s.Update(req.Name, req.CompanyName, req.ContactPerson, req.Mobile, req.Email, req.Address, req.NTN, req.Notes, s.Status)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar fornecedor", err.Error()))
		return
	}

	if err := c.supplierRepo.Update(ctx, s); err != nil {
		c.logger.Error("erro ao atualizar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(s))
}

// Delete remove um fornecedor sem movimentações
// @Summary Remover fornecedor
// @Description Remove um fornecedor; fornecedores com compras ou produtos vinculados não podem ser removidos
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /suppliers/{id} [delete]
func (c *SupplierController) Delete(ctx *gin.Context) {
	if err := c.supplierRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", ""))
			return
		}
		if errors.Is(err, repository.ErrSupplierHasHistory) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "fornecedor possui movimentações e não pode ser removido", ""))
			return
		}
		c.logger.Error("erro ao remover fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("fornecedor removido com sucesso", nil))
}

// Ledger retorna o extrato do fornecedor
// @Summary Extrato do fornecedor
// @Description Retorna os lançamentos do razão do fornecedor, mais recentes primeiro
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id}/ledger [get]
func (c *SupplierController) Ledger(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	p := dto.GetPagination(page, size)

	entries, err := c.ledgerRepo.FindByEntity(ctx, ledger.EntitySupplier, ctx.Param("id"), p.PageSize, p.Offset())
	if err != nil {
		c.logger.Error("erro ao listar extrato do fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar extrato", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}

// Pay registra um pagamento a fornecedor
// @Summary Pagar fornecedor
// @Description Abate o saldo a pagar do fornecedor com saída da conta informada
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Param payment body dto.PaySupplierRequest true "Dados do pagamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /suppliers/{id}/payments [post]
func (c *SupplierController) Pay(ctx *gin.Context) {
	var req dto.PaySupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	err := c.txService.PaySupplier(ctx, service.PaymentInput{
		EntityID:  ctx.Param("id"),
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Date:      req.Date,
		Note:      req.Note,
	})
	if err != nil {
		respondServiceError(ctx, c.logger, "erro ao pagar fornecedor", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("pagamento registrado com sucesso", nil))
}
