package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/repository"
	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
	"github.com/hugohenrick/pos-ceramica/internal/domain/salesreturn"
	"github.com/hugohenrick/pos-ceramica/internal/service"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// SalesReturnController gerencia as requisições relacionadas a devoluções
type SalesReturnController struct {
	returnRepo salesreturn.Repository
	txService  *service.TransactionService
	logger     logger.Logger
}

// NewSalesReturnController cria uma nova instância de SalesReturnController
func NewSalesReturnController(returnRepo salesreturn.Repository, txService *service.TransactionService, logger logger.Logger) *SalesReturnController {
	return &SalesReturnController{
		returnRepo: returnRepo,
		txService:  txService,
		logger:     logger,
	}
}

// Create registra uma devolução de venda
// @Summary Registrar devolução
// @Description Devolve itens de uma venda: estoque volta e o reembolso sai da conta ou abate o saldo do cliente
// @Tags returns
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param return body dto.ReturnRequest true "Dados da devolução"
// @Success 201 {object} dto.ReturnResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /returns [post]
func (c *SalesReturnController) Create(ctx *gin.Context) {
	var req dto.ReturnRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	items := make([]service.ReturnItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = service.ReturnItemInput{
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			SelectedUnit: product.UnitType(it.SelectedUnit),
		}
	}

	ret, err := c.txService.ProcessReturn(ctx, service.ProcessReturnInput{
		SaleInvoiceID: req.SaleInvoiceID,
		Date:          req.Date,
		Items:         items,
		RefundMethod:  salesreturn.RefundMethod(req.RefundMethod),
		AccountID:     req.AccountID,
		Note:          req.Note,
	})
	if err != nil {
		respondServiceError(ctx, c.logger, "erro ao registrar devolução", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReturnResponse(ret))
}

// Get retorna uma devolução pelo ID
// @Summary Buscar devolução
// @Description Retorna os dados de uma devolução pelo ID
// @Tags returns
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da devolução"
// @Success 200 {object} dto.ReturnResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /returns/{id} [get]
func (c *SalesReturnController) Get(ctx *gin.Context) {
	ret, err := c.returnRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrReturnNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "devolução não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar devolução", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar devolução", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReturnResponse(ret))
}

// List retorna a lista de devoluções
// @Summary Listar devoluções
// @Description Retorna a lista de devoluções paginada, com filtro opcional por venda de origem
// @Tags returns
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param sale_invoice_id query string false "Filtro por venda de origem"
// @Success 200 {object} dto.ReturnListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /returns [get]
func (c *SalesReturnController) List(ctx *gin.Context) {
	if saleID := ctx.Query("sale_invoice_id"); saleID != "" {
		returns, err := c.returnRepo.FindBySaleInvoice(ctx, saleID)
		if err != nil {
			c.logger.Error("erro ao listar devoluções", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar devoluções", err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, dto.ToReturnListResponse(returns, len(returns), 1, len(returns)))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	returns, err := c.returnRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		c.logger.Error("erro ao listar devoluções", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar devoluções", err.Error()))
		return
	}

	total, err := c.returnRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar devoluções", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar devoluções", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReturnListResponse(returns, total, p.Page, p.PageSize))
}
