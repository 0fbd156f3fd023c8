package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/repository"
	saledomain "github.com/hugohenrick/pos-ceramica/internal/domain/sale"
	"github.com/hugohenrick/pos-ceramica/internal/service"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// SaleController gerencia as requisições do ponto de venda
type SaleController struct {
	saleRepo  saledomain.Repository
	txService *service.TransactionService
	logger    logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, txService *service.TransactionService, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:  saleRepo,
		txService: txService,
		logger:    logger,
	}
}

// Create finaliza uma venda
// @Summary Finalizar venda
// @Description Finaliza uma venda: baixa o estoque, lança o razão do cliente e a entrada no caixa em uma única transação
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	inv, err := c.txService.CreateSale(ctx, req.ToSaleInput())
	if err != nil {
		respondServiceError(ctx, c.logger, "erro ao finalizar venda", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(inv))
}

// Get retorna uma fatura pelo ID
// @Summary Buscar venda
// @Description Retorna os dados de uma fatura de venda pelo ID
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da fatura"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	inv, err := c.saleRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fatura não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar fatura", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fatura", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(inv))
}

// List retorna a lista de vendas
// @Summary Listar vendas
// @Description Retorna a lista de faturas de venda paginada, com filtro opcional por cliente
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param customer_id query string false "Filtro por cliente"
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	var (
		invoices []*saledomain.Invoice
		err      error
	)
	if customerID := ctx.Query("customer_id"); customerID != "" {
		invoices, err = c.saleRepo.FindByCustomer(ctx, customerID, p.PageSize, p.Offset())
	} else {
		invoices, err = c.saleRepo.List(ctx, p.PageSize, p.Offset())
	}
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	total, err := c.saleRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(invoices, total, p.Page, p.PageSize))
}

// Hold coloca uma venda em espera
// @Summary Colocar venda em espera
// @Description Guarda o carrinho como rascunho sem movimentar estoque, razão ou caixa
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados do carrinho"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /sales/hold [post]
func (c *SaleController) Hold(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	inv, err := c.txService.HoldInvoice(ctx, req.ToSaleInput())
	if err != nil {
		respondServiceError(ctx, c.logger, "erro ao colocar venda em espera", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(inv))
}

// ListHeld retorna as vendas em espera
// @Summary Listar vendas em espera
// @Description Retorna as vendas guardadas como rascunho
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.SaleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/held [get]
func (c *SaleController) ListHeld(ctx *gin.Context) {
	invoices, err := c.txService.ListHeldInvoices(ctx)
	if err != nil {
		c.logger.Error("erro ao listar vendas em espera", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas em espera", err.Error()))
		return
	}

	out := make([]dto.SaleResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = dto.ToSaleResponse(inv)
	}
	ctx.JSON(http.StatusOK, out)
}

// GetHeld retorna uma venda em espera pelo ID
// @Summary Buscar venda em espera
// @Description Retorna o rascunho de venda para retomar no caixa
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda em espera"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/held/{id} [get]
func (c *SaleController) GetHeld(ctx *gin.Context) {
	inv, err := c.txService.RetrieveHeldInvoice(ctx, ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, c.logger, "erro ao buscar venda em espera", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(inv))
}

// DeleteHeld descarta uma venda em espera
// @Summary Descartar venda em espera
// @Description Remove um rascunho de venda sem efeito em estoque ou caixa
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda em espera"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/held/{id} [delete]
func (c *SaleController) DeleteHeld(ctx *gin.Context) {
	if err := c.txService.DeleteHeldInvoice(ctx, ctx.Param("id")); err != nil {
		respondServiceError(ctx, c.logger, "erro ao descartar venda em espera", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venda em espera descartada", nil))
}
