package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/repository"
	purchasedomain "github.com/hugohenrick/pos-ceramica/internal/domain/purchase"
	"github.com/hugohenrick/pos-ceramica/internal/service"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// PurchaseController gerencia as requisições relacionadas a compras
type PurchaseController struct {
	purchaseRepo purchasedomain.Repository
	txService    *service.TransactionService
	logger       logger.Logger
}

// NewPurchaseController cria uma nova instância de PurchaseController
func NewPurchaseController(purchaseRepo purchasedomain.Repository, txService *service.TransactionService, logger logger.Logger) *PurchaseController {
	return &PurchaseController{
		purchaseRepo: purchaseRepo,
		txService:    txService,
		logger:       logger,
	}
}

// Create registra uma nova compra
// @Summary Registrar compra
// @Description Registra uma compra: entrada de estoque, razão do fornecedor e pagamento na mesma transação
// @Tags purchases
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param purchase body dto.PurchaseRequest true "Dados da compra"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /purchases [post]
func (c *PurchaseController) Create(ctx *gin.Context) {
	var req dto.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	items := make([]service.PurchaseItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = service.PurchaseItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			CostPrice: it.CostPrice,
		}
	}

	inv, err := c.txService.CreatePurchase(ctx, service.CreatePurchaseInput{
		SupplierID: req.SupplierID,
		Date:       req.Date,
		Items:      items,
		PaidAmount: req.PaidAmount,
		AccountID:  req.AccountID,
		Note:       req.Note,
	})
	if err != nil {
		respondServiceError(ctx, c.logger, "erro ao registrar compra", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(inv))
}

// Get retorna uma compra pelo ID
// @Summary Buscar compra
// @Description Retorna os dados de uma nota de compra pelo ID
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da compra"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /purchases/{id} [get]
func (c *PurchaseController) Get(ctx *gin.Context) {
	inv, err := c.purchaseRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "compra não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar compra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(inv))
}

// List retorna a lista de compras
// @Summary Listar compras
// @Description Retorna a lista de notas de compra paginada, com filtros opcionais por fornecedor ou período
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param supplier_id query string false "Filtro por fornecedor"
// @Param from query string false "Início do período (RFC3339)"
// @Param to query string false "Fim do período (RFC3339)"
// @Success 200 {object} dto.PurchaseListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases [get]
func (c *PurchaseController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	if ctx.Query("supplier_id") != "" {
		invoices, err := c.purchaseRepo.FindBySupplier(ctx, ctx.Query("supplier_id"), p.PageSize, p.Offset())
		if err != nil {
			c.logger.Error("erro ao listar compras", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar compras", err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(invoices, len(invoices), p.Page, p.PageSize))
		return
	}

	if ctx.Query("from") != "" && ctx.Query("to") != "" {
		from, err := time.Parse(time.RFC3339, ctx.Query("from"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", err.Error()))
			return
		}
		to, err := time.Parse(time.RFC3339, ctx.Query("to"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", err.Error()))
			return
		}
		invoices, err := c.purchaseRepo.FindByPeriod(ctx, from, to)
		if err != nil {
			c.logger.Error("erro ao listar compras", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar compras", err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(invoices, len(invoices), 1, len(invoices)))
		return
	}

	invoices, err := c.purchaseRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		c.logger.Error("erro ao listar compras", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar compras", err.Error()))
		return
	}

	total, err := c.purchaseRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar compras", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar compras", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(invoices, total, p.Page, p.PageSize))
}
