package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/repository"
	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
	quotationdomain "github.com/hugohenrick/pos-ceramica/internal/domain/quotation"
	saledomain "github.com/hugohenrick/pos-ceramica/internal/domain/sale"
	"github.com/hugohenrick/pos-ceramica/internal/service"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// QuotationController gerencia as requisições relacionadas a orçamentos
type QuotationController struct {
	quotationRepo quotationdomain.Repository
	productRepo   product.Repository
	txService     *service.TransactionService
	logger        logger.Logger
}

// NewQuotationController cria uma nova instância de QuotationController
func NewQuotationController(quotationRepo quotationdomain.Repository, productRepo product.Repository, txService *service.TransactionService, logger logger.Logger) *QuotationController {
	return &QuotationController{
		quotationRepo: quotationRepo,
		productRepo:   productRepo,
		txService:     txService,
		logger:        logger,
	}
}

// buildItems resolve nomes e preços das linhas do orçamento a partir do
// catálogo, respeitando a conversão de unidade do produto.
func (c *QuotationController) buildItems(ctx *gin.Context, reqItems []dto.SaleItemRequest) ([]saledomain.CartItem, error) {
	items := make([]saledomain.CartItem, len(reqItems))
	for i, it := range reqItems {
		p, err := c.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		unit := product.UnitType(it.SelectedUnit)
		price := it.UnitPrice
		if price.IsZero() {
			price, err = p.UnitPriceFor(unit)
			if err != nil {
				return nil, err
			}
		}
		items[i] = saledomain.CartItem{
			ProductID:    p.ID,
			ProductName:  p.Name,
			Quantity:     it.Quantity,
			SelectedUnit: unit,
			UnitPrice:    price,
			Discount:     it.Discount,
		}
	}
	return items, nil
}

// Create cria um novo orçamento
// @Summary Criar orçamento
// @Description Cria um orçamento sem movimentar estoque, razão ou caixa
// @Tags quotations
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param quotation body dto.QuotationRequest true "Dados do orçamento"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotations [post]
func (c *QuotationController) Create(ctx *gin.Context) {
	var req dto.QuotationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	items, err := c.buildItems(ctx, req.Items)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao montar orçamento", err.Error()))
		return
	}

	q, err := quotationdomain.NewQuotation(
		req.CustomerID, req.CustomerName, req.ValidUntil, items,
		req.Discount, req.Tax, req.Note, req.Terms, auth.CurrentUserID(ctx),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar orçamento", err.Error()))
		return
	}

	if err := c.quotationRepo.Create(ctx, q); err != nil {
		c.logger.Error("erro ao criar orçamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar orçamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToQuotationResponse(q))
}

// Get retorna um orçamento pelo ID
// @Summary Buscar orçamento
// @Description Retorna os dados de um orçamento pelo ID
// @Tags quotations
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do orçamento"
// @Success 200 {object} dto.QuotationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotations/{id} [get]
func (c *QuotationController) Get(ctx *gin.Context) {
	q, err := c.quotationRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrQuotationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "orçamento não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar orçamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar orçamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToQuotationResponse(q))
}

// List retorna a lista de orçamentos
// @Summary Listar orçamentos
// @Description Retorna a lista de orçamentos paginada, com filtro opcional por status ou cliente
// @Tags quotations
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param status query string false "Filtro por status"
// @Param customer_id query string false "Filtro por cliente"
// @Success 200 {object} dto.QuotationListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotations [get]
func (c *QuotationController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	var (
		quotations []*quotationdomain.Quotation
		err        error
	)
	switch {
	case ctx.Query("status") != "":
		quotations, err = c.quotationRepo.FindByStatus(ctx, quotationdomain.Status(ctx.Query("status")), p.PageSize, p.Offset())
	case ctx.Query("customer_id") != "":
		quotations, err = c.quotationRepo.FindByCustomer(ctx, ctx.Query("customer_id"), p.PageSize, p.Offset())
	default:
		quotations, err = c.quotationRepo.List(ctx, p.PageSize, p.Offset())
	}
	if err != nil {
		c.logger.Error("erro ao listar orçamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar orçamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToQuotationListResponse(quotations, len(quotations), p.Page, p.PageSize))
}

// Update atualiza um orçamento ainda pendente
// @Summary Atualizar orçamento
// @Description Atualiza um orçamento pendente; orçamentos convertidos não mudam
// @Tags quotations
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do orçamento"
// @Param quotation body dto.QuotationRequest true "Dados do orçamento"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /quotations/{id} [put]
func (c *QuotationController) Update(ctx *gin.Context) {
	var req dto.QuotationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	q, err := c.quotationRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrQuotationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "orçamento não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar orçamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar orçamento", err.Error()))
		return
	}

	if q.Status == quotationdomain.StatusConverted {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "orçamento já convertido em venda", ""))
		return
	}

	items, err := c.buildItems(ctx, req.Items)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao montar orçamento", err.Error()))
		return
	}

	updated, err := quotationdomain.NewQuotation(
		req.CustomerID, req.CustomerName, req.ValidUntil, items,
		req.Discount, req.Tax, req.Note, req.Terms, q.CreatedBy,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar orçamento", err.Error()))
		return
	}
	updated.ID = q.ID
	updated.Date = q.Date
	updated.CreatedAt = q.CreatedAt

	if err := c.quotationRepo.Update(ctx, updated); err != nil {
		c.logger.Error("erro ao atualizar orçamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar orçamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToQuotationResponse(updated))
}

// Delete remove um orçamento
// @Summary Remover orçamento
// @Description Remove um orçamento
// @Tags quotations
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do orçamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotations/{id} [delete]
func (c *QuotationController) Delete(ctx *gin.Context) {
	if err := c.quotationRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrQuotationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "orçamento não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover orçamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover orçamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("orçamento removido com sucesso", nil))
}

// Convert transforma um orçamento em venda
// @Summary Converter orçamento em venda
// @Description Converte o orçamento pendente em venda na mesma transação; se a venda falhar, o orçamento continua pendente
// @Tags quotations
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do orçamento"
// @Param conversion body dto.QuotationConvertRequest true "Dados do recebimento"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /quotations/{id}/convert [post]
func (c *QuotationController) Convert(ctx *gin.Context) {
	var req dto.QuotationConvertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	payments := make([]saledomain.Payment, len(req.Payments))
	for i, p := range req.Payments {
		payments[i] = saledomain.Payment{
			Method: saledomain.PaymentMethod(p.Method),
			Amount: p.Amount,
		}
	}

	inv, err := c.txService.ConvertQuotation(ctx, service.ConvertQuotationInput{
		QuotationID:    ctx.Param("id"),
		ReceivedAmount: req.ReceivedAmount,
		Payments:       payments,
		AccountID:      req.AccountID,
		CreditOverride: req.CreditOverride,
	})
	if err != nil {
		respondServiceError(ctx, c.logger, "erro ao converter orçamento", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(inv))
}
