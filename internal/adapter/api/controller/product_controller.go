package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/repository"
	productdomain "github.com/hugohenrick/pos-ceramica/internal/domain/product"
	stockdomain "github.com/hugohenrick/pos-ceramica/internal/domain/stock"
	"github.com/hugohenrick/pos-ceramica/internal/service"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo  productdomain.Repository
	stockLogRepo stockdomain.Repository
	txService    *service.TransactionService
	logger       logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, stockLogRepo stockdomain.Repository, txService *service.TransactionService, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo:  productRepo,
		stockLogRepo: stockLogRepo,
		txService:    txService,
		logger:       logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no catálogo
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := productdomain.NewProduct(
		req.Name,
		productdomain.Category(req.Category),
		productdomain.UnitType(req.Unit),
		req.SupplierID,
		req.CostPrice,
		req.SalePrice,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}

	err = p.Update(
		req.Name, req.SKU, req.Brand,
		productdomain.Category(req.Category),
		req.Size,
		productdomain.UnitType(req.Unit),
		req.TilesPerBox, req.CoveragePerBox,
		req.CostPrice, req.SalePrice,
		req.SupplierID, req.MinStockAlert,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao preencher produto", err.Error()))
		return
	}
	p.Barcode = req.Barcode

	if err := c.productRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateBarcode) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "código de barras já em uso", ""))
			return
		}
		c.logger.Error("erro ao criar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// GetByBarcode retorna um produto pelo código de barras
// @Summary Buscar produto por código de barras
// @Description Retorna o produto associado ao código de barras lido no caixa
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param barcode path string true "Código de barras"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/barcode/{barcode} [get]
func (c *ProductController) GetByBarcode(ctx *gin.Context) {
	p, err := c.productRepo.FindByBarcode(ctx, ctx.Param("barcode"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar produto por código de barras", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List retorna a lista de produtos
// @Summary Listar produtos
// @Description Retorna a lista de produtos paginada, com filtro por nome ou categoria
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param name query string false "Busca parcial por nome"
// @Param category query string false "Filtro por categoria"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	var (
		products []*productdomain.Product
		err      error
	)
	switch {
	case ctx.Query("name") != "":
		products, err = c.productRepo.FindByName(ctx, ctx.Query("name"), p.PageSize, p.Offset())
	case ctx.Query("category") != "":
		products, err = c.productRepo.FindByCategory(ctx, productdomain.Category(ctx.Query("category")), p.PageSize, p.Offset())
	default:
		products, err = c.productRepo.List(ctx, p.PageSize, p.Offset())
	}
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	total, err := c.productRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, p.Page, p.PageSize))
}

// LowStock retorna os produtos abaixo do alerta mínimo de estoque
// @Summary Listar produtos com estoque baixo
// @Description Retorna os produtos com estoque igual ou abaixo do alerta mínimo
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/low-stock [get]
func (c *ProductController) LowStock(ctx *gin.Context) {
	products, err := c.productRepo.FindLowStock(ctx)
	if err != nil {
		c.logger.Error("erro ao listar produtos com estoque baixo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	out := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = dto.ToProductResponse(p)
	}
	ctx.JSON(http.StatusOK, out)
}

// Update atualiza os dados cadastrais de um produto
// @Summary Atualizar produto
// @Description Atualiza os dados cadastrais de um produto; o estoque não muda por aqui
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	err = p.Update(
		req.Name, req.SKU, req.Brand,
		productdomain.Category(req.Category),
		req.Size,
		productdomain.UnitType(req.Unit),
		req.TilesPerBox, req.CoveragePerBox,
		req.CostPrice, req.SalePrice,
		req.SupplierID, req.MinStockAlert,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar produto", err.Error()))
		return
	}
	p.Barcode = req.Barcode

	if err := c.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateBarcode) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "código de barras já em uso", ""))
			return
		}
		c.logger.Error("erro ao atualizar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete remove um produto
// @Summary Remover produto
// @Description Remove um produto do catálogo
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.productRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto removido com sucesso", nil))
}

// StockLogs retorna o histórico de estoque de um produto
// @Summary Histórico de estoque
// @Description Retorna os lançamentos de estoque do produto, mais recentes primeiro
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {array} dto.StockLogResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/stock-logs [get]
func (c *ProductController) StockLogs(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	p := dto.GetPagination(page, size)

	logs, err := c.stockLogRepo.FindByProduct(ctx, ctx.Param("id"), p.PageSize, p.Offset())
	if err != nil {
		c.logger.Error("erro ao listar histórico de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar histórico", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockLogResponses(logs))
}

// AdjustStock corrige o estoque de um produto para a quantidade contada
// @Summary Ajustar estoque
// @Description Lança a diferença entre o estoque contado e o estoque atual como ajuste
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param adjust body dto.StockAdjustRequest true "Quantidade contada e motivo"
// @Success 200 {object} dto.StockLogResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id}/adjust-stock [post]
func (c *ProductController) AdjustStock(ctx *gin.Context) {
	var req dto.StockAdjustRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	log, err := c.txService.AdjustStock(ctx, service.AdjustStockInput{
		ProductID: ctx.Param("id"),
		NewQty:    req.NewQty,
		Note:      req.Note,
	})
	if err != nil {
		respondServiceError(ctx, c.logger, "erro ao ajustar estoque", err)
		return
	}

	out := dto.ToStockLogResponses([]*stockdomain.Log{log})
	ctx.JSON(http.StatusOK, out[0])
}
