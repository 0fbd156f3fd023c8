package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/repository"
	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// CategoryController gerencia as requisições de categorias de produto
type CategoryController struct {
	categoryRepo product.CategoryRepository
	logger       logger.Logger
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(categoryRepo product.CategoryRepository, logger logger.Logger) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create cria uma nova categoria de produto
// @Summary Criar categoria
// @Description Cria uma categoria de produto com prefixo de código de barras, unidade padrão e alíquota
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category body dto.CategoryConfigRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryConfigResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CategoryConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	category, err := product.NewCategoryConfig(req.Name, product.Category(req.Type), req.Prefix,
		product.UnitType(req.DefaultUnit), req.TaxRate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "categoria inválida", err.Error()))
		return
	}

	if err := c.categoryRepo.Create(ctx, category); err != nil {
		c.logger.Error("erro ao criar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryConfigResponse(category))
}

// Get retorna uma categoria pelo ID
// @Summary Buscar categoria
// @Description Retorna os dados de uma categoria de produto
// @Tags categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.CategoryConfigResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	category, err := c.categoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryConfigResponse(category))
}

// List retorna todas as categorias de produto
// @Summary Listar categorias
// @Description Retorna todas as categorias de produto cadastradas
// @Tags categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.CategoryConfigResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar categorias", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryConfigResponses(categories))
}

// Update atualiza uma categoria de produto
// @Summary Atualizar categoria
// @Description Atualiza os dados de uma categoria de produto
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Param category body dto.CategoryConfigRequest true "Dados da categoria"
// @Success 200 {object} dto.CategoryConfigResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	var req dto.CategoryConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	category, err := c.categoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return
	}

	if err := category.Update(req.Name, product.Category(req.Type), req.Prefix,
		product.UnitType(req.DefaultUnit), req.TaxRate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "categoria inválida", err.Error()))
		return
	}

	if err := c.categoryRepo.Update(ctx, category); err != nil {
		c.logger.Error("erro ao atualizar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryConfigResponse(category))
}

// Delete remove uma categoria de produto
// @Summary Remover categoria
// @Description Remove uma categoria de produto
// @Tags categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 204 "Sem conteúdo"
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	if err := c.categoryRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover categoria", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
