package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/repository"
	"github.com/hugohenrick/pos-ceramica/internal/domain/expense"
	"github.com/hugohenrick/pos-ceramica/internal/service"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// ExpenseController gerencia as requisições relacionadas a despesas
type ExpenseController struct {
	expenseRepo  expense.Repository
	categoryRepo expense.CategoryRepository
	txService    *service.TransactionService
	logger       logger.Logger
}

// NewExpenseController cria uma nova instância de ExpenseController
func NewExpenseController(expenseRepo expense.Repository, categoryRepo expense.CategoryRepository, txService *service.TransactionService, logger logger.Logger) *ExpenseController {
	return &ExpenseController{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		txService:    txService,
		logger:       logger,
	}
}

// Create lança uma nova despesa
// @Summary Lançar despesa
// @Description Lança uma despesa com saída da conta na mesma transação
// @Tags expenses
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /expenses [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	exp, err := c.txService.AddExpense(ctx, service.AddExpenseInput{
		CategoryID: req.CategoryID,
		AccountID:  req.AccountID,
		Amount:     req.Amount,
		Date:       req.Date,
		Note:       req.Note,
	})
	if err != nil {
		respondServiceError(ctx, c.logger, "erro ao lançar despesa", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(exp))
}

// Get retorna uma despesa pelo ID
// @Summary Buscar despesa
// @Description Retorna os dados de uma despesa pelo ID
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [get]
func (c *ExpenseController) Get(ctx *gin.Context) {
	exp, err := c.expenseRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "despesa não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(exp))
}

// List retorna a lista de despesas
// @Summary Listar despesas
// @Description Retorna a lista de despesas paginada, com filtros opcionais por categoria ou período
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param category_id query string false "Filtro por categoria"
// @Param from query string false "Início do período (RFC3339)"
// @Param to query string false "Fim do período (RFC3339)"
// @Success 200 {object} dto.ExpenseListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [get]
func (c *ExpenseController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	if categoryID := ctx.Query("category_id"); categoryID != "" {
		expenses, err := c.expenseRepo.FindByCategory(ctx, categoryID, p.PageSize, p.Offset())
		if err != nil {
			c.logger.Error("erro ao listar despesas", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar despesas", err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses, len(expenses), p.Page, p.PageSize))
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
		expenses, err := c.expenseRepo.FindByPeriod(ctx, from, to)
		if err != nil {
			c.logger.Error("erro ao listar despesas", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar despesas", err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses, len(expenses), 1, len(expenses)))
		return
	}

	expenses, err := c.expenseRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		c.logger.Error("erro ao listar despesas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar despesas", err.Error()))
		return
	}

	total, err := c.expenseRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar despesas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar despesas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses, total, p.Page, p.PageSize))
}

// Delete estorna e remove uma despesa
// @Summary Remover despesa
// @Description Remove uma despesa devolvendo o valor à conta na mesma transação
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da despesa"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [delete]
func (c *ExpenseController) Delete(ctx *gin.Context) {
	if err := c.txService.DeleteExpense(ctx, ctx.Param("id")); err != nil {
		respondServiceError(ctx, c.logger, "erro ao remover despesa", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("despesa removida com sucesso", nil))
}

// CreateCategory cria uma categoria de despesa
// @Summary Criar categoria de despesa
// @Description Cria uma nova categoria de despesa
// @Tags expenses
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category body dto.ExpenseCategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.ExpenseCategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /expense-categories [post]
func (c *ExpenseController) CreateCategory(ctx *gin.Context) {
	var req dto.ExpenseCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	category, err := expense.NewCategory(req.Name, req.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrExpenseCategoryExists) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "já existe categoria com este nome", ""))
			return
		}
		c.logger.Error("erro ao criar categoria de despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseCategoryResponse(category))
}

// ListCategories retorna todas as categorias de despesa
// @Summary Listar categorias de despesa
// @Description Retorna todas as categorias de despesa
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.ExpenseCategoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expense-categories [get]
func (c *ExpenseController) ListCategories(ctx *gin.Context) {
	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar categorias de despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseCategoryResponses(categories))
}

// UpdateCategory atualiza uma categoria de despesa
// @Summary Atualizar categoria de despesa
// @Description Atualiza o nome e a descrição de uma categoria de despesa
// @Tags expenses
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Param category body dto.ExpenseCategoryRequest true "Dados da categoria"
// @Success 200 {object} dto.ExpenseCategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /expense-categories/{id} [put]
func (c *ExpenseController) UpdateCategory(ctx *gin.Context) {
	var req dto.ExpenseCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	category, err := c.categoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrExpenseCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar categoria de despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return
	}

	if err := category.Update(req.Name, req.Description); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrExpenseCategoryExists) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "já existe categoria com este nome", ""))
			return
		}
		c.logger.Error("erro ao atualizar categoria de despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseCategoryResponse(category))
}

// DeleteCategory remove uma categoria de despesa sem despesas vinculadas
// @Summary Remover categoria de despesa
// @Description Remove uma categoria de despesa; categorias com despesas vinculadas não podem ser removidas
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /expense-categories/{id} [delete]
func (c *ExpenseController) DeleteCategory(ctx *gin.Context) {
	if err := c.categoryRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrExpenseCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", ""))
			return
		}
		if errors.Is(err, repository.ErrExpenseCategoryInUse) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "categoria possui despesas vinculadas", ""))
			return
		}
		c.logger.Error("erro ao remover categoria de despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("categoria removida com sucesso", nil))
}
