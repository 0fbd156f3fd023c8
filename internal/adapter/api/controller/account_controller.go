package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/repository"
	accountdomain "github.com/hugohenrick/pos-ceramica/internal/domain/account"
	"github.com/hugohenrick/pos-ceramica/internal/service"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// AccountController gerencia as requisições relacionadas a contas financeiras
type AccountController struct {
	accountRepo accountdomain.Repository
	txRepo      accountdomain.TransactionRepository
	txService   *service.TransactionService
	logger      logger.Logger
}

// NewAccountController cria uma nova instância de AccountController
func NewAccountController(accountRepo accountdomain.Repository, txRepo accountdomain.TransactionRepository, txService *service.TransactionService, logger logger.Logger) *AccountController {
	return &AccountController{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		txService:   txService,
		logger:      logger,
	}
}

// Create cria uma nova conta financeira
// @Summary Criar conta
// @Description Cria uma nova conta financeira com saldo de abertura
// @Tags accounts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param account body dto.AccountRequest true "Dados da conta"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts [post]
func (c *AccountController) Create(ctx *gin.Context) {
	var req dto.AccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	a, err := accountdomain.NewAccount(req.Name, accountdomain.Type(req.Type), req.BankName, req.Description, req.OpeningBalance)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar conta", err.Error()))
		return
	}

	if err := c.accountRepo.Create(ctx, a); err != nil {
		c.logger.Error("erro ao criar conta", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar conta", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(a))
}

// Get retorna uma conta pelo ID
// @Summary Buscar conta
// @Description Retorna os dados de uma conta financeira pelo ID
// @Tags accounts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da conta"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /accounts/{id} [get]
func (c *AccountController) Get(ctx *gin.Context) {
	a, err := c.accountRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "conta não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar conta", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar conta", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(a))
}

// List retorna todas as contas financeiras
// @Summary Listar contas
// @Description Retorna todas as contas financeiras
// @Tags accounts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts [get]
func (c *AccountController) List(ctx *gin.Context) {
	accounts, err := c.accountRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar contas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar contas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// Update atualiza os dados cadastrais de uma conta
// @Summary Atualizar conta
// @Description Atualiza os dados cadastrais de uma conta; o saldo não muda por aqui
// @Tags accounts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da conta"
// @Param account body dto.AccountRequest true "Dados da conta"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /accounts/{id} [put]
func (c *AccountController) Update(ctx *gin.Context) {
	var req dto.AccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	a, err := c.accountRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "conta não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar conta", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar conta", err.Error()))
		return
	}

	if err := a.Update(req.Name, accountdomain.Type(req.Type), req.BankName, req.Description); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar conta", err.Error()))
		return
	}

	if err := c.accountRepo.Update(ctx, a); err != nil {
		c.logger.Error("erro ao atualizar conta", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar conta", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(a))
}

// Transactions retorna o extrato de uma conta
// @Summary Extrato da conta
// @Description Retorna as movimentações da conta, mais recentes primeiro
// @Tags accounts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da conta"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {array} dto.AccountTransactionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/{id}/transactions [get]
func (c *AccountController) Transactions(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	p := dto.GetPagination(page, size)

	txs, err := c.txRepo.FindByAccount(ctx, ctx.Param("id"), p.PageSize, p.Offset())
	if err != nil {
		c.logger.Error("erro ao listar extrato da conta", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar extrato", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountTransactionResponses(txs))
}

// Transfer move valor entre duas contas
// @Summary Transferir entre contas
// @Description Move um valor da conta de origem para a conta de destino
// @Tags accounts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param transfer body dto.TransferRequest true "Dados da transferência"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /accounts/transfer [post]
func (c *AccountController) Transfer(ctx *gin.Context) {
	var req dto.TransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	err := c.txService.TransferFunds(ctx, service.TransferFundsInput{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Date:          req.Date,
		Note:          req.Note,
	})
	if err != nil {
		respondServiceError(ctx, c.logger, "erro ao transferir entre contas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("transferência realizada com sucesso", nil))
}
