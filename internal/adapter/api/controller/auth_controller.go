package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/repository"
	userdomain "github.com/hugohenrick/pos-ceramica/internal/domain/user"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// AuthController gerencia as requisições de autenticação
type AuthController struct {
	userRepo    userdomain.Repository
	authLogRepo userdomain.AuthLogRepository
	jwtService  *auth.JWTService
	logger      logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepo userdomain.Repository, authLogRepo userdomain.AuthLogRepository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepo:    userRepo,
		authLogRepo: authLogRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// registerAttempt grava a tentativa de login para auditoria. Falha no
// log de auditoria não derruba a autenticação.
func (c *AuthController) registerAttempt(ctx *gin.Context, username, userID string, success bool) {
	log := userdomain.NewAuthLog(username, userID, success, ctx.ClientIP())
	if err := c.authLogRepo.Create(ctx, log); err != nil {
		c.logger.Warn("falha ao registrar tentativa de autenticação", "username", username, "error", err)
	}
}

// Login autentica um usuário
// @Summary Login
// @Description Autentica um usuário e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciais de acesso"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u, err := c.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.registerAttempt(ctx, req.Username, "", false)
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
			return
		}
		c.logger.Error("erro ao buscar usuário no login", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao autenticar", err.Error()))
		return
	}

	if u.Status == userdomain.StatusLocked {
		c.registerAttempt(ctx, req.Username, u.ID, false)
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "usuário bloqueado por excesso de tentativas", ""))
		return
	}

	if !u.IsActive() {
		c.registerAttempt(ctx, req.Username, u.ID, false)
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "usuário inativo", ""))
		return
	}

	if !u.CheckPassword(req.Password) {
		u.RegisterFailure()
		if err := c.userRepo.Update(ctx, u); err != nil {
			c.logger.Error("erro ao registrar falha de login", "username", req.Username, "error", err)
		}
		c.registerAttempt(ctx, req.Username, u.ID, false)
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
		return
	}

	u.RegisterLogin()
	if err := c.userRepo.Update(ctx, u); err != nil {
		c.logger.Error("erro ao registrar login", "username", req.Username, "error", err)
	}
	c.registerAttempt(ctx, req.Username, u.ID, true)

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(c.jwtService.TokenTTL()).Unix(),
		User:      dto.ToUserResponse(u),
	})
}

// Refresh renova um token JWT
// @Summary Renovar token
// @Description Renova um token JWT válido ou recém-expirado
// @Tags auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token não informado", ""))
		return
	}

	token, err := c.jwtService.RefreshToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshTokenResponse{Token: token})
}

// Me retorna o usuário autenticado
// @Summary Usuário atual
// @Description Retorna os dados do usuário autenticado
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := auth.CurrentUserID(ctx)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "não autenticado", ""))
		return
	}

	u, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuário não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar usuário autenticado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// ChangePassword troca a senha do usuário autenticado
// @Summary Trocar senha
// @Description Troca a senha do usuário autenticado
// @Tags auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param passwords body dto.ChangePasswordRequest true "Senha atual e nova"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	userID := auth.CurrentUserID(ctx)
	u, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "não autenticado", ""))
		return
	}

	if !u.CheckPassword(req.CurrentPassword) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "senha atual incorreta", ""))
		return
	}

	if err := u.SetPassword(req.NewPassword); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar hash da senha", err.Error()))
		return
	}

	if err := c.userRepo.UpdatePassword(ctx, u.ID, u.Password); err != nil {
		c.logger.Error("erro ao atualizar senha", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar senha", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("senha atualizada com sucesso", nil))
}
