package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		// Rota de login (não requer autenticação)
		authRouter.POST("/login", authController.Login)

		// Rota para renovar token (usa o próprio token expirando)
		authRouter.POST("/refresh-token", authController.Refresh)

		// Rotas do usuário logado
		authRouter.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
		authRouter.PATCH("/password", auth.JWTAuthMiddleware(), authController.ChangePassword)
	}
}
