package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
)

// SetupAccountRoutes configura as rotas para o módulo de contas
func SetupAccountRoutes(router *gin.RouterGroup, accountController *controller.AccountController) {
	accountRouter := router.Group("/accounts")
	{
		accountRouter.Use(auth.JWTAuthMiddleware())
		{
			accountRouter.GET("", accountController.List)
			accountRouter.GET("/:id", accountController.Get)
			accountRouter.GET("/:id/transactions", accountController.Transactions)

			// Criação, edição e transferências são restritas a admin e gerente
			accountRouter.POST("", auth.RoleAuthMiddleware("admin", "manager"), accountController.Create)
			accountRouter.PUT("/:id", auth.RoleAuthMiddleware("admin", "manager"), accountController.Update)
			accountRouter.POST("/transfer", auth.RoleAuthMiddleware("admin", "manager"), accountController.Transfer)
		}
	}
}
