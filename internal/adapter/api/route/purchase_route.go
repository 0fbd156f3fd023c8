package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
)

// SetupPurchaseRoutes configura as rotas para o módulo de compras
func SetupPurchaseRoutes(router *gin.RouterGroup, purchaseController *controller.PurchaseController) {
	purchaseRouter := router.Group("/purchases")
	{
		purchaseRouter.Use(auth.JWTAuthMiddleware())
		{
			// Registro de compra é restrito a admin e gerente
			purchaseRouter.POST("", auth.RoleAuthMiddleware("admin", "manager"), purchaseController.Create)
			purchaseRouter.GET("", purchaseController.List)
			purchaseRouter.GET("/:id", purchaseController.Get)
		}
	}
}
