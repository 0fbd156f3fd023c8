package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
)

// SetupProductRoutes configura as rotas para o módulo de produtos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/products")
	{
		productRouter.Use(auth.JWTAuthMiddleware())
		{
			productRouter.POST("", productController.Create)
			productRouter.GET("", productController.List)
			productRouter.GET("/low-stock", productController.LowStock)
			productRouter.GET("/barcode/:barcode", productController.GetByBarcode)
			productRouter.GET("/:id", productController.Get)
			productRouter.PUT("/:id", productController.Update)

			// Histórico de movimentação de estoque do produto
			productRouter.GET("/:id/stock-logs", productController.StockLogs)

			// Ajuste manual de estoque (contagem física)
			productRouter.POST("/:id/adjust-stock", auth.RoleAuthMiddleware("admin", "manager"), productController.AdjustStock)

			// Remoção é restrita ao administrador
			productRouter.DELETE("/:id", auth.RoleAuthMiddleware("admin"), productController.Delete)
		}
	}
}
