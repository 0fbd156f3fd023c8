package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
)

// SetupSaleRoutes configura as rotas para o módulo de vendas
func SetupSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController) {
	saleRouter := router.Group("/sales")
	{
		saleRouter.Use(auth.JWTAuthMiddleware())
		{
			saleRouter.POST("", saleController.Create)
			saleRouter.GET("", saleController.List)

			// Carrinhos em espera (o caixa atende outro cliente no meio)
			saleRouter.POST("/held", saleController.Hold)
			saleRouter.GET("/held", saleController.ListHeld)
			saleRouter.GET("/held/:id", saleController.GetHeld)
			saleRouter.DELETE("/held/:id", saleController.DeleteHeld)

			saleRouter.GET("/:id", saleController.Get)
		}
	}
}
