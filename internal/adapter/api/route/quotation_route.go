package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
)

// SetupQuotationRoutes configura as rotas para o módulo de orçamentos
func SetupQuotationRoutes(router *gin.RouterGroup, quotationController *controller.QuotationController) {
	quotationRouter := router.Group("/quotations")
	{
		quotationRouter.Use(auth.JWTAuthMiddleware())
		{
			quotationRouter.POST("", quotationController.Create)
			quotationRouter.GET("", quotationController.List)
			quotationRouter.GET("/:id", quotationController.Get)
			quotationRouter.PUT("/:id", quotationController.Update)
			quotationRouter.DELETE("/:id", quotationController.Delete)

			// Conversão do orçamento em venda
			quotationRouter.POST("/:id/convert", quotationController.Convert)
		}
	}
}
