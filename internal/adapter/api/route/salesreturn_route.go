package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
)

// SetupReturnRoutes configura as rotas para o módulo de devoluções
func SetupReturnRoutes(router *gin.RouterGroup, returnController *controller.SalesReturnController) {
	returnRouter := router.Group("/returns")
	{
		returnRouter.Use(auth.JWTAuthMiddleware())
		{
			returnRouter.POST("", returnController.Create)
			returnRouter.GET("", returnController.List)
			returnRouter.GET("/:id", returnController.Get)
		}
	}
}
