package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
)

// SetupCategoryRoutes configura as rotas para as categorias de produto
func SetupCategoryRoutes(router *gin.RouterGroup, categoryController *controller.CategoryController) {
	categoryRouter := router.Group("/categories")
	{
		categoryRouter.Use(auth.JWTAuthMiddleware())
		{
			categoryRouter.GET("", categoryController.List)
			categoryRouter.GET("/:id", categoryController.Get)

			// Cadastro de categorias é restrito a admin e gerente
			categoryRouter.POST("", auth.RoleAuthMiddleware("admin", "manager"), categoryController.Create)
			categoryRouter.PUT("/:id", auth.RoleAuthMiddleware("admin", "manager"), categoryController.Update)
			categoryRouter.DELETE("/:id", auth.RoleAuthMiddleware("admin"), categoryController.Delete)
		}
	}
}
