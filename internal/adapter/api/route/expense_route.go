package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
)

// SetupExpenseRoutes configura as rotas para o módulo de despesas
func SetupExpenseRoutes(router *gin.RouterGroup, expenseController *controller.ExpenseController) {
	expenseRouter := router.Group("/expenses")
	{
		expenseRouter.Use(auth.JWTAuthMiddleware())
		{
			expenseRouter.POST("", expenseController.Create)
			expenseRouter.GET("", expenseController.List)
			expenseRouter.GET("/:id", expenseController.Get)

			// Estorno de despesa é restrito a admin e gerente
			expenseRouter.DELETE("/:id", auth.RoleAuthMiddleware("admin", "manager"), expenseController.Delete)
		}
	}

	categoryRouter := router.Group("/expense-categories")
	{
		categoryRouter.Use(auth.JWTAuthMiddleware())
		{
			categoryRouter.POST("", expenseController.CreateCategory)
			categoryRouter.GET("", expenseController.ListCategories)
			categoryRouter.PUT("/:id", expenseController.UpdateCategory)
			categoryRouter.DELETE("/:id", expenseController.DeleteCategory)
		}
	}
}
