package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
)

// SetupCustomerRoutes configura as rotas para o módulo de clientes
func SetupCustomerRoutes(router *gin.RouterGroup, customerController *controller.CustomerController) {
	customerRouter := router.Group("/customers")
	{
		customerRouter.Use(auth.JWTAuthMiddleware())
		{
			customerRouter.POST("", customerController.Create)
			customerRouter.GET("", customerController.List)
			customerRouter.GET("/:id", customerController.Get)
			customerRouter.PUT("/:id", customerController.Update)

			// Extrato do razão do cliente
			customerRouter.GET("/:id/ledger", customerController.Ledger)

			// Recebimento avulso que abate o saldo devedor
			customerRouter.POST("/:id/payments", customerController.ReceivePayment)

			// Remoção é restrita ao administrador
			customerRouter.DELETE("/:id", auth.RoleAuthMiddleware("admin"), customerController.Delete)
		}
	}
}
