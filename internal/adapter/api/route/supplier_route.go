package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
)

// SetupSupplierRoutes configura as rotas para o módulo de fornecedores
func SetupSupplierRoutes(router *gin.RouterGroup, supplierController *controller.SupplierController) {
	supplierRouter := router.Group("/suppliers")
	{
		supplierRouter.Use(auth.JWTAuthMiddleware())
		{
			supplierRouter.POST("", supplierController.Create)
			supplierRouter.GET("", supplierController.List)
			supplierRouter.GET("/:id", supplierController.Get)
			supplierRouter.PUT("/:id", supplierController.Update)

			// Extrato do razão do fornecedor
			supplierRouter.GET("/:id/ledger", supplierController.Ledger)

			// Pagamento avulso que abate o saldo a pagar
			supplierRouter.POST("/:id/payments", supplierController.Pay)

			// Remoção é restrita ao administrador
			supplierRouter.DELETE("/:id", auth.RoleAuthMiddleware("admin"), supplierController.Delete)
		}
	}
}
