package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
)

// SetupSettingsRoutes configura as rotas para as configurações do sistema
func SetupSettingsRoutes(router *gin.RouterGroup, settingsController *controller.SettingsController) {
	settingsRouter := router.Group("/settings")
	{
		settingsRouter.Use(auth.JWTAuthMiddleware())
		{
			settingsRouter.GET("", settingsController.List)
			settingsRouter.GET("/:key", settingsController.Get)

			// Gravação de configuração é restrita a admin e gerente
			settingsRouter.PUT("/:key", auth.RoleAuthMiddleware("admin", "manager"), settingsController.Upsert)
		}
	}
}
