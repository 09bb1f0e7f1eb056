package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"police-system/internal/controllers"
	"police-system/internal/identity"
	"police-system/internal/services"
)

func runControleRouter(secureGroup *echo.Group, controleService *services.ControleService, identite identity.Provider, logger *zap.Logger) {
	controleController := controllers.NewControleController(controleService, identite, logger)

	secureGroup.GET("/controles", controleController.Lister)
	secureGroup.POST("/controles/refresh", controleController.Rafraichir)
}
