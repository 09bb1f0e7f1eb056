package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"police-system/internal/controllers"
	"police-system/internal/identity"
	"police-system/internal/services"
)

func runAlerteRouter(secureGroup *echo.Group, alerteService *services.AlerteService, identite identity.Provider, logger *zap.Logger) {
	alerteController := controllers.NewAlerteController(alerteService, identite, logger)

	secureGroup.GET("/alertes", alerteController.Lister)
	secureGroup.POST("/alertes/refresh", alerteController.Rafraichir)
	secureGroup.GET("/alertes/dashboard", alerteController.Dashboard)
}
