package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"police-system/internal/controllers"
	"police-system/internal/identity"
	"police-system/internal/services"
)

func runInfractionRouter(secureGroup *echo.Group, infractionService *services.InfractionService, identite identity.Provider, logger *zap.Logger) {
	infractionController := controllers.NewInfractionController(infractionService, identite, logger)

	secureGroup.GET("/infractions", infractionController.Lister)
	secureGroup.POST("/infractions/refresh", infractionController.Rafraichir)
}
