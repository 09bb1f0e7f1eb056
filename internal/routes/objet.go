package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"police-system/internal/controllers"
	"police-system/internal/identity"
	"police-system/internal/services"
)

func runObjetRouter(secureGroup *echo.Group, objetService *services.ObjetService, identite identity.Provider, logger *zap.Logger) {
	objetController := controllers.NewObjetController(objetService, identite, logger)

	secureGroup.GET("/objets-perdus", objetController.ListerPerdus)
	secureGroup.POST("/objets-perdus/refresh", objetController.RafraichirPerdus)
	secureGroup.GET("/objets-retrouves", objetController.ListerRetrouves)
	secureGroup.POST("/objets-retrouves/refresh", objetController.RafraichirRetrouves)
}
