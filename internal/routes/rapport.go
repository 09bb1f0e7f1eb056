package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"police-system/internal/controllers"
	"police-system/internal/identity"
	"police-system/internal/services"
)

func runRapportRouter(secureGroup *echo.Group, reportService *services.ReportService, identite identity.Provider, logger *zap.Logger) {
	reportController := controllers.NewReportController(reportService, identite, logger)

	secureGroup.GET("/rapports/:entite/export", reportController.Exporter)
}
