package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"police-system/internal/identity"
	"police-system/internal/services"
	"police-system/pkg/api"
	"police-system/pkg/utils"
)

type ReportController struct {
	scopeResolver
	reportService *services.ReportService
}

func NewReportController(reportService *services.ReportService, identite identity.Provider, logger *zap.Logger) *ReportController {
	return &ReportController{
		scopeResolver: scopeResolver{identite: identite, logger: logger},
		reportService: reportService,
	}
}

// Exporter télécharge le rapport de l'entité demandée, filtré comme les
// écrans de liste. Format xlsx par défaut ; format=json renvoie les lignes
// brutes.
func (ctrl *ReportController) Exporter(c echo.Context) error {
	params, err := parseParams(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	commissariatID, err := ctrl.commissariat(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	entite := c.Param("entite")
	format := strings.ToLower(c.QueryParam("format"))
	ctrl.logger.Debug("export demandé",
		zap.String("entite", entite),
		zap.String("format", format),
		zap.String("commissariat_id", commissariatID))

	rapport, err := ctrl.reportService.Exporter(c.Request().Context(), entite, commissariatID, params)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if format == "json" {
		return api.SuccessOne(c, http.StatusOK, "Rapport généré", map[string]interface{}{
			"entetes": rapport.EnTetes,
			"lignes":  rapport.Lignes,
		})
	}
	return ctrl.respondWithXLSX(c, entite, rapport)
}

func (ctrl *ReportController) respondWithXLSX(c echo.Context, entite string, rapport *services.Rapport) error {
	f := excelize.NewFile()
	sheet := rapport.Nom
	f.SetSheetName("Sheet1", sheet)

	entetes := make([]interface{}, len(rapport.EnTetes))
	for i, h := range rapport.EnTetes {
		entetes[i] = h
	}
	f.SetSheetRow(sheet, "A1", &entetes)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	derniere, _ := excelize.CoordinatesToCellName(len(rapport.EnTetes), 1)
	f.SetCellStyle(sheet, "A1", derniere, style)

	for i, ligne := range rapport.Lignes {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &ligne)
	}
	colonne, _ := excelize.ColumnNumberToName(len(rapport.EnTetes))
	f.SetColWidth(sheet, "B", colonne, 25)

	fileName := fmt.Sprintf("rapport_%s_%s.xlsx", entite, time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
