package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"police-system/internal/identity"
	"police-system/internal/services"
	"police-system/pkg/api"
	"police-system/pkg/utils"
)

type AlerteController struct {
	scopeResolver
	alerteService *services.AlerteService
}

func NewAlerteController(alerteService *services.AlerteService, identite identity.Provider, logger *zap.Logger) *AlerteController {
	return &AlerteController{
		scopeResolver: scopeResolver{identite: identite, logger: logger},
		alerteService: alerteService,
	}
}

// Lister renvoie l'instantané synchronisé de la liste des alertes pour le
// commissariat de la session. L'appel attend la fin du cycle déclenché par
// les paramètres reçus (cadencé par le throttler du contrôleur).
func (ctrl *AlerteController) Lister(c echo.Context) error {
	params, err := parseParams(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	commissariatID, err := ctrl.commissariat(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	snap := ctrl.alerteService.Rafraichir(c.Request().Context(), commissariatID, params)
	return api.SuccessOne(c, http.StatusOK, "Alertes synchronisées", snap)
}

// Dashboard renvoie l'instantané du tableau de bord des alertes : mêmes
// données que la liste, plus la récupération large pour les courbes.
func (ctrl *AlerteController) Dashboard(c echo.Context) error {
	params, err := parseParams(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	commissariatID, err := ctrl.commissariat(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	snap := ctrl.alerteService.RafraichirDashboard(c.Request().Context(), commissariatID, params)
	return api.SuccessOne(c, http.StatusOK, "Tableau de bord synchronisé", snap)
}

// Rafraichir force un nouveau cycle avec les paramètres courants, même si
// aucun n'a changé (bouton « Rechercher » des écrans).
func (ctrl *AlerteController) Rafraichir(c echo.Context) error {
	return ctrl.Lister(c)
}
