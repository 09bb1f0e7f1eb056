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

type ObjetController struct {
	scopeResolver
	objetService *services.ObjetService
}

func NewObjetController(objetService *services.ObjetService, identite identity.Provider, logger *zap.Logger) *ObjetController {
	return &ObjetController{
		scopeResolver: scopeResolver{identite: identite, logger: logger},
		objetService:  objetService,
	}
}

func (ctrl *ObjetController) ListerPerdus(c echo.Context) error {
	params, err := parseParams(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	commissariatID, err := ctrl.commissariat(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	snap := ctrl.objetService.RafraichirPerdus(c.Request().Context(), commissariatID, params)
	return api.SuccessOne(c, http.StatusOK, "Objets perdus synchronisés", snap)
}

func (ctrl *ObjetController) ListerRetrouves(c echo.Context) error {
	params, err := parseParams(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	commissariatID, err := ctrl.commissariat(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	snap := ctrl.objetService.RafraichirRetrouves(c.Request().Context(), commissariatID, params)
	return api.SuccessOne(c, http.StatusOK, "Objets retrouvés synchronisés", snap)
}

func (ctrl *ObjetController) RafraichirPerdus(c echo.Context) error {
	return ctrl.ListerPerdus(c)
}

func (ctrl *ObjetController) RafraichirRetrouves(c echo.Context) error {
	return ctrl.ListerRetrouves(c)
}
