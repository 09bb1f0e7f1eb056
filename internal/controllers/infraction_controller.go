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

type InfractionController struct {
	scopeResolver
	infractionService *services.InfractionService
}

func NewInfractionController(infractionService *services.InfractionService, identite identity.Provider, logger *zap.Logger) *InfractionController {
	return &InfractionController{
		scopeResolver:     scopeResolver{identite: identite, logger: logger},
		infractionService: infractionService,
	}
}

func (ctrl *InfractionController) Lister(c echo.Context) error {
	params, err := parseParams(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	commissariatID, err := ctrl.commissariat(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	snap := ctrl.infractionService.Rafraichir(c.Request().Context(), commissariatID, params)
	return api.SuccessOne(c, http.StatusOK, "Infractions synchronisées", snap)
}

func (ctrl *InfractionController) Rafraichir(c echo.Context) error {
	return ctrl.Lister(c)
}
