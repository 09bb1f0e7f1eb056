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

type ControleController struct {
	scopeResolver
	controleService *services.ControleService
}

func NewControleController(controleService *services.ControleService, identite identity.Provider, logger *zap.Logger) *ControleController {
	return &ControleController{
		scopeResolver:   scopeResolver{identite: identite, logger: logger},
		controleService: controleService,
	}
}

func (ctrl *ControleController) Lister(c echo.Context) error {
	params, err := parseParams(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	commissariatID, err := ctrl.commissariat(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	snap := ctrl.controleService.Rafraichir(c.Request().Context(), commissariatID, params)
	return api.SuccessOne(c, http.StatusOK, "Contrôles synchronisés", snap)
}

func (ctrl *ControleController) Rafraichir(c echo.Context) error {
	return ctrl.Lister(c)
}
