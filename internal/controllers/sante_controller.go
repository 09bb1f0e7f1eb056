package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"police-system/pkg/api"
)

type SanteController struct {
	redis  *redis.Client
	logger *zap.Logger
}

func NewSanteController(client *redis.Client, logger *zap.Logger) *SanteController {
	return &SanteController{redis: client, logger: logger}
}

// Verifier répond tant que la passerelle tourne ; l'état de la couche
// session est indiqué sans faire échouer la sonde, la résolution d'identité
// ayant son propre traitement d'erreur par requête.
func (ctrl *SanteController) Verifier(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	sessions := "ok"
	if err := ctrl.redis.Ping(ctx).Err(); err != nil {
		ctrl.logger.Warn("couche session injoignable", zap.Error(err))
		sessions = "indisponible"
	}

	return api.SuccessOne(c, http.StatusOK, "Passerelle opérationnelle", map[string]string{
		"sessions": sessions,
	})
}
