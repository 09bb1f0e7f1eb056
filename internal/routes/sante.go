package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"police-system/internal/controllers"
)

func runSanteRouter(api *echo.Group, redisClient *redis.Client, logger *zap.Logger) {
	santeController := controllers.NewSanteController(redisClient, logger)

	// Sonde publique : pas de session requise.
	api.GET("/sante", santeController.Verifier)
}
