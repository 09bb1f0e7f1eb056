package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"police-system/internal/identity"
	"police-system/internal/services"
	"police-system/internal/synchro"
	"police-system/internal/upstream"
	"police-system/pkg/config"
	"police-system/pkg/middleware"
	"police-system/pkg/service"
)

type Loggers struct {
	Main    *zap.Logger
	Auth    *zap.Logger
	Synchro *zap.Logger
}

// InitRouter câble toute la passerelle : client du serveur central,
// résolution d'identité, registre des contrôleurs de synchronisation,
// services par entité et routes HTTP.
func InitRouter(e *echo.Echo, redisClient *redis.Client, jwtSvc service.JWTService, registry *synchro.Registry, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: création des routes")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth)

	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, loggers.Main)
	identite := identity.NewCacheProvider(identity.NewRedisStore(redisClient), loggers.Main)

	alerteService := services.NewAlerteService(client, registry, cfg, loggers.Synchro)
	objetService := services.NewObjetService(client, registry, cfg, loggers.Synchro)
	controleService := services.NewControleService(client, registry, cfg, loggers.Synchro)
	infractionService := services.NewInfractionService(client, registry, cfg, loggers.Synchro)
	reportService := services.NewReportService(client, loggers.Main)

	secureGroup := api.Group("", authMW.Auth)

	runAlerteRouter(secureGroup, alerteService, identite, loggers.Main)
	runObjetRouter(secureGroup, objetService, identite, loggers.Main)
	runControleRouter(secureGroup, controleService, identite, loggers.Main)
	runInfractionRouter(secureGroup, infractionService, identite, loggers.Main)
	runRapportRouter(secureGroup, reportService, identite, loggers.Main)
	runSanteRouter(api, redisClient, loggers.Main)

	loggers.Main.Info("InitRouter: routes créées")
}
