package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"police-system/internal/routes"
	"police-system/internal/synchro"
	"police-system/pkg/config"
	apperrors "police-system/pkg/errors"
	applogger "police-system/pkg/logger"
	appmw "police-system/pkg/middleware"
	"police-system/pkg/service"
	"police-system/pkg/utils"
	"police-system/pkg/validation"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Avertissement: fichier .env introuvable ou illisible.")
	}

	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panique interceptée",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Erreur interne de la passerelle", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	e.Use(appmw.RequestID(logger))

	e.Validator = validation.New()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("connexion Redis impossible", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey)

	registry := synchro.NewRegistry(cfg.Sync.RetentionControleur)
	defer registry.Close()

	loggers := &routes.Loggers{
		Main:    logger,
		Auth:    logger.Named("auth"),
		Synchro: logger.Named("synchro"),
	}
	routes.InitRouter(e, redisClient, jwtSvc, registry, loggers, cfg)

	logger.Info("passerelle démarrée", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("échec du démarrage du serveur", zap.Error(err))
	}
}
