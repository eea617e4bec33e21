package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"
	"ustadgee"
	"ustadgee/internal/api/handler/endpoints"
	"ustadgee/internal/api/models"
	"ustadgee/internal/api/repo"
	"ustadgee/internal/api/service"
	"ustadgee/internal/realtime"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
)

func main() {
	ustadgee.InitConfig(".env")
	gin.SetMode(gin.ReleaseMode)

	if ustadgee.GetConfig().Mode == "dev" {
		if err := ustadgee.DB.AutoMigrate(
			&models.UserType{},
			&models.User{},
			&models.Category{},
			&models.SubCategory{},
			&models.Service{},
			&models.ServiceImage{},
			&models.TaskAssign{},
			&models.Review{},
			&models.Chat{},
			&models.Notification{},
		); err != nil {
			ustadgee.Logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
		ustadgee.Logger.Info().Msg("Database migrated successfully")
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	router, err := graceful.Default(graceful.WithAddr(ustadgee.GetConfig().ApiPort))
	if err != nil {
		panic(err)
	}
	defer stop()
	defer router.Close()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Realtime components: one registry per process, shared by the
	// frame router and the notification fan-out.
	registry := realtime.NewRegistry(ustadgee.Logger)
	wsRouter := realtime.NewRouter(registry, repo.NewUserRepository(), ustadgee.Logger)
	notifier := realtime.NewNotifier(registry, repo.NewNotificationRepository(), ustadgee.Logger)
	ustadgee.Logger.Info().Msg("Realtime registry started")

	if natsURL := ustadgee.GetConfig().NatsConfig.URL; natsURL != "" {
		bridge, err := realtime.NewNATSBridge(natsURL, notifier, ustadgee.Logger)
		if err != nil {
			ustadgee.Logger.Fatal().Err(err).Msg("Failed to connect to NATS")
		}
		defer bridge.Close()
		if err = bridge.Subscribe(); err != nil {
			ustadgee.Logger.Fatal().Err(err).Msg("Failed to subscribe to NATS notifications")
		}
		ustadgee.Logger.Info().Str("url", natsURL).Msg("NATS notification bridge started")
	}

	initAPI(router, wsRouter, notifier)

	ustadgee.Logger.Debug().Msgf("Starting API on port %s", ustadgee.GetConfig().ApiPort)
	if err = router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		ustadgee.Logger.Fatal().Msg(err.Error())
		panic(err)
	}
}

func initAPI(router *graceful.Graceful, wsRouter *realtime.Router, notifier *realtime.Notifier) {
	endpoints.AuthHandler(router)
	endpoints.ServiceHandler(router)
	endpoints.TaskHandler(router, service.NewTaskService(notifier))
	endpoints.ReviewHandler(router, service.NewReviewService(notifier))
	endpoints.ChatHandler(router)
	endpoints.NotificationHandler(router)
	endpoints.WebSocketHandler(router, wsRouter)
}
