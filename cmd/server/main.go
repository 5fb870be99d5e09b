package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	_ "github.com/pedroramon/hotel-backend/docs/swagger"
	"github.com/pedroramon/hotel-backend/internal/api"
	v1 "github.com/pedroramon/hotel-backend/internal/api/v1"
	"github.com/pedroramon/hotel-backend/internal/config"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/postgres"
	"github.com/pedroramon/hotel-backend/internal/pyroscope"
	"github.com/pedroramon/hotel-backend/internal/repository"
	"github.com/pedroramon/hotel-backend/internal/sentry"
	"github.com/pedroramon/hotel-backend/internal/service"
	"github.com/pedroramon/hotel-backend/internal/types"
	"github.com/pedroramon/hotel-backend/internal/validator"
	"go.uber.org/fx"
)

// @title Hotel Backend API
// @version 1.0
// @description Back office API for rooms, room types and room statuses
// @BasePath /
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		// Validator backs every request DTO
		fx.Invoke(validator.NewValidator),
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Repositories
			repository.NewRoomTypeRepository,
			repository.NewRoomStatusRepository,
			repository.NewRoomRepository,
		),
		postgres.Module(),
		sentry.Module(),
		pyroscope.Module(),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,
			service.NewRoomTypeService,
			service.NewRoomStatusService,
			service.NewRoomService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	roomService service.RoomService,
	roomTypeService service.RoomTypeService,
	roomStatusService service.RoomStatusService,
) api.Handlers {
	return api.Handlers{
		Health:     v1.NewHealthHandler(),
		Room:       v1.NewRoomHandler(roomService, logger),
		RoomType:   v1.NewRoomTypeHandler(roomTypeService, logger),
		RoomStatus: v1.NewRoomStatusHandler(roomStatusService, logger),
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	case types.ModeAWSLambdaAPI:
		startAWSLambdaAPI(lc, r, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}

// startAWSLambdaAPI hands the router to the Lambda runtime once every other
// start hook has run, since lambda.Start never returns.
func startAWSLambdaAPI(lc fx.Lifecycle, r *gin.Engine, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting AWS Lambda API handler")
			ginLambda := ginadapter.New(r)
			go lambda.Start(ginLambda.ProxyWithContext)
			return nil
		},
	})
}
