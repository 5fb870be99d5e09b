package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/pedroramon/hotel-backend/internal/api/v1"
	"github.com/pedroramon/hotel-backend/internal/config"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/pyroscope"
	"github.com/pedroramon/hotel-backend/internal/rest/middleware"
	"github.com/pedroramon/hotel-backend/internal/sentry"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health     *v1.HealthHandler
	Room       *v1.RoomHandler
	RoomType   *v1.RoomTypeHandler
	RoomStatus *v1.RoomStatusHandler
}

func NewRouter(
	handlers Handlers,
	cfg *config.Configuration,
	logger *logger.Logger,
	sentrySvc *sentry.Service,
	pyroscopeSvc *pyroscope.Service,
) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SentryMiddleware(cfg),
		middleware.PyroscopeMiddleware(pyroscopeSvc),
		middleware.ErrorHandler(logger, sentrySvc),
	)

	router.GET("/health", handlers.Health.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	rooms := api.Group("/rooms")
	{
		rooms.GET("", handlers.Room.ListRooms)
		rooms.GET("/:id", handlers.Room.GetRoom)
		rooms.GET("/number/:roomNumber", handlers.Room.GetRoomByNumber)
		rooms.POST("", handlers.Room.CreateRoom)
		rooms.PUT("", handlers.Room.UpdateRoom)
		rooms.DELETE("/:id", handlers.Room.DeleteRoom)
	}

	roomTypes := api.Group("/type-rooms")
	{
		roomTypes.GET("", handlers.RoomType.ListRoomTypes)
		roomTypes.GET("/:id", handlers.RoomType.GetRoomType)
		roomTypes.POST("", handlers.RoomType.CreateRoomType)
		roomTypes.PUT("", handlers.RoomType.UpdateRoomType)
		roomTypes.DELETE("/:id", handlers.RoomType.DeleteRoomType)
	}

	roomStatuses := api.Group("/status-rooms")
	{
		roomStatuses.GET("", handlers.RoomStatus.ListRoomStatuses)
		roomStatuses.GET("/:id", handlers.RoomStatus.GetRoomStatus)
		roomStatuses.POST("", handlers.RoomStatus.CreateRoomStatus)
		roomStatuses.PUT("", handlers.RoomStatus.UpdateRoomStatus)
		roomStatuses.DELETE("/:id", handlers.RoomStatus.DeleteRoomStatus)
	}

	return router
}
