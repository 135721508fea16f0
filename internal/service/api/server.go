package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rmorlok/syncstore/internal/api_common"
	"github.com/rmorlok/syncstore/internal/config"
	"github.com/rmorlok/syncstore/internal/routes"
	"github.com/rmorlok/syncstore/internal/service"
)

const ServiceId = "api"

// GetGinEngine builds the engine serving the health checks and the v1 listing API.
func GetGinEngine(dm *service.DependencyManager) *gin.Engine {
	root := dm.GetConfigRoot()
	server := api_common.GinForService(ServiceId, &root.Api)

	server.GET("/ping", func(c *gin.Context) {
		c.PureJSON(http.StatusOK, gin.H{
			"service": ServiceId,
			"message": "pong",
		})
	})

	server.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		dbChan := make(chan bool, 1)
		redisChan := make(chan bool, 1)

		go func() {
			dbChan <- dm.GetDatabase().Ping(ctx)
		}()

		go func() {
			redisChan <- dm.GetRedisClient().Ping(ctx).Err() == nil
		}()

		dbOk := <-dbChan
		redisOk := <-redisChan
		everythingOk := dbOk && redisOk
		status := http.StatusOK
		if !everythingOk {
			status = http.StatusServiceUnavailable
		}

		c.PureJSON(status, gin.H{
			"service": ServiceId,
			"db":      dbOk,
			"redis":   redisOk,
			"ok":      everythingOk,
		})
	})

	v1 := server.Group("/api/v1")
	routes.NewConnectionsRoutes(dm.GetConfig(), dm.GetDatabase(), dm.GetLogger()).Register(v1)

	return server
}

func GetHttpServer(dm *service.DependencyManager) *http.Server {
	return &http.Server{
		Addr:    dm.GetConfigRoot().Api.GetAddr(),
		Handler: GetGinEngine(dm),
	}
}

// Serve runs the API until ctx is cancelled.
func Serve(ctx context.Context, cfg config.C) error {
	dm := service.NewDependencyManager(ServiceId, cfg)
	defer dm.Close()

	if err := dm.AutoMigrateDatabase(ctx); err != nil {
		return err
	}

	return api_common.RunServer(ctx, GetHttpServer(dm), cfg.GetRoot().Api.GetShutdownDuration(), dm.GetLogger())
}
