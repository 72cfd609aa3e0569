package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/api/handlers/broadcast"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/middlewares"
)

func New(handler *broadcast.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		api.POST("/broadcast", handler.Broadcast)
		api.POST("/broadcast/segment", handler.Segment)
		api.GET("/recipients", handler.Recipients)

		jobs := api.Group("/broadcast/jobs")
		jobs.POST("", handler.CreateJob)
		jobs.GET("", handler.GetJobs)
		jobs.GET("/:id", handler.GetJob)
		jobs.GET("/:id/status", handler.GetJobStatus)
		jobs.DELETE("/:id", handler.Cancel)
	}

	return e
}
