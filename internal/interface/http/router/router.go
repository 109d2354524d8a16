package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookshelf/docs"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
)

// Handlers 路由需要的全部处理器
type Handlers struct {
	Book      *handler.BookHandler
	Search    *handler.SearchHandler
	Aggregate *handler.AggregateHandler
	Status    *handler.StatusHandler
	Activity  *handler.ActivityHandler
}

// New 创建Gin引擎并注册全部路由
// 中间件顺序：Recovery → Logger → Tracing → Metrics → Activity
func New(cfg *config.Config, h *Handlers, activityStore *redis.ActivityStore) *gin.Engine {
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.Logger(),
		middleware.Tracing(),
		middleware.Metrics(),
		middleware.Activity(activityStore),
	)

	r.GET("/", h.Status.Root)
	r.GET("/ping", h.Status.Ping)
	r.GET("/readyz", h.Status.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	books := r.Group("/book")
	{
		books.GET("/", h.Book.ListBooks)
		books.POST("/", h.Book.CreateBook)
		books.GET("/:id", h.Book.GetBook)
		books.PUT("/:id", h.Book.UpdateBook)
		books.DELETE("/:id", h.Book.DeleteBook)
	}

	r.GET("/search/", h.Search.SearchBooks)

	aggregate := r.Group("/aggregate")
	{
		aggregate.GET("/count", h.Aggregate.TotalStock)
		aggregate.GET("/best-selling", h.Aggregate.BestSelling)
		aggregate.GET("/prolific-author", h.Aggregate.ProlificAuthors)
	}

	r.GET("/activity/:client", h.Activity.RecentActivity)

	return r
}
