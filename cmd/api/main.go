package main

import (
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-blog-api/internal/core/auth"
	"go-blog-api/internal/core/cache"
	"go-blog-api/internal/core/config"
	"go-blog-api/internal/core/database"
	"go-blog-api/internal/core/logger"
	"go-blog-api/internal/core/server"
	"go-blog-api/internal/repo"
	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/handler"
	"go-blog-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", logger.Category(logger.CategoryInitialize), zap.Error(err))
	}
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("automigrate failed", logger.Category(logger.CategoryInitialize), zap.Error(err))
		}
		log.Info("automigrate done")
	}
	if err := database.SeedAdmin(db, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Fatal("seed admin failed", logger.Category(logger.CategoryInitialize), zap.Error(err))
	}

	codec := &auth.Codec{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
	}

	var postCache *cache.Cache
	if cfg.Redis.Addr != "" {
		postCache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	atomic := repo.NewAtomic(db)
	userSvc := service.NewUserService(atomic)
	authSvc := service.NewAuthService(atomic, userSvc, codec)
	postSvc := service.NewPostService(atomic, postCache)

	r := router.NewAPIEngine(log, codec, router.Handlers{
		Auth:  handler.NewAuthHandler(authSvc),
		Users: handler.NewUserHandler(userSvc),
		Posts: handler.NewPostHandler(postSvc),
	})

	srv := server.Build(
		server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port), r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)
	server.Run(srv, log)
}
