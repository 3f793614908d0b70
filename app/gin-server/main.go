package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/devconnect/config"
	"github.com/yoockh/devconnect/internal/api/handlers"
	"github.com/yoockh/devconnect/internal/api/middleware"
	"github.com/yoockh/devconnect/internal/api/routes"
	"github.com/yoockh/devconnect/internal/cache"
	"github.com/yoockh/devconnect/internal/logger"
	mongorepo "github.com/yoockh/devconnect/internal/repositories/mongo"
	pgrepo "github.com/yoockh/devconnect/internal/repositories/postgres"
	"github.com/yoockh/devconnect/internal/services"
	"github.com/yoockh/devconnect/internal/utils"
	"github.com/yoockh/devconnect/internal/validation"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.LoadApp()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()

	// Init MongoDB
	mongoClient, err := config.InitMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	mongoDB := mongoClient.Database(cfg.MongoDB)
	if err := config.EnsureMongoIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	log.Info("MongoDB connected")

	// Init PostgreSQL
	pg, err := config.InitPostgres(cfg.PostgresURI)
	if err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.MigratePostgres(pg); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}
	log.Info("PostgreSQL connected")

	// Init Redis (optional)
	var profileCache cache.Cache = cache.Noop{}
	rdb, err := config.InitRedis(ctx, cfg.RedisAddr)
	switch {
	case err != nil:
		log.WithError(err).Warn("Redis unavailable, profile cache disabled")
	case rdb != nil:
		defer func() { _ = rdb.Close() }()
		profileCache = cache.NewRedisCache(rdb)
		log.Info("Redis connected")
	}

	v := validation.New()
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	users := pgrepo.NewUserRepo(pg)
	profiles := mongorepo.NewProfileRepo(mongoDB)

	authSvc := services.NewAuthService(users, tokens, v)
	profileSvc := services.NewProfileService(profiles, users, v, services.ProfileServiceOptions{
		Cache:    profileCache,
		CacheTTL: cfg.CacheTTL,
		Logger:   log,
	})

	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.Recovery(log), middleware.CORS(cfg.CORSOrigins))
	routes.RegisterRoutes(r, routes.Deps{
		Auth:     handlers.NewAuthHandler(authSvc),
		Profile:  handlers.NewProfileHandler(profileSvc),
		Verifier: authSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
