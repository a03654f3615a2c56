package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TechForum/forum-service/internal/config"
	"github.com/TechForum/forum-service/internal/handler"
	"github.com/TechForum/forum-service/internal/identity"
	"github.com/TechForum/forum-service/internal/rabbitmq"
	"github.com/TechForum/forum-service/internal/repository"
	"github.com/TechForum/forum-service/internal/repository/memory"
	"github.com/TechForum/forum-service/internal/repository/postgres"
	"github.com/TechForum/forum-service/internal/repository/redisrepo"
	"github.com/TechForum/forum-service/internal/server"
	"github.com/TechForum/forum-service/internal/service"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()

	if err := loadEnv(); err != nil {
		logger.Sugar().Panicf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	store := initStore(ctx, logger)

	var mq service.Publisher
	if connString := os.Getenv("RABBITMQ_CONN_STRING"); connString != "" {
		conn, err := rabbitmq.New(connString)
		if err != nil {
			logger.Sugar().Panicf("failed to connect to rabbitmq: %s", err.Error())
		}
		defer conn.Close()
		mq = conn
		logger.Info("Successfully connected to RabbitMQ")
	}

	provider := identity.NewClient(identity.Config{
		Origin:     viper.GetString("identity.origin"),
		ServiceKey: os.Getenv("IDENTITY_SERVICE_KEY"),
		JWTSecret:  []byte(os.Getenv("IDENTITY_JWT_SECRET")),
	}, logger)

	repos := repository.New(store)
	services := service.New(logger, repos, provider, mq)
	handlers := handler.New(services)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func initStore(ctx context.Context, logger *zap.Logger) repository.Store {
	switch os.Getenv("STORE_DRIVER") {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr: os.Getenv("REDIS_ADDR"),
		})
		pong, err := rdb.Ping(ctx).Result()
		if err != nil {
			logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
		}
		logger.Sugar().Infof("Successfully connected to Redis: %s", pong)
		return redisrepo.NewKV(rdb)
	case "memory":
		logger.Info("Using in-memory store; data will not survive restarts")
		return memory.NewKV()
	default:
		dbConfig := config.DBConfig{
			Username: os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			DBName:   os.Getenv("POSTGRES_DATABASE"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}
		db, err := postgres.DB(ctx, dbConfig)
		if err != nil {
			logger.Sugar().Panicf("failed to connect to postgres: %s", err.Error())
		}
		if err := db.Ping(ctx); err != nil {
			logger.Sugar().Panicf("failed to ping postgres: %s", err.Error())
		}
		logger.Info("Successfully connected to PostgreSQL")
		store, err := postgres.NewKV(ctx, db)
		if err != nil {
			logger.Sugar().Panicf("failed to initialize kv table: %s", err.Error())
		}
		return store
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
