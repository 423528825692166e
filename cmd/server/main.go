package main

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/allergy-forecast/config"
	"ulascansenturk/allergy-forecast/internal/api/v1/handlers"
	"ulascansenturk/allergy-forecast/internal/cache"
	"ulascansenturk/allergy-forecast/internal/db/forecastquery"
	"ulascansenturk/allergy-forecast/internal/providers"
	"ulascansenturk/allergy-forecast/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var forecastRepo forecastquery.Repository
	if conf.QueryLogEnabled {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			logger.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		forecastRepo = forecastquery.NewRepository(db)
	}

	cacheProvider, closeCache, err := initializeCache(ctx, conf)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize cache")
	}
	defer closeCache()

	forecastProvider := providers.NewForecastProvider(
		conf.UpstreamTimeoutDuration(),
		conf.PollenBaseURL,
		conf.AsthmaBaseURL,
		logger.With().Str("component", "iqvia").Logger(),
	)

	aggregator := service.NewForecastRequestAggregator(
		forecastProvider,
		cacheProvider,
		forecastRepo,
		conf.MaxQueueSize,
		conf.MaxWaitTime,
		conf.CacheTTL,
		conf.FailedCacheTTL,
	)
	forecastService := service.NewForecastService(aggregator)

	handler := handlers.NewForecastHandler(forecastService, forecastRepo, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
		aggregator.Shutdown()
	})

	log.Info().
		Str("cache_backend", conf.CacheBackend).
		Bool("query_log", conf.QueryLogEnabled).
		Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeCache(ctx context.Context, conf *config.Config) (cache.Cache, func(), error) {
	switch conf.CacheBackend {
	case config.CacheBackendRedis:
		redisCache := cache.NewRedisCache(conf.RedisAddress, conf.RedisPassword, conf.RedisDB)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisCache.Ping(pingCtx); err != nil {
			redisCache.Close()
			return nil, nil, fmt.Errorf("redis at %s unreachable: %w", conf.RedisAddress, err)
		}

		return redisCache, func() { redisCache.Close() }, nil
	default:
		memoryCache := cache.NewInMemoryCacheProvider(time.Minute)
		return memoryCache, func() { memoryCache.Close() }, nil
	}
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&forecastquery.ForecastQuery{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
