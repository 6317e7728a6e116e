package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/coursehub/catalog-api/internal/api"
	"github.com/coursehub/catalog-api/internal/api/handler"
	"github.com/coursehub/catalog-api/internal/core/ports"
	"github.com/coursehub/catalog-api/internal/core/service"
	"github.com/coursehub/catalog-api/internal/infrastructure/config"
	"github.com/coursehub/catalog-api/internal/infrastructure/db/memory"
	mongostore "github.com/coursehub/catalog-api/internal/infrastructure/db/mongo"
	redisstore "github.com/coursehub/catalog-api/internal/infrastructure/db/redis"
	"github.com/coursehub/catalog-api/internal/infrastructure/queue"
	"github.com/coursehub/catalog-api/internal/infrastructure/seed"
	"github.com/coursehub/catalog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envFileErr := godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Init(logger.OptionsForEnv(cfg.Env, cfg.LogLevel, "catalog-api"))
	log := logger.Get()
	if envFileErr != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("server stopped")
}

// stores groups the repositories chosen by configuration.
type stores struct {
	courses   ports.CourseRepository
	users     ports.UserRepository
	schedules ports.ScheduleRepository
	checks    map[string]handler.DependencyCheck
	closers   []func(context.Context) error
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()
	if cfg.UsesDevSecret() {
		log.Warn().Msg("JWT_SECRET is not set, signing tokens with the development secret")
	}

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close(log)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	serializer := queue.NewSerializer(cfg.MutationWorkers, log)
	serializer.Start(workerCtx)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, nil)
	e := api.NewRouter(api.Deps{
		Logger:          log,
		AuthService:     service.NewAuthService(st.users, tokens, log),
		TokenVerifier:   tokens,
		CourseService:   service.NewCourseService(st.courses, serializer, log),
		ScheduleService: service.NewScheduleService(st.courses, st.schedules, serializer, log),
		ReadinessChecks: st.checks,
		LoginRateLimit:  cfg.LoginRateLimit,
		StaticDir:       cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("course_store", cfg.CourseStore).
			Str("schedule_store", cfg.ScheduleStore).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}
	return nil
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	users, err := seed.Users(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	st := &stores{
		courses:   memory.NewCourseRepository(seed.Courses(), seed.NextCourseID),
		users:     memory.NewUserRepository(users),
		schedules: memory.NewScheduleRepository(),
		checks:    map[string]handler.DependencyCheck{},
	}

	if cfg.CourseStore == config.StoreMongo {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, client.Disconnect)
		st.checks["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }

		courseRepo := mongostore.NewCourseRepository(db)
		if err := courseRepo.Seed(ctx, seed.Courses(), seed.NextCourseID); err != nil {
			st.close(log)
			return nil, fmt.Errorf("seed courses: %w", err)
		}
		userRepo := mongostore.NewUserRepository(db)
		if err := userRepo.Seed(ctx, users); err != nil {
			st.close(log)
			return nil, fmt.Errorf("seed users: %w", err)
		}
		st.courses, st.users = courseRepo, userRepo
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb course store")
	}

	if cfg.ScheduleStore == config.StoreRedis {
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			st.close(log)
			return nil, err
		}
		st.closers = append(st.closers, func(context.Context) error { return client.Close() })
		st.checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		st.schedules = redisstore.NewScheduleRepository(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis schedule store")
	}

	return st, nil
}

func (st *stores) close(log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, closeFn := range st.closers {
		if err := closeFn(ctx); err != nil {
			log.Warn().Err(err).Msg("closing store")
		}
	}
}
