package main

import (
	"context"
	"errors"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/mentorconnect/mentorship-api/internal/api"
	"github.com/mentorconnect/mentorship-api/internal/core/credential"
	"github.com/mentorconnect/mentorship-api/internal/core/domain"
	mongodb "github.com/mentorconnect/mentorship-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mentorconnect/mentorship-api/internal/infrastructure/db/redis"
	"github.com/mentorconnect/mentorship-api/internal/infrastructure/storage"
	"github.com/mentorconnect/mentorship-api/internal/pkg/config"
	"github.com/mentorconnect/mentorship-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	if err := seedAdmin(ctx, db, cfg.Admin); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	blobs, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("blob store init failed")
	}

	tokenTTL := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	e := api.NewRouter(db, rdb, blobs, cfg.JWTSecret, tokenTTL, cfg.UploadDir, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func ensureIndexes(ctx context.Context, db *mongodriver.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewAssignmentRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewSessionRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewTodoRepository(db).EnsureIndexes(ctx)
}

// seedAdmin creates the bootstrap admin account when it does not exist yet.
// Skipped entirely when no admin password is configured.
func seedAdmin(ctx context.Context, db *mongodriver.Database, admin config.AdminConfig) error {
	if admin.Password == "" {
		return nil
	}

	users := mongodb.NewUserRepository(db)
	_, err := users.FindByNameAndRole(ctx, admin.Name, domain.RoleAdmin)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := credential.Hash(admin.Password)
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, &domain.User{
		Name:     admin.Name,
		Role:     domain.RoleAdmin,
		Password: hash,
	})
	return err
}
