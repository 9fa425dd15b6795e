package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/ukpkickball/roster/internal/config"
	"github.com/ukpkickball/roster/internal/infrastructure/blob"
	"github.com/ukpkickball/roster/internal/infrastructure/repository/postgres"
	"github.com/ukpkickball/roster/internal/interfaces/httpapi"
	idgen "github.com/ukpkickball/roster/internal/platform/id"
	"github.com/ukpkickball/roster/internal/platform/logging"
	"github.com/ukpkickball/roster/internal/usecase"
)

// NewHTTPServer wires the database, repositories, services, and HTTP router.
// The returned cleanup closes the database pool.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	logoStore, err := newLogoStore(ctx, cfg)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("build logo store: %w", err)
	}

	rosterRepo := postgres.NewRosterRepository(db)
	gameRepo := postgres.NewGameRepository(db)
	availabilityRepo := postgres.NewAvailabilityRepository(db)
	lineupRepo := postgres.NewLineupRepository(db)
	publishRepo := postgres.NewPublishRepository(db)

	rosterSvc := usecase.NewRosterService(rosterRepo)
	gameSvc := usecase.NewGameService(
		gameRepo,
		logoStore,
		idgen.NewRandomGenerator(),
		cfg.GameWeekday,
		cfg.DefaultTeamName,
		logger,
	)
	availabilitySvc := usecase.NewAvailabilityService(gameRepo, rosterRepo, availabilityRepo)
	lineupSvc := usecase.NewLineupService(gameRepo, rosterRepo, availabilityRepo, lineupRepo)
	publishSvc := usecase.NewPublishService(gameRepo, rosterRepo, availabilityRepo, lineupRepo, publishRepo, logger)

	handler := httpapi.NewHandler(rosterSvc, gameSvc, availabilitySvc, lineupSvc, publishSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.OperatorToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, db.Close, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", cfg.DBURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func newLogoStore(ctx context.Context, cfg config.Config) (usecase.LogoStore, error) {
	switch cfg.LogoStore {
	case config.LogoStoreS3:
		return blob.NewS3Store(ctx, blob.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			KeyPrefix:       cfg.S3KeyPrefix,
		})
	default:
		return blob.NewFilesystemStore(cfg.LogoDir)
	}
}
