package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-score/internal/analyses"
	"resume-score/internal/documents"
	"resume-score/internal/engine"
	"resume-score/internal/profile"
	"resume-score/internal/shared/config"
	"resume-score/internal/shared/server"
	"resume-score/internal/shared/storage/db"
	"resume-score/internal/shared/storage/object"
	localstore "resume-score/internal/shared/storage/object/local"
	s3store "resume-score/internal/shared/storage/object/s3"
	"resume-score/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Engine *engine.Engine

	DocumentsRepo documents.Repo
	AnalysesRepo  analyses.Repo
	ProfileStore  *profile.Store

	DocumentsService *documents.Service
	AnalysesService  *analyses.Service

	DocumentsHandler *documents.Handler
	AnalysisHandler  *analyses.Handler
	ProfileHandler   *profile.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Engine: engine.New(nil, nil),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		DocumentHandler: app.DocumentsHandler,
		AnalysisHandler: app.AnalysisHandler,
		ProfileHandler:  app.ProfileHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("falling back to in-memory repositories", map[string]any{
				"component": "bootstrap",
				"reason":    "DATABASE_URL empty",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("falling back to in-memory repositories", map[string]any{
				"component": "bootstrap",
				"reason":    "database connect failed",
				"error":     err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var docRepo documents.Repo
	var analysisRepo analyses.Repo

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		analysisRepo = &analyses.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
	}

	docSvc := &documents.Service{
		Store: app.Store,
		Repo:  docRepo,
	}
	analysisSvc := &analyses.Service{
		Repo:    analysisRepo,
		DocRepo: docRepo,
		Store:   app.Store,
		Engine:  app.Engine,
	}
	profileStore := profile.NewStore()

	app.DocumentsRepo = docRepo
	app.AnalysesRepo = analysisRepo
	app.ProfileStore = profileStore
	app.DocumentsService = docSvc
	app.AnalysesService = analysisSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.AnalysisHandler = analyses.NewHandler(analysisSvc, docRepo)
	app.ProfileHandler = profile.NewHandler(profileStore, app.Engine)
}
