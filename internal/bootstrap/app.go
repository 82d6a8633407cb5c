package bootstrap

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"

	"playbook-backend/internal/playbooks"
	"playbook-backend/internal/render"
	"playbook-backend/internal/shared/config"
	"playbook-backend/internal/shared/server"
	"playbook-backend/internal/shared/server/middleware"
	"playbook-backend/internal/shared/storage/object"
	localstore "playbook-backend/internal/shared/storage/object/local"
	s3store "playbook-backend/internal/shared/storage/object/s3"
	"playbook-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Store           object.ObjectStore
	Reference       *render.Reference
	PlaybookService *playbooks.Service
	PlaybookHandler *playbooks.Handler
}

// Build prepares dependencies and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	ref, err := buildReference(cfg)
	if err != nil {
		return nil, err
	}

	svc := &playbooks.Service{Store: store, Reference: ref}
	handler := playbooks.NewHandler(svc, cfg.MaxUploadBytes)

	app := &App{
		Config:          cfg,
		Store:           store,
		Reference:       ref,
		PlaybookService: svc,
		PlaybookHandler: handler,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		PlaybookHandler: handler,
		Limiter:         middleware.NewRateLimiter(nil),
	})
	return app, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, eris.Wrap(err, "bootstrap: s3 store")
		}
		return store, nil
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildReference(cfg config.Config) (*render.Reference, error) {
	path := strings.TrimSpace(cfg.ReferenceDocPath)
	if path == "" {
		telemetry.Info("bootstrap.reference", map[string]any{"configured": false})
		return nil, nil
	}
	ref, err := render.LoadReference(path)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.reference_unavailable", map[string]any{"path": path, "error": err})
			return nil, nil
		}
		return nil, eris.Wrap(err, "bootstrap: reference document")
	}
	telemetry.Info("bootstrap.reference", map[string]any{"configured": true, "path": path})
	return ref, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
