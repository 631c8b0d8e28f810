package setup

import (
	"github.com/nousrire/backend/internal/config"
	"github.com/nousrire/backend/internal/handler"
	"github.com/nousrire/backend/internal/mailer"
	"github.com/nousrire/backend/internal/markdown"
	"github.com/nousrire/backend/internal/middleware"
	"github.com/nousrire/backend/internal/service"
	"github.com/nousrire/backend/internal/storage/fs"
	"github.com/nousrire/backend/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Storage *pg.Storage
	Media   *fs.Storage
	Handler *handler.Handler
	Session *middleware.Session
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	media, err := fs.New(cfg.Public.MediaRoot, cfg.Public.BaseURL+"/media")
	if err != nil {
		return nil, err
	}

	mail := mailer.New(cfg.Private.ResendAPIKey, cfg.Private.MailFrom)
	session := middleware.NewSession(cfg.Public.SecureCookies)

	pipeline := service.NewImagePipeline(media)
	auth := service.NewAuth(cfg.Private.AdminEmail, cfg.Private.AdminPassword)
	news := service.NewNews(storage, pipeline)
	events := service.NewEvents(storage, nil)
	volunteers := service.NewVolunteers(storage)
	submission := service.NewSubmission(storage, storage, mail, cfg.Private.OperatorEmail, nil)

	h := handler.New(auth, news, events, volunteers, submission, session, markdown.New(), storage)

	return &Dependencies{
		Config:  cfg,
		Storage: storage,
		Media:   media,
		Handler: h,
		Session: session,
	}, nil
}
