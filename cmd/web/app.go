package main

import (
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"securiwisetraining.co.uk/web/internal/catalog"
	"securiwisetraining.co.uk/web/internal/config"
	"securiwisetraining.co.uk/web/internal/coverage"
	"securiwisetraining.co.uk/web/internal/detail"
	"securiwisetraining.co.uk/web/internal/filter"
	"securiwisetraining.co.uk/web/internal/i18n"
	mw "securiwisetraining.co.uk/web/internal/middleware"
	"securiwisetraining.co.uk/web/internal/observability"
)

// app holds everything request handlers share. All of it is read-only once built.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	catalog  *catalog.Catalog
	match    filter.Matcher
	coverage *coverage.Checker
	i18n     *i18n.Bundle
	sessions *mw.Sessions
	metrics  *observability.Metrics
	tmpl     *template.Template
}

// newApp loads content, copy and templates. Any failure here stops startup.
func newApp(cfg *config.Config, logger *zap.Logger) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	match, err := filter.MatcherByName(cfg.TagMatch)
	if err != nil {
		return nil, err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	bundle, err := i18n.Load(cfg.LocalesDir, "en", []string{"en"})
	if err != nil {
		return nil, fmt.Errorf("i18n: %w", err)
	}

	a := &app{
		cfg:      cfg,
		log:      logger,
		catalog:  cat,
		match:    match,
		coverage: coverage.NewChecker(coverage.ParsePrefixes(cfg.CoveragePrefixes)...),
		i18n:     bundle,
		sessions: mw.NewSessions([]byte(cfg.SessionHashKey), []byte(cfg.SessionBlockKey), cfg.IsProd()),
		metrics:  observability.NewMetrics(),
	}
	a.sessions.CountFailures(a.metrics.SessionFailures)
	if a.sessions.Ephemeral() {
		logger.Warn("session: using ephemeral signing key; set " + config.EnvPrefix + "SESSION_HASH_KEY to keep sessions across restarts")
	}
	// dev mode reparses per request, but a broken template set should still fail fast
	tc, err := a.parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	a.tmpl = tc
	return a, nil
}

// loadCatalog reads catalog_file when set, the embedded catalog otherwise, and validates it
// against the detail table.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.CatalogFile != "" {
		cat, err = catalog.LoadFile(cfg.CatalogFile)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return nil, err
	}
	if err := cat.Validate(detail.Known); err != nil {
		return nil, err
	}
	return cat, nil
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(a.log))
	r.Use(mw.Recoverer)
	r.Use(mw.HTMX)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})
	r.Handle("/metrics", a.metrics.Handler())
	r.Handle("/assets/*", mw.Assets("/assets", filepath.Join(a.cfg.PublicDir, "assets")))

	r.Group(func(r chi.Router) {
		r.Use(a.sessions.Middleware)
		r.Use(mw.CSRF)
		r.Use(mw.ThemeFromCookie)

		r.Get("/", a.HomeHandler)
		r.Get("/courses", a.CoursesFrag)
		r.Get("/cpd", a.CPDFrag)
		r.Get("/details/{key}", a.DetailOpenHandler)
		r.Post("/details/close", a.DetailCloseHandler)
		r.Post("/theme", a.ThemeToggleHandler)
		r.Post("/enquiry", a.EnquiryHandler)
		r.Get("/coverage", a.CoverageHandler)
	})
	return r
}
