// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/veridianlabs/veridian-go/internal/auth"
	"github.com/veridianlabs/veridian-go/internal/cache"
	"github.com/veridianlabs/veridian-go/internal/config"
	"github.com/veridianlabs/veridian-go/internal/content"
	"github.com/veridianlabs/veridian-go/internal/handler"
	"github.com/veridianlabs/veridian-go/internal/imaging"
	"github.com/veridianlabs/veridian-go/internal/logging"
	"github.com/veridianlabs/veridian-go/internal/middleware"
	"github.com/veridianlabs/veridian-go/internal/store"
	"github.com/veridianlabs/veridian-go/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Veridian Labs content service\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERIDIAN_AUTH_SECRET      Token signing key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERIDIAN_DB_PATH          SQLite database path (empty: serve sample data)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERIDIAN_SERVER_HOST      Server host (default: localhost)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERIDIAN_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERIDIAN_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERIDIAN_UPLOADS_DIR      Media upload directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERIDIAN_REDIS_URL        Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  VERIDIAN_SEED_ADMIN_PASSWORD  Password for the seeded admin account\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("veridian %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Expose build-time injected values through the version package
	version.Version = appVersion
	version.GitCommit = appGitCommit
	version.BuildTime = appBuildTime

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(textHandler))

	// Open the store when a database path is configured. Without one the
	// service runs read-only on its built-in sample datasets.
	var db *sql.DB
	var st *store.Store
	if cfg.StoreConfigured() {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}

		slog.Info("initializing database", "path", cfg.DBPath)
		db, err = store.NewDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				slog.Error("closing database", "error", err)
			}
		}()

		if err := store.Migrate(db); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}

		st = store.New(db)

		// Mirror warnings and errors into the events table
		slog.SetDefault(slog.New(logging.NewEventLogHandler(textHandler, st)))

		if cfg.SeedAdminPassword != "" {
			if err := store.EnsureAdmin(ctx, st, cfg.SeedAdminUsername, cfg.SeedAdminPassword); err != nil {
				return fmt.Errorf("seeding admin account: %w", err)
			}
		}
	} else {
		slog.Info("no database configured, serving sample data")
	}

	// Content cache: Redis when configured, in-memory otherwise
	cacheConfig := cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	}
	contentCache, err := cache.NewCache(cacheConfig)
	if err != nil {
		slog.Warn("redis cache unavailable, falling back to memory", "error", err)
		cacheConfig.RedisURL = ""
		contentCache, _ = cache.NewCache(cacheConfig)
	}
	defer func() {
		if err := contentCache.Close(); err != nil {
			slog.Error("closing cache", "error", err)
		}
	}()
	if cfg.UseRedisCache() {
		slog.Info("content cache initialized", "backend", "redis", "url", cfg.RedisURL)
	} else {
		slog.Info("content cache initialized", "backend", "memory")
	}

	library := content.NewLibrary(st, content.WithCache(contentCache, cacheConfig.DefaultTTL))

	// Auth resolver. The account source stays nil without a store so
	// every token resolves as unauthenticated.
	tokens := auth.NewTokens(cfg.AuthSecret)
	var accounts auth.AccountSource
	if st != nil {
		accounts = st
	}
	resolver := auth.NewResolver(tokens, accounts)

	protection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	defer protection.Close()

	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}
	processor := imaging.NewProcessor(cfg.UploadsDir)

	authHandler := handler.NewAuthHandler(st, tokens, protection,
		cfg.UserTokenTTL, cfg.AdminTokenTTL, !cfg.IsDevelopment())
	publicHandler := handler.NewPublicHandler(library)
	adminHandler := handler.NewAdminHandler(st, library, processor)
	healthHandler := handler.NewHealthHandler(db)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.NewGlobalRateLimiter(50, 100).Middleware())
	r.Use(middleware.WithAuth(resolver))

	registerRoutes(r, authHandler, publicHandler, adminHandler, healthHandler, protection)

	// Serve uploaded media files
	r.Get("/uploads/*", uploadsFileServer(cfg.UploadsDir))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func registerRoutes(r chi.Router, authHandler *handler.AuthHandler, publicHandler *handler.PublicHandler,
	adminHandler *handler.AdminHandler, healthHandler *handler.HealthHandler, protection *middleware.LoginProtection) {

	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Public content API
	r.Route("/api", func(r chi.Router) {
		r.Get("/jobs", publicHandler.ListJobs)
		r.Get("/jobs/{slug}", publicHandler.GetJob)
		r.Get("/blog", publicHandler.ListBlogPosts)
		r.Get("/blog/{slug}", publicHandler.GetBlogPost)
		r.Get("/services", publicHandler.ListServices)
		r.Get("/services/{slug}", publicHandler.GetService)
		r.Get("/ventures", publicHandler.ListVentures)
		r.Get("/ventures/{slug}", publicHandler.GetVenture)
		r.Get("/case-studies", publicHandler.ListCaseStudies)
		r.Get("/case-studies/{slug}", publicHandler.GetCaseStudy)
		r.Get("/team", publicHandler.ListTeamMembers)
		r.Get("/press", publicHandler.ListPressReleases)
		r.Get("/media", publicHandler.ListMediaAssets)

		// Authentication
		r.Group(func(r chi.Router) {
			r.Use(protection.Middleware())
			r.Post("/auth/login", authHandler.UserLogin)
			r.Post("/admin/login", authHandler.AdminLogin)
		})
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/me", authHandler.Me)

		// Admin API
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin())
			r.Get("/content/{collection}", adminHandler.ListDocuments)
			r.Post("/content/{collection}", adminHandler.CreateDocument)
			r.Get("/content/{collection}/{id}", adminHandler.GetDocument)
			r.Put("/content/{collection}/{id}", adminHandler.UpdateDocument)
			r.Delete("/content/{collection}/{id}", adminHandler.DeleteDocument)
			r.Get("/events", adminHandler.ListEvents)
			r.Post("/media", adminHandler.UploadMedia)
		})
	})
}

// uploadsFileServer serves files from the uploads directory with path
// containment checks against traversal.
func uploadsFileServer(uploadsDir string) http.HandlerFunc {
	absUploads, err := filepath.Abs(uploadsDir)
	if err != nil {
		absUploads = uploadsDir
	}

	return func(w http.ResponseWriter, r *http.Request) {
		rel := chi.URLParam(r, "*")
		if rel == "" || strings.Contains(rel, "..") {
			http.NotFound(w, r)
			return
		}

		filePath := filepath.Join(absUploads, filepath.FromSlash(rel))
		absFile, err := filepath.Abs(filePath)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		contained, err := filepath.Rel(absUploads, absFile)
		if err != nil || strings.HasPrefix(contained, "..") || filepath.IsAbs(contained) {
			http.NotFound(w, r)
			return
		}

		http.ServeFile(w, r, absFile)
	}
}
