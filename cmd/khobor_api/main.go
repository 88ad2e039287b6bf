// Package main Khobor API
// @title Khobor API
// @version 1.0
// @description A bilingual news backend with cross-type search and typeahead suggestions
// @contact.name API Support
// @contact.email support@khoborhub.com
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/khoborhub/khobor/docs"
	"github.com/khoborhub/khobor/internal/auth"
	"github.com/khoborhub/khobor/internal/router"
	"github.com/khoborhub/khobor/internal/server"
	"github.com/khoborhub/khobor/internal/storage/pg"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	appCfg, err := LoadAppConfig()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	pool, err := pg.NewConnectionPool(context.Background(), pg.PoolConfig{ConnStr: appCfg.DatabaseURL})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	s := server.New(sCfg, pg.NewHealthChecker(pool)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Khobor API is running")
	})

	issuer := auth.NewTokenIssuer(appCfg.JWTSecret, appCfg.TokenTTL)

	router.NewSearchRouter(s.Echo, pg.NewSearcher(pool), pg.NewSuggester(pool)).Bind()
	router.NewAuthRouter(s.Echo, pg.NewUserStore(pool), issuer).Bind()
	router.NewArticleRouter(s.Echo, pg.NewArticleStore(pool), issuer).Bind()
	router.NewTaxonomyRouter(s.Echo, pg.NewCategoryStore(pool), pg.NewTagStore(pool), issuer).Bind()
	router.NewCommentRouter(s.Echo, pg.NewCommentStore(pool), issuer).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
