package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"log-analyzer/config"
	_ "log-analyzer/docs" // generated by swag init -g cmd/main.go
	"log-analyzer/internal/controller"
	"log-analyzer/internal/filestate"
	"log-analyzer/internal/scheduler"
	"log-analyzer/internal/service"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the configured log sources over HTTP",
		Long: `Serve search, count and export for the files listed in LOG_SOURCES.
When EXPORT_SCHEDULE is set, changed sources are also re-exported on that
schedule.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(a.cfg)
		},
	}
}

func newServerApp(cfg *config.Config, opts ...fx.Option) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		fx.Provide(
			NewGinEngine,
			NewFileStateManager,
			service.NewParserFactory,
			service.NewLogQueryService,
			service.NewExportService,
			controller.NewLogController,
		),
		fx.Invoke(RegisterAPIRoutes, RegisterScheduler),
		fx.Options(opts...),
	)
}

func runServer(cfg *config.Config) error {
	app := newServerApp(cfg)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	<-app.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
		return err
	}
	return nil
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func NewFileStateManager(cfg *config.Config) filestate.Manager {
	return filestate.NewManager(cfg.FileState.FilePath)
}

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	logController *controller.LogController,
) {
	controller.RegisterLogRoutes(router, logController)
	if len(cfg.Export.Sources) == 0 {
		log.Warn().Msg("LOG_SOURCES is empty, every API request will be rejected")
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Starting HTTP server on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}

func RegisterScheduler(lc fx.Lifecycle, cfg *config.Config, exportSvc service.ExportService) error {
	_, err := scheduler.NewScheduler(lc, cfg, exportSvc)
	return err
}
