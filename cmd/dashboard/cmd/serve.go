package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dashboard/pkg/config"
	"github.com/dmitrymomot/dashboard/pkg/httpserver"
	"github.com/dmitrymomot/dashboard/pkg/logger"
	"github.com/dmitrymomot/dashboard/pkg/mongo"
	"github.com/dmitrymomot/dashboard/pkg/userstore"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard application",
	Long: `Run the dashboard application: login and logout API, login page,
dashboard pages and the edge gate in front of them.

Required environment:
  MONGODB_URL   connection string of the credential database
  AUTH_SECRET   token signing secret (mandatory in production)`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	var mongoCfg mongo.Config
	if err := config.Load(&mongoCfg); err != nil {
		return err
	}
	var storeCfg userstore.Config
	if err := config.Load(&storeCfg); err != nil {
		return err
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	db, err := mongo.NewWithDatabase(ctx, mongoCfg)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(dctx); err != nil {
			log.Error("disconnect credential database", logger.Error(err))
		}
	}()

	store, err := userstore.New(db, storeCfg)
	if err != nil {
		return err
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, err := newAppRouter(deps{
		cfg:      cfg,
		log:      log,
		store:    store,
		registry: registry,
		checks:   []httpserver.CheckFunc{mongo.Healthcheck(db.Client())},
	})
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr string) {
			log.Info("dashboard listening", logger.Event("server.started"), slogAddr(addr))
		}),
	)
	return srv.Run(ctx, handler)
}
