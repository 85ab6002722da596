package cmd

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dashboard/pkg/config"
	"github.com/dmitrymomot/dashboard/pkg/httpserver"
	"github.com/dmitrymomot/dashboard/pkg/logger"
)

type edgeConfig struct {
	Upstream string `env:"EDGE_UPSTREAM_URL" validate:"omitempty,url"`
}

var upstreamFlag string

var edgeCmd = &cobra.Command{
	Use:   "edge",
	Short: "Run the edge gate as a reverse proxy",
	Long: `Run only the edge gate. Requests for protected paths without a valid
session token are redirected to the login page; everything else is proxied
unchanged to the upstream application.

Example:
  dashboard edge --upstream http://127.0.0.1:3000`,
	Args: cobra.NoArgs,
	RunE: runEdge,
}

func init() {
	edgeCmd.Flags().StringVar(&upstreamFlag, "upstream", "", "upstream application URL (overrides EDGE_UPSTREAM_URL)")
	rootCmd.AddCommand(edgeCmd)
}

func runEdge(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	var ecfg edgeConfig
	if err := config.Load(&ecfg); err != nil {
		return err
	}

	upstream, err := resolveUpstream(upstreamFlag, ecfg.Upstream)
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	handler, err := newEdgeRouter(deps{
		cfg:      cfg,
		log:      log,
		registry: prometheus.NewRegistry(),
	}, upstream)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr string) {
			log.Info("edge listening", logger.Event("server.started"), slogAddr(addr), slog.String("upstream", upstream.String()))
		}),
	)
	return srv.Run(cmd.Context(), handler)
}

// resolveUpstream prefers the flag over the environment value.
func resolveUpstream(flag, env string) (*url.URL, error) {
	raw := flag
	if raw == "" {
		raw = env
	}
	if raw == "" {
		return nil, fmt.Errorf("%w: upstream URL required (--upstream or EDGE_UPSTREAM_URL)", config.ErrInvalidConfig)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid upstream URL %q", config.ErrInvalidConfig, raw)
	}
	return u, nil
}

func slogAddr(addr string) slog.Attr {
	return slog.String("addr", addr)
}
