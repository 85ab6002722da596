// Package cmd provides the CLI commands for the dashboard.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dashboard/pkg/config"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Acme dashboard server",
	Long: `Acme dashboard: session authentication and request gating for the
admin dashboard.

Commands:
  serve          Run the application (login API, dashboard, edge gate)
  edge           Run only the edge gate in front of an upstream application
  hash-password  Print a bcrypt hash for provisioning a user record

Configuration is read from the environment. A .env file in the working
directory is loaded when present; --env-file loads additional files that
override it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if len(envFiles) == 0 {
			return nil
		}
		if err := config.LoadEnv(envFiles...); err != nil {
			return fmt.Errorf("load env files: %w", err)
		}
		return nil
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "additional .env files to load")
}
