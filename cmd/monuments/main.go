package main

import (
	"fmt"
	"os"

	"github.com/Totarae/monuments/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const programName = "monuments"

// cli хранит конфигурацию и логгер, собранные в PersistentPreRunE.
type cli struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           programName,
		Short:         "National monuments registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig(cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger, err := newLogger(cfg.Debug)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			c.cfg, c.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		// без подкоманды запускаем сервер
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.serve(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.migrateCommand())
	root.AddCommand(c.createAdminCommand())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
