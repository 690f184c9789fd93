package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Totarae/monuments/internal/config"
	"github.com/Totarae/monuments/internal/migrations"
	"github.com/Totarae/monuments/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back PostgreSQL schema migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Mode != config.ModeDatabase {
				return errors.New("migrations need a PostgreSQL DSN (--dsn or DATABASE_DSN); SQLite schemas are created on open")
			}
			if len(args) == 1 && args[0] == "down" {
				return migrations.Down(c.cfg.DatabaseDSN, c.logger)
			}
			return migrations.Up(c.cfg.DatabaseDSN, c.logger)
		},
	}
	return cmd
}

func (c *cli) createAdminCommand() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator or promote an existing user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("ADMIN_PASSWORD")
			}
			st, err := openStore(cmd.Context(), c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer st.Close()

			accounts := service.NewAccountService(st.Repos.Users, c.logger, nil, c.cfg.BcryptCost)
			user, created, err := accounts.EnsureAdmin(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			action := "promoted"
			if created {
				action = "created"
			}
			c.logger.Info("admin ready", zap.Int("user_id", user.ID), zap.String("action", action))
			fmt.Fprintf(cmd.OutOrStdout(), "admin %q %s (id %d)\n", user.Username, action, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "admin", "administrator username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "administrator password (or ADMIN_PASSWORD)")
	return cmd
}
