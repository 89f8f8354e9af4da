package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto/enums"
	"github.com/CloudsoftGithub/items-admin/internal/config"
	"github.com/CloudsoftGithub/items-admin/internal/gateway"
	"github.com/CloudsoftGithub/items-admin/internal/pkg/apperrors"
	"github.com/CloudsoftGithub/items-admin/internal/pkg/logger"
	"github.com/CloudsoftGithub/items-admin/internal/session"
)

// app bundles the wired dependencies every command uses
type app struct {
	cfg   *config.Config
	store *session.Store
	api   *gateway.Client
}

// requireAdmin gates mutating commands on the admin roles
func (a *app) requireAdmin() error {
	if !a.store.IsAuthenticated() {
		return apperrors.ErrNoSession
	}
	if a.store.TokenExpired() {
		logger.Warn().Msg("stored token looks expired; the backend may reject this request")
	}
	if !a.store.HasRole(enums.RoleAdmin) && !a.store.HasRole(enums.RoleSuperAdmin) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// Execute builds the command tree and runs it
func Execute() error {
	a := &app{}

	var configPath string
	var logLevel string

	root := &cobra.Command{
		Use:           "items-admin",
		Short:         "Administrative console for the ITEMS tertiary-education backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			logger.Configure(logger.Config{
				Level:  logger.LogLevel(cfg.Logging.Level),
				Pretty: cfg.Logging.Format != "json",
			})

			a.cfg = cfg
			a.store = session.NewStore(cfg.State.Dir)
			// Restore before any role-gated command runs so an existing
			// session is visible from the start.
			a.store.Restore()
			a.api = gateway.NewClient(cfg.API.BaseURL, cfg.RequestTimeout(), a.store)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		newLoginCmd(a),
		newSignupCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newFacultiesCmd(a),
		newDepartmentsCmd(a),
		newProgramsCmd(a),
		newCoursesCmd(a),
		newSessionsCmd(a),
		newCreditHoursCmd(a),
	)

	return root.Execute()
}

// printf writes to the command's stdout
func printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
