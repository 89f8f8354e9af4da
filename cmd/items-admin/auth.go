package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto/enums"
)

func newLoginCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.LoginRequest{Username: username, Password: password}
			if err := dto.Validate(req); err != nil {
				return err
			}

			res, err := a.api.Login(cmd.Context(), req)
			if err != nil {
				return err
			}

			user := models.AuthenticatedUser{
				ID:       res.Identifier,
				Username: res.Username,
				Roles:    toRoles(res.Roles),
			}
			if err := a.store.Login(res.Token, user); err != nil {
				return err
			}

			printf(cmd, "Logged in as %s (roles: %s)\n", user.Username, joinRoles(user.Roles))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password")
	return cmd
}

func newSignupCmd(a *app) *cobra.Command {
	var username, password, email string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.SignupRequest{Username: username, Password: password, Email: email}
			if err := dto.Validate(req); err != nil {
				return err
			}

			res, err := a.api.Signup(cmd.Context(), req)
			if err != nil {
				return err
			}

			printf(cmd, "Account %s created.\n", res.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (min 8 characters)")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Logout(); err != nil {
				return err
			}
			printf(cmd, "Logged out.\n")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := a.store.Current()
			if !ok || !a.store.IsAuthenticated() {
				printf(cmd, "Not logged in.\n")
				return nil
			}
			printf(cmd, "%s (roles: %s)\n", user.Username, joinRoles(user.Roles))
			if a.store.TokenExpired() {
				printf(cmd, "Warning: stored token looks expired.\n")
			}
			return nil
		},
	}
}

// toRoles normalizes the backend's role strings; never returns nil
func toRoles(raw []string) []enums.RoleType {
	roles := make([]enums.RoleType, 0, len(raw))
	for _, r := range raw {
		if r != "" {
			roles = append(roles, enums.RoleType(r))
		}
	}
	return roles
}

func joinRoles(roles []enums.RoleType) string {
	if len(roles) == 0 {
		return "none"
	}
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
