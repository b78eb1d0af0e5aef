package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"roster/internal/identity"
	"roster/pkg/domain"
)

// tokenCommand mints a bearer token signed with the configured key. Local
// development only; production tokens come from the identity provider.
func tokenCommand() *cobra.Command {
	var (
		userID string
		role   string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a development bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := commonRun()
			if err != nil {
				return err
			}
			parsedRole, err := domain.ParseRole(role)
			if err != nil {
				return err
			}
			id := domain.UserID(uuid.New())
			if userID != "" {
				if id, err = domain.ParseUserID(userID); err != nil {
					return fmt.Errorf("invalid --user: %w", err)
				}
			}
			jwt := identity.NewJWTService(cfg.Identity.SigningKey, cfg.Identity.Issuer, cfg.Identity.Audience)
			tok, err := jwt.GenerateToken(id, parsedRole, cfg.Identity.DevTTL)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id to embed (random when empty)")
	cmd.Flags().StringVar(&role, "role", "member", "role claim to embed")
	return cmd
}
