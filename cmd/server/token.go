package main

import (
	"fmt"

	"jobswipe/internal/pkg/jwt"

	"github.com/spf13/cobra"
)

var (
	tokenRole    string
	tokenSubject string
	tokenName    string

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local testing",
		Long: "Mint an access token for local testing. For candidates --subject is the " +
			"candidate id, for employers it is the company id.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			svc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.Issuer, cfg.JWT.AccessExpiresIn)
			tok, err := svc.GenerateAccessToken(tokenRole, tokenSubject, tokenName)
			if err != nil {
				return fmt.Errorf("mint token for %s %q: %w", tokenRole, tokenSubject, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
)

func init() {
	tokenCmd.Flags().StringVar(&tokenRole, "role", jwt.RoleCandidate, "candidate or employer")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "candidate id or company id")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "display name carried in the token")
	_ = tokenCmd.MarkFlagRequired("subject")
}
