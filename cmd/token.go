package main

import (
	"fmt"

	"github.com/jekabolt/grbpwr-dashboard/config"
	"github.com/jekabolt/grbpwr-dashboard/internal/apisrv/auth"
	"github.com/spf13/cobra"
)

var (
	tokenSubject string

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Mint an admin token for the dashboard API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("cannot load a config: %w", err)
			}
			a, err := auth.New(&cfg.Auth)
			if err != nil {
				return err
			}
			tok, err := a.IssueToken(tokenSubject)
			if err != nil {
				return fmt.Errorf("can't issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
)

func init() {
	tokenCmd.Flags().StringVarP(&tokenSubject, "subject", "s", "admin", "token subject recorded in request logs")
}
