package main

import (
	"fmt"

	"handoff/config"
	"handoff/internal/client"
	"handoff/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var tokenUser string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development access token from the server config",
	Long: `Signs an access token with secretKey.access from config/config.yaml, for local
development against a server sharing that config. Print it into HANDOFF_TOKEN:

  export HANDOFF_TOKEN=$(handoffctl token --user 9b1e...)`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "User ID to sign for; a random one when empty")
}

func runToken(cmd *cobra.Command, _ []string) error {
	userID := uuid.New()
	if tokenUser != "" {
		var err error
		if userID, err = uuid.Parse(tokenUser); err != nil {
			return errors.Wrap(err, "--user")
		}
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	signed, err := tokens.GenerateAccessToken(userID)
	if err != nil {
		return err
	}
	logger.Debug("Minted access token", "user_id", userID)
	fmt.Fprintln(cmd.OutOrStdout(), signed)

	return nil
}

func userFromToken() (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, errors.New("an access token is required: pass --token or set HANDOFF_TOKEN")
	}

	return client.UserID(token)
}
