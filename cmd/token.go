package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/autocare-tools/acfetch/internal/config"
	"github.com/autocare-tools/acfetch/internal/oauth"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type grantClient interface {
	PasswordGrant(ctx context.Context) (*oauth.Token, error)
}

var newGrantClient = func(cfg *config.Config) grantClient {
	return oauth.NewClient(oauth.Options{
		IdentityURL:           cfg.IdentityURL,
		ClientID:              cfg.ClientID,
		ClientSecret:          cfg.ClientSecret,
		Username:              cfg.Username,
		Password:              cfg.Password,
		Timeout:               cfg.HTTPTimeout,
		InsecureSkipTLSVerify: cfg.InsecureSkipTLSVerify,
	})
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the stored bearer token",
}

var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored token's status",
	RunE:  runTokenShow,
}

var tokenAcquireCmd = &cobra.Command{
	Use:   "acquire",
	Short: "Force a fresh password-grant exchange and store the result",
	RunE:  runTokenAcquire,
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored token",
	RunE:  runTokenClear,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenShowCmd)
	tokenCmd.AddCommand(tokenAcquireCmd)
	tokenCmd.AddCommand(tokenClearCmd)
}

func runTokenShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	token, err := oauth.NewStore(cfg.TokenFile()).Load()
	if err != nil {
		return err
	}
	if token == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No token stored.")
		return nil
	}

	status := "expired"
	if token.Valid() {
		status = "valid"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\nExpires: %s\n",
		status, token.ExpirationTime.Format(time.RFC3339))
	return nil
}

func runTokenAcquire(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.Logger = config.InitLogger(cfg.LogLevel)

	token, err := newGrantClient(cfg).PasswordGrant(cmd.Context())
	if err != nil {
		return fmt.Errorf("acquire token: %w", err)
	}
	if err := oauth.NewStore(cfg.TokenFile()).Save(token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "New token saved. Expires: %s\n",
		token.ExpirationTime.Format(time.RFC3339))
	return nil
}

func runTokenClear(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := oauth.NewStore(cfg.TokenFile()).Clear(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Token cleared.")
	return nil
}

// ensureToken reuses the stored token when still valid, otherwise runs a
// fresh password grant and persists the result.
func ensureToken(ctx context.Context, cfg *config.Config) (*oauth.Token, error) {
	store := oauth.NewStore(cfg.TokenFile())

	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	if token.Valid() {
		log.Debug().Time("expires_at", token.ExpirationTime).Msg("reusing stored token")
		return token, nil
	}

	fresh, err := newGrantClient(cfg).PasswordGrant(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire token: %w", err)
	}
	if err := store.Save(fresh); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}

	log.Info().Time("expires_at", fresh.ExpirationTime).Msg("new token acquired")
	return fresh, nil
}
