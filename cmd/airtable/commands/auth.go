package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/airtable/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewAuthCommand creates the auth command.
func NewAuthCommand() *cobra.Command {
	var tokenFlag string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Store an API token",
		Long: `Store an Airtable personal access token in the config file.

The token is verified against the API before it is saved. When --token
is not given, the token is read from a hidden prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := tokenFlag

			if token == "" {
				fmt.Print("API token: ")

				tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				fmt.Println()

				token = strings.TrimSpace(string(tokenBytes))
			}

			if token == "" {
				return constants.ErrEmptyToken
			}

			// Verify the token before persisting it
			viper.Set("token", token)

			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := client.Bases().List(context.Background(), ""); err != nil {
				return fmt.Errorf("token verification failed: %w", err)
			}

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Println("Token verified and saved")

			return nil
		},
	}

	cmd.Flags().StringVar(&tokenFlag, "token", "", "token value (prompted when omitted)")

	return cmd
}

// saveConfig writes the current configuration to the config file,
// creating it with restrictive permissions when missing.
func saveConfig() error {
	path := viper.ConfigFileUsed()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		dir := filepath.Join(home, ".airtable")
		if err := os.MkdirAll(dir, constants.ConfigDirPerm); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		path = filepath.Join(dir, "config.yml")
	}

	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	if err := os.Chmod(path, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("setting config file permissions: %w", err)
	}

	return nil
}
