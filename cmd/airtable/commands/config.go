package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Keys shown and masked by the config commands.
var configKeys = []string{"token", "base", "endpoint", "output", "retry_max"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage CLI configuration stored in ~/.airtable/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := make(map[string]any, len(configKeys))

			for _, key := range configKeys {
				value := viper.GetString(key)
				if value == "" {
					continue
				}

				if key == "token" {
					value = maskToken(value)
				}

				settings[key] = value
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(settings)
			case OutputFormatYAML:
				return outputYAML(settings)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")

				for _, key := range configKeys {
					if value, ok := settings[key]; ok {
						_ = table.Append(key, fmt.Sprintf("%v", value))
					}
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set(args[0], args[1])

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Remove a configuration value and persist the change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set(args[0], "")

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", args[0])

			return nil
		},
	}
}

// maskToken hides all but the leading characters of a token.
func maskToken(token string) string {
	const visible = 6

	if len(token) <= visible {
		return "***"
	}

	return token[:visible] + "***"
}
