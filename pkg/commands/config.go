package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/illumination-k/secretenv/pkg/config"
	"github.com/illumination-k/secretenv/pkg/ui"
)

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the secretenv config file",
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigViewCommand())

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file populated with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")

			store, err := config.OpenStore(path)
			if err != nil {
				return fmt.Errorf("failed to initialize config store: %w", err)
			}

			if store.GlobalConfigExists() && !force {
				return fmt.Errorf("config file %s already exists. Use --force to overwrite it", store.GetGlobalConfigPath())
			}

			if err := store.SaveGlobalConfig(config.DefaultGlobalConfig()); err != nil {
				return err
			}

			ui.Success("Created %s", store.GetGlobalConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			globalConfig, err := loadGlobalConfig(cmd)
			if err != nil {
				return err
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			defer func() { _ = encoder.Close() }()

			if err := encoder.Encode(globalConfig); err != nil {
				return fmt.Errorf("failed to encode config to YAML: %w", err)
			}

			return nil
		},
	}
}
