package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/illumination-k/secretenv/pkg/config"
	"github.com/illumination-k/secretenv/pkg/env"
	"github.com/illumination-k/secretenv/pkg/ui"
)

// NewWriteFromExampleCommand creates the template-merge command
func NewWriteFromExampleCommand() *cobra.Command {
	var (
		flags      manifestFlags
		envExample string
		envOutput  string
	)

	cmd := &cobra.Command{
		Use:   "write-from-example",
		Short: "Fill an .env template with values from the manifest",
		Long: `Copy the env example file to the output file, replacing every KEY=... line whose
KEY is declared by the manifest and has a value. Comments and unknown keys are kept as-is.

Examples:
  kubectl secretenv write-from-example
  kubectl secretenv write-from-example --deployment deploy --deploy-env staging
  kubectl secretenv write-from-example --env-example .env.sample --env-output .env.local`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWriteFromExample(cmd, &flags, envExample, envOutput)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&envExample, "env-example", "", "Template env file (default: .env-example)")
	cmd.Flags().StringVar(&envOutput, "env-output", "", "Env file to write (default: .env)")

	return cmd
}

func runWriteFromExample(cmd *cobra.Command, flags *manifestFlags, envExample, envOutput string) error {
	globalConfig, err := loadGlobalConfig(cmd)
	if err != nil {
		return err
	}

	example := config.CoalesceString(envExample, globalConfig.Defaults.EnvExample)
	output := config.CoalesceString(envOutput, globalConfig.Defaults.EnvOutput)

	// Fail before talking to the cluster
	if _, err := os.Stat(example); err != nil {
		return fmt.Errorf("env example %s is not readable: %w", example, err)
	}

	result, _, err := loadVariables(cmd, flags)
	if err != nil {
		return err
	}

	written, err := env.WriteFromTemplate(example, output, result.Variables)
	if err != nil {
		return err
	}

	ui.Success("Wrote %d variable(s) to %s", len(written.Written), output)
	warnUnresolved(written.Unresolved)

	return nil
}
