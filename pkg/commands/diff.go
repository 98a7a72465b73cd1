package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/illumination-k/secretenv/pkg/config"
	"github.com/illumination-k/secretenv/pkg/env"
	"github.com/illumination-k/secretenv/pkg/ui"
)

// ErrDrift is returned by diff --exit-code when the env file is out of date
var ErrDrift = errors.New("env file differs from the manifest")

// NewDiffCommand creates the diff command
func NewDiffCommand() *cobra.Command {
	var (
		flags     manifestFlags
		envOutput string
		exitCode  bool
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare an existing env file with the resolved variables",
		Long: `Resolve the manifest and report keys that are missing from, changed in, or
unknown to the existing env file. Values themselves are never printed.

Examples:
  kubectl secretenv diff
  kubectl secretenv diff --env-output .env.local --exit-code`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, &flags, envOutput, exitCode)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&envOutput, "env-output", "", "Env file to compare (default: .env)")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Fail when differences are found")

	return cmd
}

func runDiff(cmd *cobra.Command, flags *manifestFlags, envOutput string, exitCode bool) error {
	result, globalConfig, err := loadVariables(cmd, flags)
	if err != nil {
		return err
	}

	output := config.CoalesceString(envOutput, globalConfig.Defaults.EnvOutput)

	existing, err := env.ReadEnvFile(output)
	if err != nil {
		return err
	}

	drift := env.Diff(result.Variables, existing)
	if !drift.HasDrift() {
		ui.Success("%s is up to date", output)
		return nil
	}

	ui.Header("%s differs from %s", output, result.ManifestPath)
	for _, name := range drift.Missing {
		ui.Plain("  + %s", name)
	}
	for _, name := range drift.Changed {
		ui.Plain("  ~ %s", name)
	}
	for _, name := range drift.Extra {
		ui.Plain("  - %s", name)
	}

	if exitCode {
		return ErrDrift
	}

	return nil
}
