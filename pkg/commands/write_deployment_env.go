package commands

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/illumination-k/secretenv/pkg/config"
	"github.com/illumination-k/secretenv/pkg/env"
	"github.com/illumination-k/secretenv/pkg/ui"
)

// NewWriteDeploymentEnvCommand creates the full-dump command
func NewWriteDeploymentEnvCommand() *cobra.Command {
	var (
		flags          manifestFlags
		envOutput      string
		skipUnresolved bool
		excludeVars    []string
	)

	cmd := &cobra.Command{
		Use:   "write-deployment-env",
		Short: "Write every variable declared by the manifest",
		Long: `Write every env entry of the manifest as NAME=value, in manifest order.
Variables without a value are written as NAME= unless --skip-unresolved is set.

Examples:
  kubectl secretenv write-deployment-env
  kubectl secretenv write-deployment-env -f k8s/deployment.yml --env-output .env.dev
  kubectl secretenv write-deployment-env --exclude-var NODE_ENV --skip-unresolved`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWriteDeploymentEnv(cmd, &flags, envOutput, skipUnresolved, excludeVars)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&envOutput, "env-output", "", "Env file to write (default: .env)")
	cmd.Flags().BoolVar(&skipUnresolved, "skip-unresolved", false, "Omit variables that have no value")
	cmd.Flags().StringSliceVar(&excludeVars, "exclude-var", nil, "Variable names that are never written")

	return cmd
}

func runWriteDeploymentEnv(cmd *cobra.Command, flags *manifestFlags, envOutput string, skipUnresolved bool, excludeVars []string) error {
	result, globalConfig, err := loadVariables(cmd, flags)
	if err != nil {
		return err
	}

	output := config.CoalesceString(envOutput, globalConfig.Defaults.EnvOutput)
	exclude := lo.Uniq(append(append([]string{}, globalConfig.Defaults.ExcludeVars...), excludeVars...))

	written, err := env.WriteDeploymentEnv(output, result.Variables, env.WriteOptions{
		SkipUnresolved: skipUnresolved,
		Exclude:        exclude,
	})
	if err != nil {
		return err
	}

	ui.Success("Wrote %d variable(s) to %s", len(written.Written), output)
	warnUnresolved(written.Unresolved)

	return nil
}
