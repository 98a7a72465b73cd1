package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/illumination-k/secretenv/internal/version"
	"github.com/illumination-k/secretenv/pkg/ui"
)

// NewRootCommand creates the root command for kubectl-secretenv
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kubectl-secretenv",
		Short: "Build local .env files from Kubernetes manifests and secrets",
		Long: `kubectl-secretenv is a kubectl plugin that reads the env section of a deployment
manifest, resolves secretKeyRef values from the cluster, and writes a local .env file.

Each referenced secret is fetched once. Values are base64-decoded and quoted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.Output = cmd.OutOrStdout()
		},
	}

	// Global flags
	cmd.PersistentFlags().StringP("namespace", "n", "", "Kubernetes namespace")
	cmd.PersistentFlags().String("kubeconfig", "", "Path to kubeconfig file")
	cmd.PersistentFlags().String("context", "", "Kubeconfig context to use")
	cmd.PersistentFlags().String("source", "", "How secrets are read: kubectl, oc, or api (default: kubectl)")
	cmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.secretenv/config.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(NewWriteFromExampleCommand())
	cmd.AddCommand(NewWriteDeploymentEnvCommand())
	cmd.AddCommand(NewShowCommand())
	cmd.AddCommand(NewDiffCommand())
	cmd.AddCommand(NewConfigCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "kubectl-secretenv version %s\n", version.Version)
		},
	}
}
