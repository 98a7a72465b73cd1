package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/illumination-k/secretenv/pkg/usecase"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	var (
		flags        manifestFlags
		outputFormat string
		showValues   bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved variables without writing a file",
		Long: `Print every variable declared by the manifest together with where its value comes from.
Secret values are masked unless --show-values is given.

Examples:
  kubectl secretenv show
  kubectl secretenv show -o yaml --deploy-env prod
  kubectl secretenv show --show-values`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, &flags, outputFormat, showValues)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, yaml, json")
	cmd.Flags().BoolVar(&showValues, "show-values", false, "Print decoded secret values")

	return cmd
}

func runShow(cmd *cobra.Command, flags *manifestFlags, outputFormat string, showValues bool) error {
	switch outputFormat {
	case "table", "yaml", "json":
	default:
		return fmt.Errorf("invalid output format %q: must be table, yaml, or json", outputFormat)
	}

	result, _, err := loadVariables(cmd, flags)
	if err != nil {
		return err
	}

	views := usecase.BuildViews(result.Variables, showValues)
	out := cmd.OutOrStdout()

	switch outputFormat {
	case "yaml":
		return usecase.WriteVariablesYAML(views, out)
	case "json":
		return usecase.WriteVariablesJSON(views, out)
	default:
		return usecase.WriteVariablesTable(views, out)
	}
}
