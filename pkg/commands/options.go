package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/illumination-k/secretenv/pkg/config"
	"github.com/illumination-k/secretenv/pkg/env"
	"github.com/illumination-k/secretenv/pkg/kubernetes"
	"github.com/illumination-k/secretenv/pkg/logging"
	"github.com/illumination-k/secretenv/pkg/manifest"
	"github.com/illumination-k/secretenv/pkg/resolver"
	"github.com/illumination-k/secretenv/pkg/ui"
	"github.com/illumination-k/secretenv/pkg/usecase"
)

// newSecretSource is replaced in tests
var newSecretSource = kubernetes.NewSecretSource

// manifestFlags are shared by every command that reads a manifest
type manifestFlags struct {
	deployment  string
	manifest    string
	patterns    []string
	exclude     []string
	gitignore   bool
	container   string
	deployEnv   string
	placeholder string
}

func (f *manifestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.deployment, "deployment", "", "Directory searched for the manifest (default: .travis)")
	cmd.Flags().StringVarP(&f.manifest, "manifest", "f", "", "Manifest file to read instead of searching --deployment")
	cmd.Flags().StringSliceVar(&f.patterns, "pattern", nil, "File name patterns for manifest discovery (default: *.yml)")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "Gitignore-style patterns skipped during discovery")
	cmd.Flags().BoolVar(&f.gitignore, "gitignore", false, "Also skip paths ignored by the deployment directory's .gitignore")
	cmd.Flags().StringVar(&f.container, "container", "", "Container whose env is read (default: first container)")
	cmd.Flags().StringVar(&f.deployEnv, "deploy-env", "", "Value substituted for the placeholder in secret names (default: dev)")
	cmd.Flags().StringVar(&f.placeholder, "placeholder", "", "Placeholder in secret names (default: $DEPLOY_ENV)")
}

// loadOptions merges flags over config defaults
func (f *manifestFlags) loadOptions(cmd *cobra.Command, defaults config.DefaultsConfig) usecase.LoadOptions {
	deployEnv := defaults.DeployEnv
	if cmd.Flags().Changed("deploy-env") {
		// an explicit empty value disables substitution
		deployEnv = f.deployEnv
	}

	return usecase.LoadOptions{
		Deployment: config.CoalesceString(f.deployment, defaults.Deployment),
		Manifest:   f.manifest,
		Locate: manifest.LocateOptions{
			Patterns:     config.CoalesceStringSlice(f.patterns, defaults.Manifest.Patterns),
			Exclude:      config.CoalesceStringSlice(f.exclude, defaults.Manifest.Exclude),
			UseGitignore: config.CoalesceBool(f.gitignore, defaults.Manifest.GitignoreEnabled(), cmd.Flags().Changed("gitignore")),
		},
		Extract: manifest.ExtractOptions{
			Container: config.CoalesceString(f.container, defaults.Manifest.Container),
		},
		DeployEnv:   deployEnv,
		Placeholder: config.CoalesceString(f.placeholder, defaults.Placeholder),
	}
}

func loadGlobalConfig(cmd *cobra.Command) (*config.GlobalConfig, error) {
	path, _ := cmd.Flags().GetString("config")

	store, err := config.OpenStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config store: %w", err)
	}

	globalConfig, err := store.LoadGlobalConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load global config: %w", err)
	}

	return globalConfig, nil
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(cmd.ErrOrStderr(), verbose)
}

func buildSecretSource(cmd *cobra.Command, k8s config.KubernetesConfig) (resolver.SecretSource, error) {
	flags := cmd.Flags()
	source, _ := flags.GetString("source")
	namespace, _ := flags.GetString("namespace")
	kubeContext, _ := flags.GetString("context")
	kubeconfig, _ := flags.GetString("kubeconfig")

	kind := kubernetes.SecretSourceKind(config.CoalesceString(source, k8s.Source))
	if !kind.Valid() {
		return nil, fmt.Errorf("invalid --source %q: must be kubectl, oc, or api", kind)
	}

	return newSecretSource(kind, kubernetes.Config{
		KubeconfigPath: config.CoalesceString(kubeconfig, k8s.Kubeconfig),
		Context:        config.CoalesceString(kubeContext, k8s.Context),
		Namespace:      config.CoalesceString(namespace, k8s.Namespace),
	})
}

// loadVariables runs locate, extract and resolve with flags layered over the config file
func loadVariables(cmd *cobra.Command, flags *manifestFlags) (*usecase.LoadResult, *config.GlobalConfig, error) {
	globalConfig, err := loadGlobalConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(cmd)

	source, err := buildSecretSource(cmd, globalConfig.Kubernetes)
	if err != nil {
		return nil, nil, err
	}

	opts := flags.loadOptions(cmd, globalConfig.Defaults)
	if opts.Manifest != "" {
		ui.Progress("Reading %s", opts.Manifest)
	} else {
		ui.Progress("Searching %s for a manifest", opts.Deployment)
	}

	result, err := usecase.LoadVariables(cmd.Context(), source, opts, logger)
	if err != nil {
		return nil, nil, err
	}

	if len(result.Report.Fetched) > 0 {
		ui.Success("Loaded %d secret(s) for %s", len(result.Report.Fetched), result.ManifestPath)
	}
	warnSuspiciousNames(result.Variables)

	return result, globalConfig, nil
}

func warnSuspiciousNames(vars []*env.Variable) {
	for _, name := range env.InvalidNames(vars) {
		ui.Warning("%s is not a valid shell variable name", name)
	}

	system := lo.FilterMap(vars, func(v *env.Variable, _ int) (string, bool) {
		return v.Name, env.IsSystemVar(v.Name)
	})
	if len(system) > 0 {
		ui.Warning("Manifest overrides system variables: %s", strings.Join(system, ", "))
	}
}

func warnUnresolved(names []string) {
	if len(names) == 0 {
		return
	}
	ui.Warning("No value for: %s", strings.Join(names, ", "))
}
