package config

// GlobalConfig represents global configuration for secretenv
type GlobalConfig struct {
	Defaults   DefaultsConfig   `yaml:"defaults"`
	Kubernetes KubernetesConfig `yaml:"kubernetes,omitempty"`
}

// DefaultsConfig holds default values for the write commands
type DefaultsConfig struct {
	// Deployment is the directory searched for a manifest
	Deployment string `yaml:"deployment"`
	EnvExample string `yaml:"envExample"`
	EnvOutput  string `yaml:"envOutput"`

	// DeployEnv replaces Placeholder in secret names
	DeployEnv   string `yaml:"deployEnv"`
	Placeholder string `yaml:"placeholder"`

	Manifest ManifestConfig `yaml:"manifest,omitempty"`

	// ExcludeVars are never written by write-deployment-env
	ExcludeVars []string `yaml:"excludeVars,omitempty"`
}

// ManifestConfig controls manifest discovery and extraction
type ManifestConfig struct {
	Patterns     []string `yaml:"patterns,omitempty"`
	Exclude      []string `yaml:"exclude,omitempty"`
	UseGitignore *bool    `yaml:"useGitignore,omitempty"`
	Container    string   `yaml:"container,omitempty"`
}

// KubernetesConfig selects how and where secrets are read
type KubernetesConfig struct {
	// Source is kubectl, oc, or api
	Source     string `yaml:"source,omitempty"`
	Namespace  string `yaml:"namespace,omitempty"`
	Context    string `yaml:"context,omitempty"`
	Kubeconfig string `yaml:"kubeconfig,omitempty"`
}

// DefaultGlobalConfig returns a GlobalConfig with sensible defaults
func DefaultGlobalConfig() *GlobalConfig {
	useGitignore := false
	return &GlobalConfig{
		Defaults: DefaultsConfig{
			Deployment:  ".travis",
			EnvExample:  ".env-example",
			EnvOutput:   ".env",
			DeployEnv:   "dev",
			Placeholder: "$DEPLOY_ENV",
			Manifest: ManifestConfig{
				Patterns:     []string{"*.yml"},
				UseGitignore: &useGitignore,
			},
		},
		Kubernetes: KubernetesConfig{
			Source: "kubectl",
		},
	}
}

// Merge merges this config with another, with the other taking precedence
func (g *GlobalConfig) Merge(other *GlobalConfig) {
	if other.Defaults.Deployment != "" {
		g.Defaults.Deployment = other.Defaults.Deployment
	}
	if other.Defaults.EnvExample != "" {
		g.Defaults.EnvExample = other.Defaults.EnvExample
	}
	if other.Defaults.EnvOutput != "" {
		g.Defaults.EnvOutput = other.Defaults.EnvOutput
	}
	if other.Defaults.DeployEnv != "" {
		g.Defaults.DeployEnv = other.Defaults.DeployEnv
	}
	if other.Defaults.Placeholder != "" {
		g.Defaults.Placeholder = other.Defaults.Placeholder
	}
	// Merge manifest config
	if len(other.Defaults.Manifest.Patterns) > 0 {
		g.Defaults.Manifest.Patterns = other.Defaults.Manifest.Patterns
	}
	if len(other.Defaults.Manifest.Exclude) > 0 {
		g.Defaults.Manifest.Exclude = other.Defaults.Manifest.Exclude
	}
	// UseGitignore is a *bool, only merge if explicitly set (non-nil)
	if other.Defaults.Manifest.UseGitignore != nil {
		g.Defaults.Manifest.UseGitignore = other.Defaults.Manifest.UseGitignore
	}
	if other.Defaults.Manifest.Container != "" {
		g.Defaults.Manifest.Container = other.Defaults.Manifest.Container
	}
	if len(other.Defaults.ExcludeVars) > 0 {
		// Append to existing exclusions rather than replacing
		g.Defaults.ExcludeVars = append(g.Defaults.ExcludeVars, other.Defaults.ExcludeVars...)
	}
	// Merge kubernetes config
	if other.Kubernetes.Source != "" {
		g.Kubernetes.Source = other.Kubernetes.Source
	}
	if other.Kubernetes.Namespace != "" {
		g.Kubernetes.Namespace = other.Kubernetes.Namespace
	}
	if other.Kubernetes.Context != "" {
		g.Kubernetes.Context = other.Kubernetes.Context
	}
	if other.Kubernetes.Kubeconfig != "" {
		g.Kubernetes.Kubeconfig = other.Kubernetes.Kubeconfig
	}
}

// GitignoreEnabled reports whether manifest discovery honors .gitignore
func (m ManifestConfig) GitignoreEnabled() bool {
	return m.UseGitignore != nil && *m.UseGitignore
}
