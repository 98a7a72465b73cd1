package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGlobalConfig(t *testing.T) {
	config := DefaultGlobalConfig()

	assert.NotNil(t, config)
	assert.Equal(t, ".travis", config.Defaults.Deployment)
	assert.Equal(t, ".env-example", config.Defaults.EnvExample)
	assert.Equal(t, ".env", config.Defaults.EnvOutput)
	assert.Equal(t, "dev", config.Defaults.DeployEnv)
	assert.Equal(t, "$DEPLOY_ENV", config.Defaults.Placeholder)
	assert.Equal(t, []string{"*.yml"}, config.Defaults.Manifest.Patterns)
	assert.False(t, config.Defaults.Manifest.GitignoreEnabled())
	assert.Equal(t, "kubectl", config.Kubernetes.Source)
}

func TestGlobalConfig_Merge(t *testing.T) {
	base := DefaultGlobalConfig()
	useGitignore := true

	override := &GlobalConfig{
		Defaults: DefaultsConfig{
			Deployment:  "deploy/k8s",
			EnvExample:  "env.template",
			EnvOutput:   ".env.local",
			DeployEnv:   "staging",
			Placeholder: "{{ENV}}",
			Manifest: ManifestConfig{
				Patterns:     []string{"*.yaml"},
				Exclude:      []string{"archive/"},
				UseGitignore: &useGitignore,
				Container:    "api",
			},
		},
		Kubernetes: KubernetesConfig{
			Source:     "oc",
			Namespace:  "apps",
			Context:    "staging",
			Kubeconfig: "~/.kube/staging",
		},
	}

	base.Merge(override)

	assert.Equal(t, "deploy/k8s", base.Defaults.Deployment)
	assert.Equal(t, "env.template", base.Defaults.EnvExample)
	assert.Equal(t, ".env.local", base.Defaults.EnvOutput)
	assert.Equal(t, "staging", base.Defaults.DeployEnv)
	assert.Equal(t, "{{ENV}}", base.Defaults.Placeholder)
	assert.Equal(t, []string{"*.yaml"}, base.Defaults.Manifest.Patterns)
	assert.Equal(t, []string{"archive/"}, base.Defaults.Manifest.Exclude)
	assert.True(t, base.Defaults.Manifest.GitignoreEnabled())
	assert.Equal(t, "api", base.Defaults.Manifest.Container)
	assert.Equal(t, "oc", base.Kubernetes.Source)
	assert.Equal(t, "apps", base.Kubernetes.Namespace)
	assert.Equal(t, "staging", base.Kubernetes.Context)
	assert.Equal(t, "~/.kube/staging", base.Kubernetes.Kubeconfig)
}

func TestGlobalConfig_MergePartial(t *testing.T) {
	base := DefaultGlobalConfig()

	// Override only some fields
	override := &GlobalConfig{
		Defaults: DefaultsConfig{
			DeployEnv: "prod",
		},
	}

	base.Merge(override)

	assert.Equal(t, "prod", base.Defaults.DeployEnv)
	assert.Equal(t, ".travis", base.Defaults.Deployment)
	assert.Equal(t, ".env", base.Defaults.EnvOutput)
	assert.Equal(t, "kubectl", base.Kubernetes.Source)
}

func TestGlobalConfig_MergeExcludeVarsAppends(t *testing.T) {
	base := DefaultGlobalConfig()
	base.Defaults.ExcludeVars = []string{"PATH"}

	base.Merge(&GlobalConfig{Defaults: DefaultsConfig{ExcludeVars: []string{"HOME"}}})

	assert.Equal(t, []string{"PATH", "HOME"}, base.Defaults.ExcludeVars)
}

func TestGlobalConfig_MergeEmpty(t *testing.T) {
	base := DefaultGlobalConfig()
	expected := DefaultGlobalConfig()

	base.Merge(&GlobalConfig{})

	assert.Equal(t, expected, base)
}
