package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/illumination-k/secretenv/pkg/manifest"
	"github.com/illumination-k/secretenv/pkg/resolver"
)

type stubSource struct {
	secrets map[string]resolver.SecretData
	calls   []string
}

func (s *stubSource) FetchSecret(_ context.Context, name string) (resolver.SecretData, error) {
	s.calls = append(s.calls, name)
	data, ok := s.secrets[name]
	if !ok {
		return nil, errors.New("Error from server (NotFound)")
	}
	return data, nil
}

const deployment = `apiVersion: apps/v1
kind: Deployment
spec:
  template:
    spec:
      containers:
        - name: api
          env:
            - name: PORT
              value: "8080"
            - name: DB_PASSWORD
              valueFrom:
                secretKeyRef:
                  name: api-$DEPLOY_ENV
                  key: password
            - name: DB_USER
              valueFrom:
                secretKeyRef:
                  name: api-$DEPLOY_ENV
                  key: user
`

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadVariables(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "k8s/deployment.yml", deployment)

	source := &stubSource{secrets: map[string]resolver.SecretData{
		"api-dev": {"password": "YWJj"},
	}}

	result, err := LoadVariables(context.Background(), source, LoadOptions{
		Deployment: dir,
		DeployEnv:  "dev",
	}, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, path, result.ManifestPath)
	assert.Equal(t, "Deployment", result.Extraction.Kind)
	require.Len(t, result.Variables, 3)
	assert.Equal(t, "8080", result.Variables[0].Value)
	assert.Equal(t, `"abc"`, result.Variables[1].Value)
	assert.False(t, result.Variables[2].HasValue())
	assert.Equal(t, []string{"api-dev"}, source.calls)
	assert.Equal(t, []string{"DB_USER"}, result.Report.Unresolved)
}

func TestLoadVariables_ExplicitManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "deployment.yaml", deployment)

	source := &stubSource{secrets: map[string]resolver.SecretData{
		"api-prod": {"password": "cHJvZA==", "user": "YWRtaW4="},
	}}

	result, err := LoadVariables(context.Background(), source, LoadOptions{
		Deployment: filepath.Join(dir, "does-not-exist"),
		Manifest:   path,
		DeployEnv:  "prod",
	}, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, `"prod"`, result.Variables[1].Value)
	assert.Equal(t, `"admin"`, result.Variables[2].Value)
	assert.Empty(t, result.Report.Unresolved)
}

func TestLoadVariables_Errors(t *testing.T) {
	t.Run("no manifest", func(t *testing.T) {
		_, err := LoadVariables(context.Background(), &stubSource{}, LoadOptions{Deployment: t.TempDir()}, zerolog.Nop())
		assert.ErrorIs(t, err, manifest.ErrNotFound)
	})

	t.Run("unsupported shape", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "service.yml", "kind: Service\nspec:\n  ports:\n    - port: 80\n")

		_, err := LoadVariables(context.Background(), &stubSource{}, LoadOptions{Deployment: dir}, zerolog.Nop())
		assert.ErrorIs(t, err, manifest.ErrMissingField)
	})

	t.Run("secret fetch failure", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "deployment.yml", deployment)

		_, err := LoadVariables(context.Background(), &stubSource{}, LoadOptions{Deployment: dir, DeployEnv: "dev"}, zerolog.Nop())

		var fetchErr *resolver.SecretFetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, "api-dev", fetchErr.Name)
	})
}
