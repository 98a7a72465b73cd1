package kubernetes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/illumination-k/secretenv/pkg/resolver"
)

// ErrInvalidSecretJSON is returned when the cluster CLI does not print a secret as JSON.
// This is almost always a login or RBAC problem: the CLI prints an error instead.
var ErrInvalidSecretJSON = errors.New("cluster CLI did not return secret JSON")

// secretJSON is the part of `get secret -o json` output that is read
type secretJSON struct {
	Data map[string]string `json:"data"`
}

// CLISecretSource reads secrets by running `<cli> get secret NAME -o json`
type CLISecretSource struct {
	executor CommandExecutor
	config   Config
}

// NewCLISecretSource creates a SecretSource backed by a cluster CLI
func NewCLISecretSource(executor CommandExecutor, cfg Config) *CLISecretSource {
	return &CLISecretSource{executor: executor, config: cfg}
}

// FetchSecret implements resolver.SecretSource
func (s *CLISecretSource) FetchSecret(ctx context.Context, name string) (resolver.SecretData, error) {
	stdout, stderr, runErr := s.executor.Run(ctx, s.args(name))
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	var secret secretJSON
	if err := json.Unmarshal([]byte(stdout), &secret); err != nil {
		detail := strings.TrimSpace(stderr)
		if detail == "" && runErr != nil {
			detail = runErr.Error()
		}
		if detail != "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSecretJSON, detail)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecretJSON, err)
	}

	if secret.Data == nil {
		return resolver.SecretData{}, nil
	}

	return secret.Data, nil
}

func (s *CLISecretSource) args(name string) []string {
	args := []string{"get", "secret", name, "-o", "json"}

	if s.config.Namespace != "" {
		args = append(args, "--namespace", s.config.Namespace)
	}
	if s.config.Context != "" {
		args = append(args, "--context", s.config.Context)
	}
	if s.config.KubeconfigPath != "" {
		args = append(args, "--kubeconfig", s.config.KubeconfigPath)
	}

	return args
}
