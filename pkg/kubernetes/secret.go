package kubernetes

import (
	"context"
	"encoding/base64"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/illumination-k/secretenv/pkg/resolver"
)

// GetSecretData reads a secret and returns its data base64-encoded, matching the
// shape `kubectl get secret -o json` prints
func (c *Client) GetSecretData(ctx context.Context, name, namespace string) (resolver.SecretData, error) {
	secret, err := c.clientset.CoreV1().Secrets(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		switch {
		case apierrors.IsNotFound(err):
			return nil, fmt.Errorf("secret %s/%s not found: %w", namespace, name, err)
		case apierrors.IsForbidden(err), apierrors.IsUnauthorized(err):
			return nil, fmt.Errorf("not allowed to read secret %s/%s: %w", namespace, name, err)
		default:
			return nil, fmt.Errorf("failed to get secret: %w", err)
		}
	}

	data := make(resolver.SecretData, len(secret.Data)+len(secret.StringData))
	for key, value := range secret.Data {
		data[key] = base64.StdEncoding.EncodeToString(value)
	}
	// StringData is write-only on a real API server but shows up in fakes and dry runs
	for key, value := range secret.StringData {
		if _, exists := data[key]; !exists {
			data[key] = base64.StdEncoding.EncodeToString([]byte(value))
		}
	}

	return data, nil
}

// APISecretSource reads secrets through the Kubernetes API
type APISecretSource struct {
	client *Client
}

// NewAPISecretSource creates a SecretSource reading from the client's namespace
func NewAPISecretSource(client *Client) *APISecretSource {
	return &APISecretSource{client: client}
}

// FetchSecret implements resolver.SecretSource
func (s *APISecretSource) FetchSecret(ctx context.Context, name string) (resolver.SecretData, error) {
	return s.client.GetSecretData(ctx, name, s.client.Namespace())
}
