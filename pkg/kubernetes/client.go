package kubernetes

import (
	"fmt"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// NewClient creates a new Kubernetes client from kubeconfig, honoring an explicit
// context and namespace. The namespace falls back to the kubeconfig context's.
func NewClient(cfg Config) (*Client, error) {
	clientConfig := buildClientConfig(cfg)

	restConfig, err := buildRestConfig(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build kubernetes config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes clientset: %w", err)
	}

	resolved := cfg
	if resolved.Namespace == "" {
		namespace, _, err := clientConfig.Namespace()
		if err != nil {
			namespace = "default"
		}
		resolved.Namespace = namespace
	}

	return &Client{
		clientset: clientset,
		config:    &resolved,
	}, nil
}

// NewClientWithClientset wraps an existing clientset, mainly for tests
func NewClientWithClientset(clientset kubernetes.Interface, namespace string) *Client {
	if namespace == "" {
		namespace = "default"
	}
	return &Client{
		clientset: clientset,
		config:    &Config{Namespace: namespace},
	}
}

// buildClientConfig layers explicit flags over the standard kubeconfig loading rules
// ($KUBECONFIG, then ~/.kube/config)
func buildClientConfig(cfg Config) clientcmd.ClientConfig {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if cfg.KubeconfigPath != "" {
		loadingRules.ExplicitPath = cfg.KubeconfigPath
	}

	overrides := &clientcmd.ConfigOverrides{}
	if cfg.Context != "" {
		overrides.CurrentContext = cfg.Context
	}
	if cfg.Namespace != "" {
		overrides.Context.Namespace = cfg.Namespace
	}

	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides)
}

// buildRestConfig prefers kubeconfig and falls back to in-cluster config
func buildRestConfig(clientConfig clientcmd.ClientConfig) (*rest.Config, error) {
	config, err := clientConfig.ClientConfig()
	if err == nil {
		return config, nil
	}

	inCluster, inClusterErr := rest.InClusterConfig()
	if inClusterErr != nil {
		return nil, fmt.Errorf("failed to build config from kubeconfig: %w", err)
	}

	return inCluster, nil
}

// Namespace returns the namespace secrets are read from
func (c *Client) Namespace() string {
	return c.config.Namespace
}
