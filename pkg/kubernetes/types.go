package kubernetes

import (
	"k8s.io/client-go/kubernetes"
)

// Client wraps the Kubernetes clientset and provides convenience methods
type Client struct {
	clientset kubernetes.Interface
	config    *Config
}

// Config holds configuration for the Kubernetes client
type Config struct {
	KubeconfigPath string
	Context        string
	Namespace      string
}

// SecretSourceKind selects how secrets are read from the cluster
type SecretSourceKind string

const (
	// SourceKubectl shells out to kubectl
	SourceKubectl SecretSourceKind = "kubectl"
	// SourceOC shells out to the OpenShift CLI
	SourceOC SecretSourceKind = "oc"
	// SourceAPI talks to the API server through client-go
	SourceAPI SecretSourceKind = "api"
)

// Valid reports whether the kind is one of the supported sources
func (k SecretSourceKind) Valid() bool {
	switch k {
	case SourceKubectl, SourceOC, SourceAPI:
		return true
	default:
		return false
	}
}
