package env

// Variable is a single environment variable declared by a manifest
type Variable struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	// SecretRef is set when the value comes from a cluster secret
	SecretRef *SecretRef `json:"secretRef,omitempty" yaml:"secretRef,omitempty"`
}

// SecretRef points at a key inside a named secret.
// Name may contain a placeholder token that is substituted before lookup.
type SecretRef struct {
	Name string `json:"name" yaml:"name"`
	Key  string `json:"key" yaml:"key"`
}

// HasValue reports whether the variable holds a literal or resolved value
func (v *Variable) HasValue() bool {
	return v.Value != ""
}

// IsSecret reports whether the variable references a secret
func (v *Variable) IsSecret() bool {
	return v.SecretRef != nil && v.SecretRef.Name != "" && v.SecretRef.Key != ""
}

// DefaultExcludedVars contains variables that a local env file should not override
// because the local shell or the kubelet already provides them
var DefaultExcludedVars = []string{
	// System variables
	"PATH",
	"HOME",
	"USER",
	"SHELL",
	"TERM",
	"PWD",
	"OLDPWD",
	"HOSTNAME",
	"LOGNAME",

	// Kubernetes variables
	"KUBERNETES_SERVICE_HOST",
	"KUBERNETES_SERVICE_PORT",
	"KUBERNETES_SERVICE_PORT_HTTPS",
	"KUBERNETES_PORT",
	"KUBERNETES_PORT_443_TCP",
	"KUBERNETES_PORT_443_TCP_PROTO",
	"KUBERNETES_PORT_443_TCP_PORT",
	"KUBERNETES_PORT_443_TCP_ADDR",
}
