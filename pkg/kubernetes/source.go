package kubernetes

import (
	"fmt"

	"github.com/illumination-k/secretenv/pkg/resolver"
)

// NewSecretSource builds the SecretSource for kind
func NewSecretSource(kind SecretSourceKind, cfg Config) (resolver.SecretSource, error) {
	switch kind {
	case SourceKubectl, "":
		return NewCLISecretSource(NewCLIExecutor(string(SourceKubectl)), cfg), nil
	case SourceOC:
		return NewCLISecretSource(NewCLIExecutor(string(SourceOC)), cfg), nil
	case SourceAPI:
		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return NewAPISecretSource(client), nil
	default:
		return nil, fmt.Errorf("unknown secret source %q (expected kubectl, oc, or api)", kind)
	}
}
