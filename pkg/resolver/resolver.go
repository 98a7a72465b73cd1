// Package resolver fills in environment variables that reference cluster secrets.
//
// Each distinct secret is fetched at most once per run. Once fetched, its data is
// applied to every unresolved variable that references the same secret name, so
// a manifest with many keys from one secret costs a single lookup.
package resolver

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/illumination-k/secretenv/pkg/env"
)

// DefaultPlaceholder is replaced by the deploy environment in secret names
const DefaultPlaceholder = "$DEPLOY_ENV"

// SecretData maps secret keys to base64-encoded values
type SecretData map[string]string

// SecretSource fetches the data of a secret by name
type SecretSource interface {
	FetchSecret(ctx context.Context, name string) (SecretData, error)
}

// Options configures a Resolver
type Options struct {
	// DeployEnv replaces Placeholder in secret names; no substitution when empty
	DeployEnv string

	// Placeholder defaults to DefaultPlaceholder
	Placeholder string

	Logger zerolog.Logger
}

// Resolver decodes secret-backed variables in place
type Resolver struct {
	source      SecretSource
	deployEnv   string
	placeholder string
	logger      zerolog.Logger
}

// Report lists what a Resolve call did
type Report struct {
	// Fetched holds secret names in fetch order
	Fetched []string

	// Unresolved holds names of variables that still have no value
	Unresolved []string
}

// New creates a Resolver backed by source
func New(source SecretSource, opts Options) *Resolver {
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	return &Resolver{
		source:      source,
		deployEnv:   opts.DeployEnv,
		placeholder: placeholder,
		logger:      opts.Logger,
	}
}

// SecretName returns the lookup name for ref with the placeholder substituted
func (r *Resolver) SecretName(ref *env.SecretRef) string {
	if r.deployEnv == "" {
		return ref.Name
	}
	return strings.ReplaceAll(ref.Name, r.placeholder, r.deployEnv)
}

// Resolve fetches every secret referenced by an unresolved variable and stores
// the decoded, quoted value on each variable whose key is present.
// Variables that already have a value are never touched.
func (r *Resolver) Resolve(ctx context.Context, vars []*env.Variable) (*Report, error) {
	report := &Report{}
	fetched := make(map[string]bool)

	for _, v := range vars {
		if !v.IsSecret() || v.HasValue() {
			continue
		}

		name := r.SecretName(v.SecretRef)
		if fetched[name] {
			continue
		}
		fetched[name] = true

		r.logger.Debug().Str("secret", name).Str("variable", v.Name).Msg("fetching secret")

		data, err := r.source.FetchSecret(ctx, name)
		if err != nil {
			return nil, &SecretFetchError{Name: name, Err: err}
		}
		report.Fetched = append(report.Fetched, name)

		if err := r.apply(name, data, vars); err != nil {
			return nil, err
		}
	}

	report.Unresolved = lo.FilterMap(vars, func(v *env.Variable, _ int) (string, bool) {
		return v.Name, !v.HasValue()
	})

	return report, nil
}

// apply decodes data into every unresolved variable referencing secret name
func (r *Resolver) apply(name string, data SecretData, vars []*env.Variable) error {
	for _, v := range vars {
		if !v.IsSecret() || v.HasValue() || r.SecretName(v.SecretRef) != name {
			continue
		}

		value, err := decode(data[v.SecretRef.Key])
		if err != nil {
			return &SecretFetchError{
				Name: name,
				Err:  fmt.Errorf("key %q is not valid base64: %w", v.SecretRef.Key, err),
			}
		}

		if value == "" {
			r.logger.Debug().Str("secret", name).Str("key", v.SecretRef.Key).Msg("key not found in secret")
			continue
		}

		if needsEscaping(value) {
			r.logger.Warn().
				Str("secret", name).
				Str("key", v.SecretRef.Key).
				Str("variable", v.Name).
				Msg("secret value contains quotes or line breaks and may not read back unchanged from the env file")
		}

		v.Value = `"` + value + `"`
	}

	return nil
}

func decode(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}

// needsEscaping reports whether a double-quoted env line would misread value
func needsEscaping(value string) bool {
	return strings.ContainsAny(value, "\"\n\r") || strings.Contains(value, `\n`)
}
