package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/illumination-k/secretenv/pkg/env"
	"github.com/illumination-k/secretenv/pkg/manifest"
	"github.com/illumination-k/secretenv/pkg/resolver"
)

// LoadOptions contains all options for loading and resolving manifest variables
type LoadOptions struct {
	// Deployment is the directory searched for a manifest
	Deployment string

	// Manifest skips the search and reads this file directly
	Manifest string

	Locate  manifest.LocateOptions
	Extract manifest.ExtractOptions

	DeployEnv   string
	Placeholder string
}

// LoadResult is the outcome of the locate, extract and resolve steps
type LoadResult struct {
	ManifestPath string
	Extraction   *manifest.Extraction
	Variables    []*env.Variable
	Report       *resolver.Report
}

// LoadVariables locates the manifest, extracts its env list and resolves secret
// references through source. Every failure is returned as-is; nothing is retried.
func LoadVariables(ctx context.Context, source resolver.SecretSource, opts LoadOptions, logger zerolog.Logger) (*LoadResult, error) {
	path := opts.Manifest
	if path == "" {
		located, err := manifest.Locate(opts.Deployment, opts.Locate)
		if err != nil {
			return nil, err
		}
		path = located
	}
	logger.Debug().Str("path", path).Msg("using manifest")

	extraction, err := manifest.ExtractFromFile(path, opts.Extract)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("kind", extraction.Kind).
		Str("shape", extraction.Shape).
		Int("document", extraction.Document).
		Int("variables", len(extraction.Variables)).
		Msg("extracted variables")

	r := resolver.New(source, resolver.Options{
		DeployEnv:   opts.DeployEnv,
		Placeholder: opts.Placeholder,
		Logger:      logger,
	})

	report, err := r.Resolve(ctx, extraction.Variables)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve variables from %s: %w", path, err)
	}

	return &LoadResult{
		ManifestPath: path,
		Extraction:   extraction,
		Variables:    extraction.Variables,
		Report:       report,
	}, nil
}
