package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"

	corev1 "k8s.io/api/core/v1"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"

	"github.com/illumination-k/secretenv/pkg/env"
)

// decoderBufferSize is the lookahead used to sniff JSON versus YAML input
const decoderBufferSize = 4096

// shape is one known location of a container env list inside a manifest
type shape struct {
	name    string
	extract func(spec *DocumentSpec, opts ExtractOptions) []corev1.EnvVar
}

// shapes are tried in order; the first non-empty list wins
var shapes = []shape{
	{
		name: "spec.containers[].env",
		extract: func(spec *DocumentSpec, opts ExtractOptions) []corev1.EnvVar {
			return containerEnv(spec.Containers, opts.Container)
		},
	},
	{
		name: "spec.env",
		extract: func(spec *DocumentSpec, _ ExtractOptions) []corev1.EnvVar {
			return spec.Env
		},
	},
	{
		name: "spec.jobTemplate.spec.template.spec.containers[].env",
		extract: func(spec *DocumentSpec, opts ExtractOptions) []corev1.EnvVar {
			if spec.JobTemplate == nil || spec.JobTemplate.Spec == nil {
				return nil
			}
			return podTemplateEnv(spec.JobTemplate.Spec.Template, opts.Container)
		},
	},
	{
		name: "spec.template.spec.containers[].env",
		extract: func(spec *DocumentSpec, opts ExtractOptions) []corev1.EnvVar {
			return podTemplateEnv(spec.Template, opts.Container)
		},
	},
}

// Extraction is the env list found in a manifest and where it was found
type Extraction struct {
	Variables []*env.Variable
	Kind      string
	Shape     string
	Document  int
}

// ExtractFromFile reads the manifest at path and extracts its variables
func ExtractFromFile(path string, opts ExtractOptions) (*Extraction, error) {
	// #nosec G304 -- path comes from the locator or the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	extraction, err := Extract(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return extraction, nil
}

// ExtractVariables decodes every document in r and returns the env list of the
// first document that declares one in any known shape
func ExtractVariables(r io.Reader, opts ExtractOptions) ([]*env.Variable, error) {
	extraction, err := Extract(r, opts)
	if err != nil {
		return nil, err
	}
	return extraction.Variables, nil
}

// Extract is ExtractVariables with details about the matching document and shape
func Extract(r io.Reader, opts ExtractOptions) (*Extraction, error) {
	decoder := utilyaml.NewYAMLOrJSONDecoder(r, decoderBufferSize)

	for index := 0; ; index++ {
		var doc Document
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode manifest document %d: %w", index, err)
		}

		if envVars, shapeName := documentEnv(&doc, opts); len(envVars) > 0 {
			return &Extraction{
				Variables: toVariables(envVars),
				Kind:      doc.Kind,
				Shape:     shapeName,
				Document:  index,
			}, nil
		}
	}

	if opts.Container != "" {
		return nil, fmt.Errorf("%w (container %q)", ErrMissingField, opts.Container)
	}
	return nil, ErrMissingField
}

// documentEnv tries each known shape against a single document
func documentEnv(doc *Document, opts ExtractOptions) ([]corev1.EnvVar, string) {
	if doc.Spec == nil {
		return nil, ""
	}

	for _, s := range shapes {
		if envVars := s.extract(doc.Spec, opts); len(envVars) > 0 {
			return envVars, s.name
		}
	}

	return nil, ""
}

func podTemplateEnv(template *PodTemplate, container string) []corev1.EnvVar {
	if template == nil || template.Spec == nil {
		return nil
	}
	return containerEnv(template.Spec.Containers, container)
}

// containerEnv returns the env of the named container, or of the first one
func containerEnv(containers []Container, name string) []corev1.EnvVar {
	if len(containers) == 0 {
		return nil
	}

	if name == "" {
		return containers[0].Env
	}

	for _, c := range containers {
		if c.Name == name {
			return c.Env
		}
	}

	return nil
}

func toVariables(envVars []corev1.EnvVar) []*env.Variable {
	vars := make([]*env.Variable, 0, len(envVars))

	for _, e := range envVars {
		v := &env.Variable{
			Name:  e.Name,
			Value: e.Value,
		}

		if e.ValueFrom != nil && e.ValueFrom.SecretKeyRef != nil {
			v.SecretRef = &env.SecretRef{
				Name: e.ValueFrom.SecretKeyRef.Name,
				Key:  e.ValueFrom.SecretKeyRef.Key,
			}
		}

		vars = append(vars, v)
	}

	return vars
}
