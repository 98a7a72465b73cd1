package manifest

import (
	"errors"

	corev1 "k8s.io/api/core/v1"
)

var (
	// ErrNotFound is returned when no manifest file matches under the search directory
	ErrNotFound = errors.New("no manifest file found")

	// ErrMissingField is returned when none of the known manifest shapes declare env variables
	ErrMissingField = errors.New("no environment variables found in any known manifest shape")
)

// DefaultPatterns are the file name patterns searched when none are configured
var DefaultPatterns = []string{"*.yml"}

// Document is the subset of a workload manifest that can declare container env.
// Every field is optional; each supported shape is checked for presence explicitly.
type Document struct {
	Kind string        `json:"kind,omitempty"`
	Spec *DocumentSpec `json:"spec,omitempty"`
}

// DocumentSpec covers the spec fields of Pods, inline specs, CronJobs and pod-template workloads
type DocumentSpec struct {
	// Pod / OpenShift shape: spec.containers[].env
	Containers []Container `json:"containers,omitempty"`

	// Inline shape: spec.env
	Env []corev1.EnvVar `json:"env,omitempty"`

	// CronJob shape: spec.jobTemplate.spec.template.spec.containers[].env
	JobTemplate *JobTemplate `json:"jobTemplate,omitempty"`

	// Deployment, StatefulSet, Job, DeploymentConfig: spec.template.spec.containers[].env
	Template *PodTemplate `json:"template,omitempty"`
}

// JobTemplate mirrors batchv1.JobTemplateSpec down to the pod template
type JobTemplate struct {
	Spec *JobSpec `json:"spec,omitempty"`
}

// JobSpec mirrors batchv1.JobSpec down to the pod template
type JobSpec struct {
	Template *PodTemplate `json:"template,omitempty"`
}

// PodTemplate mirrors corev1.PodTemplateSpec down to the containers
type PodTemplate struct {
	Spec *PodSpec `json:"spec,omitempty"`
}

// PodSpec mirrors corev1.PodSpec down to the containers
type PodSpec struct {
	Containers []Container `json:"containers,omitempty"`
}

// Container keeps only the fields needed to pick a container and read its env.
// Decoding the full corev1.Container would reject templated manifests whose
// unrelated fields (ports, resources) hold parameter placeholders.
type Container struct {
	Name string          `json:"name,omitempty"`
	Env  []corev1.EnvVar `json:"env,omitempty"`
}

// ExtractOptions controls which container is read
type ExtractOptions struct {
	// Container selects a container by name; the first container is used when empty
	Container string
}

// LocateOptions controls manifest discovery
type LocateOptions struct {
	// Patterns are file name globs matched against base names
	Patterns []string

	// Exclude are gitignore-style patterns relative to the search directory
	Exclude []string

	// UseGitignore also skips paths ignored by a .gitignore at the search root
	UseGitignore bool
}
