package usecase

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"github.com/illumination-k/secretenv/pkg/env"
)

// redactedValue replaces secret-backed values unless values are explicitly shown
const redactedValue = "<REDACTED>"

// VariableView is the printable form of a resolved variable
type VariableView struct {
	Name     string `json:"name"`
	Value    string `json:"value,omitempty"`
	Source   string `json:"source"`
	Secret   string `json:"secret,omitempty"`
	Key      string `json:"key,omitempty"`
	Resolved bool   `json:"resolved"`
}

// BuildViews converts variables for display. Secret-backed values are redacted
// unless showValues is set; literal values are always shown.
func BuildViews(vars []*env.Variable, showValues bool) []VariableView {
	views := make([]VariableView, 0, len(vars))

	for _, v := range vars {
		view := VariableView{
			Name:     v.Name,
			Value:    v.Value,
			Source:   "literal",
			Resolved: v.HasValue(),
		}

		if v.SecretRef != nil {
			view.Source = "secret"
			view.Secret = v.SecretRef.Name
			view.Key = v.SecretRef.Key
			if v.HasValue() && !showValues {
				view.Value = redactedValue
			}
		}

		views = append(views, view)
	}

	return views
}

// WriteVariablesTable outputs variables as an aligned table
func WriteVariablesTable(views []VariableView, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "NAME\tSOURCE\tRESOLVED\tVALUE")
	for _, view := range views {
		source := view.Source
		if view.Secret != "" {
			source = fmt.Sprintf("secret:%s/%s", view.Secret, view.Key)
		}

		value := view.Value
		if !view.Resolved {
			value = "-"
		}

		_, _ = fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", view.Name, source, view.Resolved, value)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return nil
}

// WriteVariablesYAML outputs variables as a YAML list
func WriteVariablesYAML(views []VariableView, w io.Writer) error {
	data, err := yaml.Marshal(views)
	if err != nil {
		return fmt.Errorf("failed to marshal to YAML: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}

	return nil
}

// WriteVariablesJSON outputs variables as an indented JSON array
func WriteVariablesJSON(views []VariableView, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(views); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
