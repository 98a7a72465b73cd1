package env

import (
	"fmt"
	"regexp"

	"github.com/samber/lo"
)

// varNamePattern matches names that every POSIX shell accepts in a dotenv file.
// Kubernetes itself allows a wider set (dots, dashes, lowercase).
var varNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateVarName checks if the variable name can be sourced by a shell
func ValidateVarName(name string) error {
	if !varNamePattern.MatchString(name) {
		return fmt.Errorf("variable name %q must match pattern ^[A-Za-z_][A-Za-z0-9_]*$", name)
	}
	return nil
}

// IsSystemVar checks if the variable is in the default exclusion list
func IsSystemVar(name string) bool {
	return lo.Contains(DefaultExcludedVars, name)
}

// InvalidNames returns the names of variables that a shell would reject
func InvalidNames(vars []*Variable) []string {
	return lo.FilterMap(vars, func(v *Variable, _ int) (string, bool) {
		return v.Name, ValidateVarName(v.Name) != nil
	})
}
