package env

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// ReadEnvFile loads an existing dotenv file
// A missing file is not an error and yields an empty map
func ReadEnvFile(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return make(map[string]string), nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dotenv file %s: %w", path, err)
	}

	return values, nil
}

// ApplyExclusions filters out excluded variables, keeping manifest order
func ApplyExclusions(vars []*Variable, exclude []string) []*Variable {
	if len(exclude) == 0 {
		return vars
	}

	// Create exclusion set for O(1) lookups
	excludeSet := make(map[string]bool)
	for _, v := range exclude {
		excludeSet[v] = true
	}

	return lo.Filter(vars, func(v *Variable, _ int) bool {
		return !excludeSet[v.Name]
	})
}

// Drift describes how an existing env file differs from the resolved variables
type Drift struct {
	Missing []string // resolved but absent from the file
	Changed []string // present in both with different values
	Extra   []string // present in the file but not declared by the manifest
}

// HasDrift reports whether any difference was found
func (d *Drift) HasDrift() bool {
	return len(d.Missing) > 0 || len(d.Changed) > 0 || len(d.Extra) > 0
}

// Diff compares resolved variables with values read from an env file.
// Unresolved variables are only checked for presence.
func Diff(vars []*Variable, existing map[string]string) *Drift {
	drift := &Drift{}
	declared := make(map[string]bool, len(vars))

	for _, v := range vars {
		declared[v.Name] = true

		current, ok := existing[v.Name]
		if !ok {
			drift.Missing = append(drift.Missing, v.Name)
			continue
		}

		if v.HasValue() && Unquote(v.Value) != current {
			drift.Changed = append(drift.Changed, v.Name)
		}
	}

	for key := range existing {
		if !declared[key] {
			drift.Extra = append(drift.Extra, key)
		}
	}
	sort.Strings(drift.Extra)

	drift.Missing = lo.Uniq(drift.Missing)
	drift.Changed = lo.Uniq(drift.Changed)

	return drift
}

// Unquote strips one pair of surrounding double quotes
func Unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}
