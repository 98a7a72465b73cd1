package env

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// OutputFileMode is used for generated env files since they hold decoded secrets
const OutputFileMode = 0o600

// WriteOptions controls full-dump output
type WriteOptions struct {
	// SkipUnresolved omits variables without a value instead of writing NAME=
	SkipUnresolved bool

	// Exclude lists variable names that are never written
	Exclude []string
}

// WriteResult summarizes what a writer produced
type WriteResult struct {
	Written    []string
	Unresolved []string
}

// MergeTemplate copies template to w line by line, replacing KEY=... lines whose KEY
// matches a variable with a value. Comments, blank lines, and unmatched lines are
// copied verbatim, including their original line endings. Only declared variables
// without a value are reported as unresolved.
func MergeTemplate(w io.Writer, template io.Reader, vars []*Variable) (*WriteResult, error) {
	byName := make(map[string]*Variable, len(vars))
	for _, v := range vars {
		if _, exists := byName[v.Name]; !exists {
			byName[v.Name] = v
		}
	}

	result := &WriteResult{}
	reader := bufio.NewReader(template)

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("failed to read template: %w", readErr)
		}
		if line == "" && readErr != nil {
			break
		}

		out := line
		if key, ok := templateKey(line); ok {
			if v, found := byName[key]; found {
				if v.HasValue() {
					out = key + "=" + v.Value + lineEnding(line)
					result.Written = append(result.Written, key)
				} else {
					result.Unresolved = append(result.Unresolved, key)
				}
			}
		}

		if _, err := io.WriteString(w, out); err != nil {
			return nil, fmt.Errorf("failed to write env line: %w", err)
		}

		if readErr != nil {
			break
		}
	}

	return result, nil
}

// WriteAll writes every variable as NAME=value in manifest order.
// Unresolved variables are written as NAME= unless opts.SkipUnresolved is set;
// either way they are listed in the result.
func WriteAll(w io.Writer, vars []*Variable, opts WriteOptions) (*WriteResult, error) {
	result := &WriteResult{}

	for _, v := range ApplyExclusions(vars, opts.Exclude) {
		if !v.HasValue() {
			result.Unresolved = append(result.Unresolved, v.Name)
			if opts.SkipUnresolved {
				continue
			}
		}

		if _, err := fmt.Fprintf(w, "%s=%s\n", v.Name, v.Value); err != nil {
			return nil, fmt.Errorf("failed to write env line: %w", err)
		}
		result.Written = append(result.Written, v.Name)
	}

	return result, nil
}

// WriteFromTemplate merges vars into the template file and writes outputPath
func WriteFromTemplate(templatePath, outputPath string, vars []*Variable) (*WriteResult, error) {
	// The template is read in full before the output is truncated so that
	// templatePath and outputPath may name the same file.
	// #nosec G304 -- user-provided template path
	template, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read env template: %w", err)
	}

	return writeFile(outputPath, func(w io.Writer) (*WriteResult, error) {
		return MergeTemplate(w, bytes.NewReader(template), vars)
	})
}

// WriteDeploymentEnv writes every variable to outputPath
func WriteDeploymentEnv(outputPath string, vars []*Variable, opts WriteOptions) (*WriteResult, error) {
	return writeFile(outputPath, func(w io.Writer) (*WriteResult, error) {
		return WriteAll(w, vars, opts)
	})
}

func writeFile(path string, write func(io.Writer) (*WriteResult, error)) (*WriteResult, error) {
	// #nosec G304 -- user-provided output path
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, OutputFileMode)
	if err != nil {
		return nil, fmt.Errorf("failed to create env file: %w", err)
	}

	buffered := bufio.NewWriter(f)
	result, err := write(buffered)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := buffered.Flush(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to write env file: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close env file: %w", err)
	}

	return result, nil
}

// templateKey returns KEY for lines of the form KEY=...
func templateKey(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}

	key, _, found := strings.Cut(line, "=")
	if !found || key == "" || strings.ContainsAny(key, " \t") {
		return "", false
	}

	return key, true
}

func lineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}
