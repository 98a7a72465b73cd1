package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// gitignoreFile is honored at the root of the search directory when UseGitignore is set
const gitignoreFile = ".gitignore"

// errFound stops the directory walk once a match is recorded
var errFound = errors.New("manifest found")

// Locate walks dir recursively and returns the first file whose base name matches
// one of the patterns. Entries are visited in lexical order within each directory.
func Locate(dir string, opts LocateOptions) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: directory %q does not exist", ErrNotFound, dir)
		}
		return "", fmt.Errorf("failed to access manifest directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("manifest path %q is not a directory", dir)
	}

	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	for _, pattern := range patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return "", fmt.Errorf("invalid manifest pattern %q: %w", pattern, err)
		}
	}

	excluder, err := newExcluder(dir, opts)
	if err != nil {
		return "", err
	}

	var found string
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path != dir && excluder.excluded(path, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		if matchesAny(patterns, d.Name()) {
			found = path
			return errFound
		}

		return nil
	})

	if walkErr != nil && !errors.Is(walkErr, errFound) {
		return "", fmt.Errorf("failed to search manifest directory: %w", walkErr)
	}

	if found == "" {
		return "", fmt.Errorf("%w: no files matching %v under %q", ErrNotFound, patterns, dir)
	}

	return found, nil
}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// excluder matches paths relative to the search root against gitignore patterns
type excluder struct {
	basePath  string
	patterns  *ignore.GitIgnore
	gitignore *ignore.GitIgnore
}

func newExcluder(basePath string, opts LocateOptions) (*excluder, error) {
	e := &excluder{basePath: basePath}

	if len(opts.Exclude) > 0 {
		e.patterns = ignore.CompileIgnoreLines(opts.Exclude...)
	}

	if opts.UseGitignore {
		gitignorePath := filepath.Join(basePath, gitignoreFile)
		if _, err := os.Stat(gitignorePath); err == nil {
			matcher, err := ignore.CompileIgnoreFile(gitignorePath)
			if err != nil {
				return nil, fmt.Errorf("failed to compile %s: %w", gitignorePath, err)
			}
			e.gitignore = matcher
		}
	}

	return e, nil
}

func (e *excluder) excluded(path string, isDir bool) bool {
	relPath, err := filepath.Rel(e.basePath, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)
	if isDir {
		relPath += "/"
	}

	if e.patterns != nil && e.patterns.MatchesPath(relPath) {
		return true
	}

	return e.gitignore != nil && e.gitignore.MatchesPath(relPath)
}
