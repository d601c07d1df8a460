package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/planargrid/pkg/pipeline"
)

// outputPaths maps each format to its destination file. A single format with
// an explicit file name is written there as-is; otherwise base (without
// extension) gets one file per format.
func outputPaths(base string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && filepath.Ext(base) != "" {
		paths[formats[0]] = base
		return paths
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, f := range formats {
		paths[f] = base + pipeline.FormatExtensions[f]
	}
	return paths
}

// defaultBase names output files after the seed.
func defaultBase(dir string, seed uint64) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%d", appName, seed))
}

// writeArtifacts writes artifacts in the order of formats and returns the
// written paths.
func writeArtifacts(base string, formats []string, artifacts map[string][]byte) ([]string, error) {
	paths := outputPaths(base, formats)
	var written []string
	for _, f := range formats {
		path := paths[f]
		if slices.Contains(written, path) {
			continue
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return written, fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
