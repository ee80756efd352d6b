package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/matzehuels/hillclimb/pkg/pipeline"
)

// outputPath returns the file a diagram is written to, e.g.
// out/camino_encontrado.png.
func outputPath(dir, base, format string) string {
	return filepath.Join(dir, pipeline.FileName(base, format))
}

// writeArtifacts writes one file per format under dir and returns the paths
// in format order. Existing files are overwritten.
func writeArtifacts(dir, base string, artifacts map[string][]byte) ([]string, error) {
	if len(artifacts) == 0 {
		return nil, nil
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := outputPath(dir, base, f)
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// writeResult writes both diagrams of a rendered run.
func writeResult(dir string, res *pipeline.Result) ([]string, error) {
	paths, err := writeArtifacts(dir, pipeline.GraphFileName, res.Artifacts.Graph)
	if err != nil {
		return paths, err
	}
	more, err := writeArtifacts(dir, pipeline.PathFileName, res.Artifacts.Path)
	return append(paths, more...), err
}
