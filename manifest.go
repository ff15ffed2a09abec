package shrimply

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Manifest is the parsed contents of a shrimply.yaml project file: extra
// module search roots and pinned git module sources, contributed to a
// Loader alongside SHRIMPLY_MOD_PATHS.
type Manifest struct {
	SearchPaths []string         `yaml:"searchPaths"`
	Modules     []ManifestModule `yaml:"modules"`
}

// ManifestModule pins a named git-hosted module to a source URL and an
// optional ref (branch, tag, or commit); an empty Ref uses the
// remote's default branch.
type ManifestModule struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Ref    string `yaml:"ref"`
}

// findManifest walks upward from dir looking for shrimply.yaml,
// returning (nil, nil) if none is found before the filesystem root.
func findManifest(dir string) (*Manifest, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %q", dir)
	}
	for {
		candidate := filepath.Join(dir, "shrimply.yaml")
		if data, err := os.ReadFile(candidate); err == nil {
			var m Manifest
			if err := yaml.Unmarshal(data, &m); err != nil {
				return nil, errors.Wrapf(err, "parsing %s", candidate)
			}
			return &m, nil
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "reading %s", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}
