// Package deploy loads and validates the Vercel deployment descriptor. The
// platform validates the manifest again at deploy time; running the same
// checks locally catches a malformed manifest or a missing data asset before
// an upload turns into a uniformly failing deployment.
package deploy

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/mazishark/mazishark/constants"
	"github.com/mazishark/mazishark/utils"
)

// Manifest models the subset of vercel.json this project uses.
type Manifest struct {
	Version int               `json:"version,omitempty"`
	Builds  []Build           `json:"builds,omitempty"`
	Routes  []Route           `json:"routes,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Build declares one buildable entry point and the extra files bundled with it.
type Build struct {
	Src    string       `json:"src"`
	Use    string       `json:"use"`
	Config *BuildConfig `json:"config,omitempty"`
}

type BuildConfig struct {
	IncludeFiles []string `json:"includeFiles,omitempty"`
}

// Route maps a URL path pattern to a function reference.
type Route struct {
	Src  string `json:"src"`
	Dest string `json:"dest"`
}

// LoadManifest reads and decodes the deployment descriptor.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, utils.Errorf("malformed deployment manifest %s: %w", path, err)
	}
	return &m, nil
}

// CheckFiles verifies that every file the manifest references exists under
// root: build sources, includeFiles globs, and the data asset the configured
// DATA_PATH (or the default path) resolves to. Mirrors the platform's
// deploy-time validation.
func (m *Manifest) CheckFiles(root string) error {
	for _, b := range m.Builds {
		if _, err := os.Stat(filepath.Join(root, b.Src)); err != nil {
			return utils.Errorf("build src %s not found under %s", b.Src, root)
		}
		if b.Config == nil {
			continue
		}
		for _, pattern := range b.Config.IncludeFiles {
			ok, err := globMatchesAny(root, pattern)
			if err != nil {
				return utils.Errorf("invalid includeFiles pattern %q: %w", pattern, err)
			}
			if !ok {
				return utils.Errorf("includeFiles pattern %q matches no files under %s", pattern, root)
			}
		}
	}
	return m.checkDataAsset(root)
}

// checkDataAsset ensures the asset the function will resolve at runtime is
// both present and covered by an includeFiles pattern, so it survives
// bundling. An s3:// DATA_PATH is external and skipped.
func (m *Manifest) checkDataAsset(root string) error {
	dataPath := m.Env[constants.EnvDataPath]
	if dataPath == "" {
		dataPath = m.Env[constants.EnvDataPathAlias]
	}
	if strings.HasPrefix(dataPath, "s3://") {
		return nil
	}
	if dataPath == "" {
		dataPath = constants.DefaultDataPath
	}
	if _, err := os.Stat(filepath.Join(root, dataPath)); err != nil {
		return utils.Errorf("data asset %s not found under %s; requests needing it will fail after deploy", dataPath, root)
	}
	if len(m.Builds) == 0 {
		return nil
	}
	for _, b := range m.Builds {
		if b.Config == nil {
			continue
		}
		for _, pattern := range b.Config.IncludeFiles {
			if globCovers(pattern, dataPath) {
				return nil
			}
		}
	}
	return utils.Errorf("data asset %s is not covered by any includeFiles pattern; it will be absent from the bundle", dataPath)
}

// globMatchesAny reports whether a pattern matches at least one existing file
// under root. Supports the platform's "dir/**" form for whole subtrees.
func globMatchesAny(root, pattern string) (bool, error) {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		entries, err := os.ReadDir(filepath.Join(root, prefix))
		if err != nil {
			return false, nil
		}
		return len(entries) > 0, nil
	}
	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

// globCovers reports whether the pattern would include the given relative
// path in the bundle.
func globCovers(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return strings.HasPrefix(path, prefix+"/")
	}
	ok, err := filepath.Match(pattern, path)
	return err == nil && ok
}
