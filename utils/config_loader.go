package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"kitti-paths/models"
)

// ─── Section configs ────────────────────────────────────────────────────

type DatasetSection struct {
	ImagesRoot  string   `yaml:"images_root"`
	DatasetRoot string   `yaml:"dataset_root"`
	Sequences   []string `yaml:"sequences"` // optional allow-list
}

type OutputSection struct {
	Dir          string `yaml:"dir"`
	ManifestCSV  string `yaml:"manifest_csv"`
	MotionCSV    string `yaml:"motion_csv"`
	SettingsYAML string `yaml:"settings_yaml"`
	WriteHeader  bool   `yaml:"write_header"`
	BufferSizeKB int    `yaml:"buffer_size_kb"`
}

type LogSection struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DatasetConfig is the top-level structure for kitti.yaml.
type DatasetConfig struct {
	Dataset DatasetSection `yaml:"dataset"`
	Output  OutputSection  `yaml:"output"`
	Log     LogSection     `yaml:"log"`
}

// DefaultDatasetConfig returns the values used for keys absent from the file.
func DefaultDatasetConfig() *DatasetConfig {
	return &DatasetConfig{
		Output: OutputSection{
			ManifestCSV:  "sequences.csv",
			MotionCSV:    "motion.csv",
			SettingsYAML: "settings.yaml",
			WriteHeader:  true,
			BufferSizeKB: 64,
		},
		Log: LogSection{Level: "info"},
	}
}

// ─── Loaders ────────────────────────────────────────────────────────────

// LoadDatasetConfig reads and parses kitti.yaml over the defaults.
func LoadDatasetConfig(path string) (*DatasetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read dataset config")
	}
	cfg := DefaultDatasetConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse dataset config")
	}
	return cfg, nil
}

// AbsRoots resolves relative dataset roots against the working directory.
// A missing dataset_root falls back to images_root.
func (c *DatasetConfig) AbsRoots() error {
	if c.Dataset.DatasetRoot == "" {
		c.Dataset.DatasetRoot = c.Dataset.ImagesRoot
	}
	for _, p := range []*string{&c.Dataset.ImagesRoot, &c.Dataset.DatasetRoot} {
		if *p == "" || filepath.IsAbs(*p) {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return errors.Wrapf(err, "resolve %s", *p)
		}
		*p = abs
	}
	return nil
}

// Params returns a fresh, unresolved Params for the configured roots.
func (c *DatasetConfig) Params() *models.Params {
	return models.NewParams(c.Dataset.ImagesRoot, c.Dataset.DatasetRoot)
}

// OutputPath places name inside the output directory. Absolute names and
// empty names are returned unchanged.
func (c *DatasetConfig) OutputPath(name string) string {
	if name == "" || filepath.IsAbs(name) || c.Output.Dir == "" {
		return name
	}
	return filepath.Join(c.Output.Dir, name)
}
