package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes the database archives the dbfetch tool should
// download and push to cloud storage.
type Manifest struct {
	OutputDir string   `yaml:"output_dir"`
	Sources   []string `yaml:"sources"`
}

// LoadManifest loads a YAML source manifest from path.
// Returns nil without error if the file doesn't exist.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Manifest file is optional
			return nil, nil
		}
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	return &m, nil
}
