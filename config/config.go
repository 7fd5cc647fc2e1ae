// Package config loads the YAML scenario configuration consumed by the
// wrangler CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// BaseNetwork locates the input roadway and transit data
type BaseNetwork struct {
	InputDir      string `yaml:"input_dir"`
	LinkFileName  string `yaml:"link_file_name"`
	NodeFileName  string `yaml:"node_file_name"`
	ShapeFileName string `yaml:"shape_file_name"`
	TransitDir    string `yaml:"transit_dir"`
}

// Scenario controls what is written out and where
type Scenario struct {
	OutputDir string `yaml:"output_dir"`
	OutPrefix string `yaml:"out_prefix"`
	Format    string `yaml:"format"`
	WriteOut  bool   `yaml:"write_out"`
}

// ScenarioConfig is the root of the scenario YAML document
type ScenarioConfig struct {
	BaseNetwork BaseNetwork `yaml:"base_network"`
	Scenario    Scenario    `yaml:"scenario"`
}

// Load reads and validates a scenario configuration file
func Load(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	conf := &ScenarioConfig{}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(conf.BaseNetwork.InputDir) == 0 {
		return nil, fmt.Errorf("%s: base_network.input_dir is required", path)
	}
	if len(conf.BaseNetwork.LinkFileName) == 0 || len(conf.BaseNetwork.NodeFileName) == 0 {
		return nil, fmt.Errorf("%s: base_network.link_file_name and node_file_name are required", path)
	}
	if len(conf.Scenario.Format) == 0 {
		conf.Scenario.Format = "geojson"
	}
	switch conf.Scenario.Format {
	case "geojson", "json", "parquet":
	default:
		return nil, fmt.Errorf("%s: unknown output format %q", path, conf.Scenario.Format)
	}
	if len(conf.Scenario.OutputDir) == 0 {
		conf.Scenario.OutputDir = "."
	}
	return conf, nil
}

// LinksFile returns the full path to the link file
func (c *ScenarioConfig) LinksFile() string {
	return filepath.Join(c.BaseNetwork.InputDir, c.BaseNetwork.LinkFileName)
}

// NodesFile returns the full path to the node file
func (c *ScenarioConfig) NodesFile() string {
	return filepath.Join(c.BaseNetwork.InputDir, c.BaseNetwork.NodeFileName)
}

// ShapesFile returns the full path to the shape file, or "" when the
// scenario declares none
func (c *ScenarioConfig) ShapesFile() string {
	if len(c.BaseNetwork.ShapeFileName) == 0 {
		return ""
	}
	return filepath.Join(c.BaseNetwork.InputDir, c.BaseNetwork.ShapeFileName)
}
