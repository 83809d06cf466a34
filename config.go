package main

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// ServerConfig controls the HTTP server used by serve and ui
type ServerConfig struct {
	Addr            string        `yaml:"addr" json:"addr"`                         // explicit listen address; empty searches the port range
	Host            string        `yaml:"host" json:"host"`                         // host used with the port range
	PortMin         int           `yaml:"port_min" json:"port_min"`                 // first port tried
	PortMax         int           `yaml:"port_max" json:"port_max"`                 // last port tried
	OpenBrowser     bool          `yaml:"open_browser" json:"open_browser"`         // open the default browser on start
	CORSOrigin      string        `yaml:"cors_origin" json:"cors_origin"`           // Access-Control-Allow-Origin; empty disables CORS
	SecurityHeaders bool          `yaml:"security_headers" json:"security_headers"` // nosniff, frame deny, no-cache
	SessionTTL      time.Duration `yaml:"session_ttl" json:"session_ttl"`           // idle time before a page session is dropped
	RequestTimeout  time.Duration `yaml:"request_timeout" json:"request_timeout"`
}

// DashboardConfig controls what the page shows
type DashboardConfig struct {
	Title          string `yaml:"title" json:"title"`
	DefaultSection string `yaml:"default_section" json:"default_section"`
	ChartJSURL     string `yaml:"chartjs_url" json:"chartjs_url"`
	DatasetFile    string `yaml:"dataset_file" json:"dataset_file"` // external dataset; empty uses the embedded one
}

// ExportConfig controls the report exporters
type ExportConfig struct {
	Dir         string `yaml:"dir" json:"dir"`
	ChartWidth  int    `yaml:"chart_width" json:"chart_width"`   // raster chart width in pixels
	ChartHeight int    `yaml:"chart_height" json:"chart_height"` // raster chart height in pixels
}

// Config is the full application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server"`
	Dashboard DashboardConfig `yaml:"dashboard" json:"dashboard"`
	Export    ExportConfig    `yaml:"export" json:"export"`
}

// LoadConfig loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config, err := LoadDefaultConfig()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	header := []byte(`# Dashboard Socio-Economica - configuration
# Generated by "dashboard config init" - feel free to edit manually
#
# server.addr empty:   the first free port between port_min and port_max is used
# dashboard.dataset_file empty: the dataset compiled into the binary is shown
# durations use Go syntax, e.g. 30m, 1h30m
#
`)
	return os.WriteFile(filename, append(header, data...), 0644)
}

// LoadDefaultConfig returns the configuration compiled into the binary
func LoadDefaultConfig() (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadConfigOrDefault loads filename, falling back to the defaults when the
// file does not exist
func LoadConfigOrDefault(filename string) (*Config, error) {
	config, err := LoadConfig(filename)
	if os.IsNotExist(err) {
		return LoadDefaultConfig()
	}
	return config, err
}

// Validate checks the values that would otherwise fail late
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		if c.Server.PortMin <= 0 || c.Server.PortMax > 65535 || c.Server.PortMin > c.Server.PortMax {
			return fmt.Errorf("invalid port range %d-%d", c.Server.PortMin, c.Server.PortMax)
		}
	}
	if c.Server.SessionTTL < 0 {
		return fmt.Errorf("negative session_ttl %s", c.Server.SessionTTL)
	}
	if c.Export.ChartWidth <= 0 || c.Export.ChartHeight <= 0 {
		return fmt.Errorf("invalid chart size %dx%d", c.Export.ChartWidth, c.Export.ChartHeight)
	}
	if c.Dashboard.DefaultSection != "" {
		if _, err := ParseSection(c.Dashboard.DefaultSection); err != nil {
			return err
		}
	}
	return nil
}

// StartSection returns the section the page opens on
func (c *Config) StartSection() Section {
	if s, err := ParseSection(c.Dashboard.DefaultSection); err == nil {
		return s
	}
	return DefaultSection
}

// LoadData returns the configured dataset
func (c *Config) LoadData() (*Dataset, error) {
	if c.Dashboard.DatasetFile == "" {
		return DefaultDataset()
	}
	return LoadDatasetFile(c.Dashboard.DatasetFile)
}
