package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaultConfig(t *testing.T) {
	c, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	if c.Server.PortMin != 8000 || c.Server.PortMax != 8999 {
		t.Errorf("expected port range 8000-8999, got %d-%d", c.Server.PortMin, c.Server.PortMax)
	}
	if c.Server.SessionTTL != 30*time.Minute {
		t.Errorf("expected session ttl 30m, got %s", c.Server.SessionTTL)
	}
	if c.Server.RequestTimeout != 30*time.Second {
		t.Errorf("expected request timeout 30s, got %s", c.Server.RequestTimeout)
	}
	if c.StartSection() != Demografia {
		t.Errorf("expected start section %s, got %s", Demografia, c.StartSection())
	}
	if !strings.Contains(c.Dashboard.ChartJSURL, "chart.js") {
		t.Errorf("unexpected Chart.js URL %q", c.Dashboard.ChartJSURL)
	}
	if c.Export.ChartWidth != 800 || c.Export.ChartHeight != 450 {
		t.Errorf("expected 800x450, got %dx%d", c.Export.ChartWidth, c.Export.ChartHeight)
	}
}

func TestLoadConfigOrDefault_MissingFile(t *testing.T) {
	c, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("expected defaults, got %v", err)
	}
	if c.Dashboard.Title == "" {
		t.Error("expected default title")
	}
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
server:
  addr: "127.0.0.1:9090"
dashboard:
  default_section: pensioni
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Server.Addr != "127.0.0.1:9090" {
		t.Errorf("expected addr override, got %q", c.Server.Addr)
	}
	if c.StartSection() != Pensioni {
		t.Errorf("expected %s, got %s", Pensioni, c.StartSection())
	}
	if c.Export.ChartWidth != 800 {
		t.Errorf("expected default chart width to survive, got %d", c.Export.ChartWidth)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"inverted port range", func(c *Config) { c.Server.PortMin, c.Server.PortMax = 9000, 8000 }, "port range"},
		{"port out of range", func(c *Config) { c.Server.PortMax = 70000 }, "port range"},
		{"negative ttl", func(c *Config) { c.Server.SessionTTL = -time.Second }, "session_ttl"},
		{"zero chart size", func(c *Config) { c.Export.ChartWidth = 0 }, "chart size"},
		{"unknown section", func(c *Config) { c.Dashboard.DefaultSection = "borsa" }, "unknown section"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := LoadDefaultConfig()
			if err != nil {
				t.Fatal(err)
			}
			tc.modify(c)
			err = c.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("expected error containing %q, got %v", tc.errMsg, err)
			}
		})
	}
}

func TestConfig_ExplicitAddrSkipsPortRange(t *testing.T) {
	c, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	c.Server.Addr = ":8080"
	c.Server.PortMin, c.Server.PortMax = 0, 0
	if err := c.Validate(); err != nil {
		t.Errorf("expected explicit addr to be valid, got %v", err)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	c.Dashboard.DefaultSection = "contenzioso"
	c.Server.SessionTTL = 90 * time.Minute

	if err := SaveConfig(c, path); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "# Dashboard Socio-Economica") {
		t.Error("expected the comment header")
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.StartSection() != Contenzioso {
		t.Errorf("expected %s, got %s", Contenzioso, loaded.StartSection())
	}
	if loaded.Server.SessionTTL != 90*time.Minute {
		t.Errorf("expected 1h30m, got %s", loaded.Server.SessionTTL)
	}
}

func TestConfig_LoadData(t *testing.T) {
	c, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	d, err := c.LoadData()
	if err != nil {
		t.Fatal(err)
	}
	if d.Metadata.Anno != 2024 {
		t.Errorf("expected embedded dataset, got year %d", d.Metadata.Anno)
	}

	c.Dashboard.DatasetFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := c.LoadData(); err == nil {
		t.Error("expected error for missing dataset file")
	}
}
