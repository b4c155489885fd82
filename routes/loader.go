package routes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

/* Loader reads the relay file (server section + discord route list)
 * and turns it into a validated, immutable Table
 */

// Config represents the structure of the relay file
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Discord []RouteConfig `yaml:"discord"`
}

// ServerConfig is the listen address of the relay
type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// Addr returns host:port, defaulting the port to 8080
func (s ServerConfig) Addr() string {
	port := s.Port
	if port == "" {
		port = "8080"
	}
	return s.Host + ":" + port
}

// RouteConfig represents a single route in the YAML file
type RouteConfig struct {
	Name    string `yaml:"name"`
	Path    string `yaml:"path"`
	URL     string `yaml:"url"`
	Logging *bool  `yaml:"logging"` // Optional, default false
}

// Loader holds the loaded relay file
type Loader struct {
	server ServerConfig
	table  *Table
}

// NewLoader creates a new route loader with an empty table
func NewLoader() *Loader {
	return &Loader{
		table: &Table{},
	}
}

// Load reads and parses the relay file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading routes file: %w", err)
	}
	return l.Parse(data)
}

// Parse builds the table from YAML content
func (l *Loader) Parse(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parsing routes YAML: %w", err)
	}

	routes := make([]Route, 0, len(config.Discord))
	for _, rc := range config.Discord {
		logging := false
		if rc.Logging != nil {
			logging = *rc.Logging
		}
		routes = append(routes, Route{
			Name:           rc.Name,
			Path:           rc.Path,
			TargetURL:      rc.URL,
			LoggingEnabled: logging,
		})
	}

	table, err := NewTable(routes...)
	if err != nil {
		return fmt.Errorf("validating route: %w", err)
	}

	l.server = config.Server
	l.table = table
	return nil
}

// Server returns the server section of the relay file
func (l *Loader) Server() ServerConfig {
	return l.server
}

// Table returns the loaded route table
func (l *Loader) Table() *Table {
	return l.table
}
