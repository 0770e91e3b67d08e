package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/natevvv/ski-routing/pkg/repository"
	"github.com/natevvv/ski-routing/pkg/trail"
)

// Config represents the complete configuration of the ski routing binaries
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Routing RoutingConfig `yaml:"routing"`
}

// ServerConfig holds server-specific settings
type ServerConfig struct {
	Port         int    `yaml:"port"`
	CorsOrigin   string `yaml:"cors_origin"`
	DebugLevel   int    `yaml:"debug_level"`
	EnableReload bool   `yaml:"enable_reload"`
}

// DataConfig locates the trail data
type DataConfig struct {
	Directory  string `yaml:"directory"`
	NodesFile  string `yaml:"nodes_file"`
	TrailsFile string `yaml:"trails_file"`
	ClosedFile string `yaml:"closed_file"`
	// remote sources, a file without url is only read locally
	NodesURL       string        `yaml:"nodes_url"`
	TrailsURL      string        `yaml:"trails_url"`
	ClosedURL      string        `yaml:"closed_url"`
	RefreshOnStart bool          `yaml:"refresh_on_start"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout"`
}

// RoutingConfig holds the defaults of route requests
type RoutingConfig struct {
	MaxRating     string `yaml:"max_rating"`
	ExcludeClosed bool   `yaml:"exclude_closed"`
	Verify        bool   `yaml:"verify"`
	DebugLevel    int    `yaml:"debug_level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       8081,
			CorsOrigin: "*",
		},
		Data: DataConfig{
			Directory:    ".",
			NodesFile:    repository.DefaultNodesFile,
			TrailsFile:   repository.DefaultTrailsFile,
			ClosedFile:   repository.DefaultClosedFile,
			FetchTimeout: 30 * time.Second,
		},
		Routing: RoutingConfig{
			MaxRating: trail.Easy.String(),
			Verify:    true,
		},
	}
}

// Load reads the configuration file. Fields missing in the file keep their default value
func Load(filename string) (*Config, error) {
	c := DefaultConfig()
	if err := c.DeserializeFromFile(filename); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) DeserializeFromFile(filename string) error {
	fBytes, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("os.ReadFile(%q): %w", filename, err)
	}
	if err := yaml.Unmarshal(fBytes, c); err != nil {
		return fmt.Errorf("yaml.Unmarshal(): %w", err)
	}
	return nil
}

func (c Config) SerializeToFile(filename string) error {
	fBytes, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("yaml.Marshal(): %w", err)
	}
	if err := os.WriteFile(filename, fBytes, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%q, ...): %w", filename, err)
	}
	return nil
}

// Validate checks the values which can not be checked by the yaml decoder
func (c *Config) Validate() error {
	if _, err := c.MaxRating(); err != nil {
		return err
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %v", c.Server.Port)
	}
	if c.Data.NodesFile == "" || c.Data.TrailsFile == "" {
		return fmt.Errorf("nodes and trails file are required")
	}
	return nil
}

// MaxRating is the parsed default difficulty ceiling
func (c *Config) MaxRating() (trail.Rating, error) {
	return trail.ParseRating(c.Routing.MaxRating)
}

// Files returns the names of the data files
func (c *Config) Files() repository.Files {
	return repository.Files{Nodes: c.Data.NodesFile, Trails: c.Data.TrailsFile, Closed: c.Data.ClosedFile}
}

// URLs returns the remote sources of the data files
func (c *Config) URLs() repository.Files {
	return repository.Files{Nodes: c.Data.NodesURL, Trails: c.Data.TrailsURL, Closed: c.Data.ClosedURL}
}
