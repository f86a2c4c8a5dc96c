/*
# Module: cmd/sparql/config.go
Configuration handling for the mini-sparql CLI.

Manages loading and validation of configuration from files and environment.

## Linked Modules
- [root](./root.go) - Root command

## Tags
cli, config, viper

## Exports
Config, initConfig, loadConfig, saveDefaultConfig

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#config.go> a code:Module ;

	code:name "cmd/sparql/config.go" ;
	code:description "Configuration handling for the mini-sparql CLI" ;
	code:language "go" ;
	code:layer "cli" ;
	code:linksTo <./root.go> ;
	code:exports <#Config>, <#initConfig>, <#loadConfig>, <#saveDefaultConfig> ;
	code:tags "cli", "config", "viper" .

<!-- End LinkedDoc RDF -->
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents mini-sparql configuration
type Config struct {
	Version int          `yaml:"version"`
	Dataset string       `yaml:"dataset"`
	Query   QueryConfig  `yaml:"query"`
	Server  ServerConfig `yaml:"server"`
}

// QueryConfig configures query behavior
type QueryConfig struct {
	DefaultLimit int           `yaml:"default_limit"`
	Timeout      time.Duration `yaml:"timeout"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	CORS            bool          `yaml:"cors"`
	Cache           bool          `yaml:"cache"`
	CacheMaxEntries int           `yaml:"cache_max_entries"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Dataset: "dataset.ttl",
		Query: QueryConfig{
			DefaultLimit: 100,
			Timeout:      30 * time.Second,
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			CORS:            true,
			Cache:           true,
			CacheMaxEntries: 1000,
			CacheTTL:        5 * time.Minute,
		},
	}
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".sparqlrc")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig loads configuration from file or returns default
func loadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// saveDefaultConfig saves default configuration to file
func saveDefaultConfig(configPath string) error {
	config := DefaultConfig()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
