package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultConfigName = ".loxrc.yml"

// config is the optional YAML file read at startup
type config struct {
	LogLevel    string `yaml:"log_level"`
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       *bool  `yaml:"color"`
}

func defaultConfig() *config {
	cfg := &config{
		LogLevel: "warning",
		Prompt:   "> ",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".lox_history")
	}
	return cfg
}

// defaultConfigPath is $HOME/.loxrc.yml, or "" when there is no home
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaultConfigName)
}

// loadConfig reads path over the defaults. A missing file is only an
// error when the user asked for it explicitly.
func loadConfig(path string, explicit bool) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(&file)

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *config) merge(other *config) {
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Prompt != "" {
		c.Prompt = other.Prompt
	}
	if other.HistoryFile != "" {
		c.HistoryFile = other.HistoryFile
	}
	if other.Color != nil {
		c.Color = other.Color
	}
}

// colorEnabled defaults to true, the terminal check happens later
func (c *config) colorEnabled() bool {
	return c.Color == nil || *c.Color
}

func (c *config) level(verbose bool) logrus.Level {
	if verbose {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
