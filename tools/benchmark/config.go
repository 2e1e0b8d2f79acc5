package main

import (
	"encoding/json"
	"os"
)

// BenchmarkConfig represents the configuration file structure
type BenchmarkConfig struct {
	TemporalHost string `json:"temporal_host"`
	Namespace    string `json:"namespace"`
	TaskQueue    string `json:"task_queue"`
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (*BenchmarkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg BenchmarkConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
