package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the run flags in a YAML file. Unset fields keep the flag
// defaults; flags given on the command line override the file.
//
//	sample_sizes: [100, 1000, 10000]
//	attempts: 5
//	radius: 1
//	low: 0
//	high: 1
//	seed: 42
//	encoding: gorilla
//	compression: zstd
type fileConfig struct {
	SampleSizes []int    `yaml:"sample_sizes"`
	Attempts    *int     `yaml:"attempts"`
	Radius      *float64 `yaml:"radius"`
	Low         *float64 `yaml:"low"`
	High        *float64 `yaml:"high"`
	Seed        *uint64  `yaml:"seed"`
	Encoding    string   `yaml:"encoding"`
	Compression string   `yaml:"compression"`
}

func loadConfigFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
