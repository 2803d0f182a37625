// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: YAML run configuration for the frfinder CLI.
//
// Example:
//
//	search:
//	  alpha: 0.8
//	  kappa: 10
//	  minSup: 2
//	  caseCtrl: true
//	  workers: 8
//	graph:
//	  path: graphs/hla.yaml
//	  labels: graphs/hla.labels.tsv
//	output:
//	  prefix: out/hla
//	logging:
//	  level: debug
//	  format: json
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/frfinder/finder"
)

// ErrInvalidConfig indicates a configuration file that cannot be decoded or
// fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the whole configuration file. Every section is optional.
type Config struct {
	Search  Search  `yaml:"search"`
	Graph   Graph   `yaml:"graph"`
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

// Search mirrors finder.Params plus the run options. Alpha and Kappa are
// pointers so that "absent" differs from zero; the CLI may supply them.
type Search struct {
	Alpha     *float64 `yaml:"alpha" validate:"omitempty,gte=0,lte=1"`
	Kappa     *int     `yaml:"kappa" validate:"omitempty,gte=0"`
	MinSup    int      `yaml:"minSup" validate:"gte=0"`
	MaxSup    int      `yaml:"maxSup" validate:"gte=0"` // 0: unbounded
	MinSize   int      `yaml:"minSize" validate:"gte=0"`
	MinLen    int      `yaml:"minLen" validate:"gte=0"`
	CaseCtrl  bool     `yaml:"caseCtrl"`
	UseRC     bool     `yaml:"useRC"`
	Workers   int      `yaml:"workers" validate:"gte=0"`
	MaxRounds int      `yaml:"maxRounds" validate:"gte=0"`
}

// Graph names the input files.
type Graph struct {
	Path        string `yaml:"path"`
	Labels      string `yaml:"labels"`
	StrictPaths bool   `yaml:"strictPaths"`
}

// Output names the output files. Empty fields disable the output.
type Output struct {
	Prefix     string `yaml:"prefix"`
	Metrics    string `yaml:"metrics"`
	Checkpoint string `yaml:"checkpoint"`
}

// Logging selects the log level and format.
type Logging struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

var configValidate = validator.New()

// Default returns the configuration used when no file is given: filter
// bounds as in finder.DefaultParams, text logs at info, no alpha or kappa.
func Default() Config {
	return Config{
		Search: Search{
			MinSup:  1,
			MaxSup:  math.MaxInt,
			MinSize: 1,
			MinLen:  1,
		},
		Logging: Logging{Level: "info", Format: "text"},
	}
}

// Parse decodes a configuration from r over Default(). Unknown keys are
// rejected; an empty document yields Default().
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("Parse: %w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load is Parse on the named file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}

	return cfg, nil
}

// Validate checks field ranges. It does not require Alpha or Kappa; Params
// does.
func (c Config) Validate() error {
	if c.Search.Alpha != nil && math.IsNaN(*c.Search.Alpha) {
		return fmt.Errorf("%w: alpha is NaN", ErrInvalidConfig)
	}
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Params converts the search section into finder.Params.
//
// Errors:
//   - ErrInvalidConfig when alpha or kappa is unset.
//   - finder.ErrInvalidParams when the values fail finder validation.
func (c Config) Params() (finder.Params, error) {
	s := c.Search
	if s.Alpha == nil || s.Kappa == nil {
		return finder.Params{}, fmt.Errorf("Params: alpha and kappa are required: %w", ErrInvalidConfig)
	}
	p := finder.DefaultParams(*s.Alpha, *s.Kappa)
	p.MinSup = s.MinSup
	if s.MaxSup > 0 {
		p.MaxSup = s.MaxSup
	}
	p.MinSize, p.MinLen = s.MinSize, s.MinLen
	p.CaseCtrl, p.UseRC = s.CaseCtrl, s.UseRC
	if err := p.Validate(); err != nil {
		return finder.Params{}, fmt.Errorf("Params: %w", err)
	}

	return p, nil
}

// Options converts the run options of the search section into finder
// options. Zero values keep the finder defaults.
func (c Config) Options() []finder.Option {
	var opts []finder.Option
	if c.Search.Workers > 0 {
		opts = append(opts, finder.WithWorkers(c.Search.Workers))
	}
	if c.Search.MaxRounds > 0 {
		opts = append(opts, finder.WithMaxRounds(c.Search.MaxRounds))
	}

	return opts
}
