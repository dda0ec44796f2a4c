// ABOUTME: Benchmark profile loading: defaults, YAML file overlay, CLI overlay, validation
// ABOUTME: YAML-based configuration using gopkg.in/yaml.v3; unknown keys are rejected

// Package config loads the profile that drives a callme-bench run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile is wrapped by every Validate failure.
var ErrInvalidProfile = errors.New("config: invalid profile")

// Output formats.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
)

// Profile holds the settings of one benchmark run.
type Profile struct {
	// Iterations is the number of calls each scenario times.
	Iterations int `yaml:"iterations,omitempty"`
	// Subscribers lists the event sizes the event scenarios are run with.
	Subscribers []int `yaml:"subscribers,omitempty"`
	// Run is a fuzzy filter over scenario names; empty selects every scenario.
	Run string `yaml:"run,omitempty"`
	// Jobs bounds how many scenario groups run at once.
	Jobs     int    `yaml:"jobs,omitempty"`
	Format   string `yaml:"format,omitempty"`
	Frame    string `yaml:"frame,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Defaults returns the built-in profile.
func Defaults() Profile {
	return Profile{
		Iterations:  10_000_000,
		Subscribers: []int{10},
		Jobs:        1,
		Format:      FormatTable,
		Frame:       "line",
		LogLevel:    "info",
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path yields the defaults. ${VAR} references in string fields are expanded
// before the result is validated.
func Load(path string) (*Profile, error) {
	p := Defaults()
	source := "defaults"
	if path != "" {
		source = path
		file, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		p = Merge(p, *file)
	}
	ResolveEnvVars(&p)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", source, err)
	}
	return &p, nil
}

func loadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &p, nil
}

// Merge returns base with every non-zero field of overlay applied.
func Merge(base, overlay Profile) Profile {
	result := base
	result.Subscribers = slices.Clone(base.Subscribers)

	if overlay.Iterations != 0 {
		result.Iterations = overlay.Iterations
	}
	if len(overlay.Subscribers) > 0 {
		result.Subscribers = slices.Clone(overlay.Subscribers)
	}
	if overlay.Run != "" {
		result.Run = overlay.Run
	}
	if overlay.Jobs != 0 {
		result.Jobs = overlay.Jobs
	}
	if overlay.Format != "" {
		result.Format = overlay.Format
	}
	if overlay.Frame != "" {
		result.Frame = overlay.Frame
	}
	if overlay.LogLevel != "" {
		result.LogLevel = overlay.LogLevel
	}
	return result
}

// Validate reports the first invalid field.
func (p *Profile) Validate() error {
	switch {
	case p.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidProfile, p.Iterations)
	case p.Jobs <= 0:
		return fmt.Errorf("%w: jobs must be positive, got %d", ErrInvalidProfile, p.Jobs)
	case len(p.Subscribers) == 0:
		return fmt.Errorf("%w: at least one subscriber count is required", ErrInvalidProfile)
	case p.Format != FormatTable && p.Format != FormatMarkdown:
		return fmt.Errorf("%w: format must be %q or %q, got %q", ErrInvalidProfile, FormatTable, FormatMarkdown, p.Format)
	}
	for _, n := range p.Subscribers {
		if n <= 0 {
			return fmt.Errorf("%w: subscriber counts must be positive, got %d", ErrInvalidProfile, n)
		}
	}
	return nil
}
