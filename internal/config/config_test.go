// ABOUTME: Tests for profile loading, merge precedence and validation
// ABOUTME: Uses temp YAML files; env expansion tests use t.Setenv and so run serially

package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithoutPath(t *testing.T) {
	t.Parallel()

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Defaults()
	if p.Iterations != want.Iterations || p.Format != want.Format || !slices.Equal(p.Subscribers, want.Subscribers) {
		t.Errorf("Load(\"\") = %+v, want %+v", *p, want)
	}
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := writeProfile(t, `
iterations: 1000
subscribers: [1, 5, 50]
run: event
`)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Iterations != 1000 {
		t.Errorf("Iterations = %d, want 1000", p.Iterations)
	}
	if !slices.Equal(p.Subscribers, []int{1, 5, 50}) {
		t.Errorf("Subscribers = %v", p.Subscribers)
	}
	if p.Run != "event" {
		t.Errorf("Run = %q, want %q", p.Run, "event")
	}
	if p.Jobs != 1 || p.Format != FormatTable {
		t.Errorf("unset fields should keep defaults: jobs=%d format=%q", p.Jobs, p.Format)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	p, err := Load(writeProfile(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Iterations != Defaults().Iterations {
		t.Errorf("Iterations = %d", p.Iterations)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"unknown key", "iteration: 5\n", false},
		{"bad yaml", "iterations: [\n", false},
		{"negative iterations", "iterations: -1\n", true},
		{"bad format", "format: html\n", true},
		{"zero subscriber count", "subscribers: [0]\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeProfile(t, tt.body))
			if err == nil {
				t.Fatal("Load should fail")
			}
			if got := errors.Is(err, ErrInvalidProfile); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidProfile) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("BENCH_FILTER", "owning")

	p, err := Load(writeProfile(t, "run: ${BENCH_FILTER}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Run != "owning" {
		t.Errorf("Run = %q, want %q", p.Run, "owning")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := Defaults()
	overlay := Profile{Iterations: 7, Format: FormatMarkdown}
	got := Merge(base, overlay)

	if got.Iterations != 7 || got.Format != FormatMarkdown {
		t.Errorf("overlay not applied: %+v", got)
	}
	if got.Jobs != base.Jobs || got.Frame != base.Frame {
		t.Errorf("zero overlay fields should keep base: %+v", got)
	}

	got.Subscribers[0] = 99
	if base.Subscribers[0] == 99 {
		t.Error("Merge should not alias base.Subscribers")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Profile)
		ok     bool
	}{
		{"defaults", func(*Profile) {}, true},
		{"markdown", func(p *Profile) { p.Format = FormatMarkdown }, true},
		{"zero jobs", func(p *Profile) { p.Jobs = 0 }, false},
		{"no subscribers", func(p *Profile) { p.Subscribers = nil }, false},
		{"zero iterations", func(p *Profile) { p.Iterations = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Defaults()
			tt.mutate(&p)
			err := p.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidProfile", err)
			}
		})
	}
}
