package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// BuildConfig controls the offline table generation run — not runtime
// game configuration, which is out of scope for this repository.
type BuildConfig struct {
	Output  OutputSettings `hcl:"output,block"`
	Workers WorkerSettings `hcl:"workers,block"`
}

// OutputSettings describes where the generated table file goes.
type OutputSettings struct {
	Dir        string `hcl:"dir,optional"`
	KeepLevel7 bool   `hcl:"keep_level7_mapped,optional"`
	// OverwriteOK must be true for --force to replace an existing table
	// file; it gates the deletion in main, not the config loader itself.
	OverwriteOK bool `hcl:"overwrite,optional"`
}

// WorkerSettings controls the generator's internal parallelism.
type WorkerSettings struct {
	Count int `hcl:"count,optional"`
}

// DefaultBuildConfig mirrors the runtime's own defaults so a missing
// config file behaves exactly like the runtime's own lazy generation.
func DefaultBuildConfig() *BuildConfig {
	return &BuildConfig{
		Output: OutputSettings{
			Dir:         "",
			KeepLevel7:  true,
			OverwriteOK: false,
		},
		Workers: WorkerSettings{
			Count: runtime.GOMAXPROCS(0),
		},
	}
}

// LoadBuildConfig loads generator build configuration from an HCL file,
// falling back to defaults for a missing file or missing attributes.
func LoadBuildConfig(filename string) (*BuildConfig, error) {
	if filename == "" {
		return DefaultBuildConfig(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultBuildConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse build config: %s", diags.Error())
	}

	cfg := *DefaultBuildConfig()
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode build config: %s", diags.Error())
	}

	defaults := DefaultBuildConfig()
	if cfg.Workers.Count == 0 {
		cfg.Workers.Count = defaults.Workers.Count
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaults.Output.Dir
	}
	return &cfg, nil
}
