// Package yaml loads judge registry overrides from YAML files.
package yaml

import (
	"fmt"
	"os"
	"strings"

	tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"
	yamllib "gopkg.in/yaml.v3"
)

// entry mirrors one judge definition in a registry file:
//
//	deepseek:
//	  model: deepseek/deepseek-chat-v3.1
//	  max_tokens: 4000
type entry struct {
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// LoadRegistry reads a registry file and merges its entries over base.
// Entries may add new judges or override existing ones; a missing
// max_tokens falls back to the default cap. base is left unmodified.
func LoadRegistry(path string, base tifbench.Registry) (tifbench.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries map[string]entry
	if err := yamllib.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("yaml: parse %s: %w", path, err)
	}

	merged := make(tifbench.Registry, len(base)+len(entries))
	for id, spec := range base {
		merged[id] = spec
	}
	for id, e := range entries {
		if e.Model == "" {
			return nil, fmt.Errorf("yaml: judge %q has no model", id)
		}
		spec := tifbench.JudgeSpec{ModelRef: e.Model, MaxTokens: e.MaxTokens}
		if spec.MaxTokens == 0 {
			spec.MaxTokens = tifbench.DefaultMaxTokens
		}
		merged[strings.ToLower(id)] = spec
	}

	return merged, nil
}
