// Package script loads scripted missions: named lists of simulator input lines.
package script

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_mission.yaml
var defaultMission []byte

// ErrNoSteps is returned for a mission without any steps.
var ErrNoSteps = errors.New("mission has no steps")

// Mission is a scripted sequence of simulator commands.
type Mission struct {
	Name  string   `yaml:"name"`
	Steps []string `yaml:"steps"`
}

// Parse decodes a mission from YAML. Blank steps are dropped.
func Parse(data []byte) (*Mission, error) {
	var m Mission
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse mission: %w", err)
	}

	steps := m.Steps[:0]
	for _, step := range m.Steps {
		if step = strings.TrimSpace(step); step != "" {
			steps = append(steps, step)
		}
	}
	m.Steps = steps

	if len(m.Steps) == 0 {
		return nil, ErrNoSteps
	}
	if m.Name == "" {
		m.Name = "unnamed mission"
	}
	return &m, nil
}

// Load reads a mission file.
func Load(path string) (*Mission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mission %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Default returns the built-in mission: checks, launch, then fly to orbit.
func Default() *Mission {
	m, err := Parse(defaultMission)
	if err != nil {
		panic(fmt.Sprintf("embedded mission is invalid: %v", err))
	}
	return m
}
