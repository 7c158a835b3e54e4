package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"antlauncher/internal/launcher"
)

// Preset is a saved launch configuration: which binary to run, where its
// results go, and the simulation parameter values. Presets are YAML files
// the user saves and loads from the GUI or passes to the CLI.
type Preset struct {
	Executable string            `yaml:"executable"`
	OutputCSV  string            `yaml:"output_csv"`
	ExtraArgs  string            `yaml:"extra_args,omitempty"`
	Params     map[string]string `yaml:"params"`
}

// Default returns a preset with every parameter at its default value and
// the conventional output file name.
func Default() *Preset {
	params := make(map[string]string)
	for _, s := range launcher.Spec() {
		params[s.Name] = s.Default
	}
	return &Preset{
		OutputCSV: "ground_data.csv",
		Params:    params,
	}
}

// Load reads and parses a preset file. Parameter names the launcher does not
// recognize are rejected, so a typo in a hand-edited preset fails loudly
// instead of silently dropping the flag. Parameters absent from the file
// keep their defaults.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var loaded Preset
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse preset YAML: %w", err)
	}

	known := make(map[string]bool)
	for _, s := range launcher.Spec() {
		known[s.Name] = true
	}
	for name := range loaded.Params {
		if !known[name] {
			return nil, fmt.Errorf("unknown parameter in preset: %s", name)
		}
	}

	p := Default()
	if loaded.Executable != "" {
		p.Executable = loaded.Executable
	}
	if loaded.OutputCSV != "" {
		p.OutputCSV = loaded.OutputCSV
	}
	p.ExtraArgs = loaded.ExtraArgs
	for name, value := range loaded.Params {
		p.Params[name] = value
	}

	return p, nil
}

// Save writes the preset as YAML.
func (p *Preset) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to serialize preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preset file: %w", err)
	}
	return nil
}

// ParamList returns the preset's parameters in the launcher's canonical
// order, ready for command building.
func (p *Preset) ParamList() []launcher.Param {
	specs := launcher.Spec()
	params := make([]launcher.Param, len(specs))
	for i, s := range specs {
		value, ok := p.Params[s.Name]
		if !ok {
			value = s.Default
		}
		params[i] = launcher.Param{Name: s.Name, Value: value}
	}
	return params
}
