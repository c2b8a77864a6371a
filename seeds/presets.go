package seeds

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Presets holds named seed lists grouped by grid key, as in
//
//	presets:
//	  6x6_K3:
//	    runA: [[1, 1], [4, 1], [2, 4]]
type Presets struct {
	Presets map[string]map[string][][2]int `yaml:"presets"`
}

// ParsePresets decodes a YAML presets document.
func ParsePresets(data []byte) (*Presets, error) {
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("ParsePresets: %w", err)
	}
	if p.Presets == nil {
		p.Presets = map[string]map[string][][2]int{}
	}
	return &p, nil
}

// LoadPresets reads and decodes a YAML presets file.
func LoadPresets(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadPresets: %w", err)
	}
	return ParsePresets(data)
}

// Lookup returns the coordinates stored under "<grid>:<run>".
func (p *Presets) Lookup(key string) ([][2]int, error) {
	grid, run, ok := strings.Cut(key, ":")
	if !ok || grid == "" || run == "" {
		return nil, fmt.Errorf("Lookup(%q): %w", key, ErrBadPresetKey)
	}
	runs, ok := p.Presets[grid]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): grid %q: %w", key, grid, ErrPresetNotFound)
	}
	coords, ok := runs[run]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): run %q: %w", key, run, ErrPresetNotFound)
	}
	out := make([][2]int, len(coords))
	copy(out, coords)
	return out, nil
}

// Set stores coordinates under "<grid>:<run>".
func (p *Presets) Set(key string, coords [][2]int) error {
	grid, run, ok := strings.Cut(key, ":")
	if !ok || grid == "" || run == "" {
		return fmt.Errorf("Set(%q): %w", key, ErrBadPresetKey)
	}
	if p.Presets == nil {
		p.Presets = map[string]map[string][][2]int{}
	}
	if p.Presets[grid] == nil {
		p.Presets[grid] = map[string][][2]int{}
	}
	p.Presets[grid][run] = append([][2]int(nil), coords...)
	return nil
}

// Keys lists every "<grid>:<run>" key in sorted order.
func (p *Presets) Keys() []string {
	var keys []string
	for grid, runs := range p.Presets {
		for run := range runs {
			keys = append(keys, grid+":"+run)
		}
	}
	sort.Strings(keys)
	return keys
}

// Marshal encodes the document back to YAML.
func (p *Presets) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("Presets.Marshal: %w", err)
	}
	return out, nil
}
