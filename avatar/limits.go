package avatar

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Limits holds the data tables the rule sets are built from.
type Limits struct {
	// Triangles is the triangle budget per asset part, keyed by part name
	// (for example "outfit_bottom").
	Triangles map[string]int64 `yaml:"triangles"`
	// TextureFileSizeMB is the storage ceiling of a texture map.
	TextureFileSizeMB int64 `yaml:"texture_file_size_mb"`
	// TextureGPUSizeMB is the ceiling of a fully decompressed texture map.
	TextureGPUSizeMB int64 `yaml:"texture_gpu_size_mb"`
	// MeshSizeKB is the byte size ceiling of a mesh, in kB.
	MeshSizeKB int64 `yaml:"mesh_size_kb"`
}

// parts lists the known asset parts in declaration order.
var parts = []string{
	"beard",
	"body",
	"body_custom",
	"eyebrow",
	"eye",
	"facewear",
	"glasses",
	"hair",
	"head",
	"head_custom",
	"headwear",
	"outfit_bottom",
	"outfit_top",
	"outfit_footwear",
	"halfbody_shirt",
	"teeth",
}

// DefaultLimits returns the budgets shipped with the rule sets.
func DefaultLimits() Limits {
	return Limits{
		Triangles: map[string]int64{
			"beard":           1000,
			"body":            14000,
			"body_custom":     14000,
			"eyebrow":         60,
			"eye":             60,
			"facewear":        900,
			"glasses":         1000,
			"hair":            3000,
			"head":            4574,
			"head_custom":     6000,
			"headwear":        2500,
			"outfit_bottom":   6000,
			"outfit_top":      6000,
			"outfit_footwear": 2000,
			"halfbody_shirt":  1000,
			"teeth":           1000,
		},
		TextureFileSizeMB: 2,
		TextureGPUSizeMB:  6,
		MeshSizeKB:        512,
	}
}

// LoadLimits reads a YAML file over DefaultLimits.
func LoadLimits(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("failed to read limits file: %w", err)
	}
	return ParseLimits(data)
}

// ParseLimits decodes YAML over DefaultLimits: parts listed in the document
// replace the default budget, other parts keep it. The result is validated.
func ParseLimits(data []byte) (Limits, error) {
	l := DefaultLimits()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Limits{}, fmt.Errorf("failed to parse limits: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Limits{}, err
	}
	return l, nil
}

// Validate checks that every limit is positive.
func (l Limits) Validate() error {
	if len(l.Triangles) == 0 {
		return fmt.Errorf("triangles: at least one part is required")
	}
	for _, p := range l.Parts() {
		if l.Triangles[p] <= 0 {
			return fmt.Errorf("triangles.%s must be positive, got %d", p, l.Triangles[p])
		}
	}
	if l.TextureFileSizeMB <= 0 {
		return fmt.Errorf("texture_file_size_mb must be positive")
	}
	if l.TextureGPUSizeMB <= 0 {
		return fmt.Errorf("texture_gpu_size_mb must be positive")
	}
	if l.MeshSizeKB <= 0 {
		return fmt.Errorf("mesh_size_kb must be positive")
	}
	return nil
}

// Parts lists the parts with a triangle budget: known parts first in their
// usual order, then any other parts sorted by name.
func (l Limits) Parts() []string {
	out := make([]string, 0, len(l.Triangles))
	known := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		known[p] = struct{}{}
		if _, ok := l.Triangles[p]; ok {
			out = append(out, p)
		}
	}
	var extra []string
	for p := range l.Triangles {
		if _, ok := known[p]; !ok {
			extra = append(extra, p)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
