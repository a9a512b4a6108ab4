package store

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var embeddedRegions []byte

type catalogFile struct {
	Regions []Region `yaml:"regions"`
}

// Catalog is the immutable region table loaded once at startup.
// Callers always receive copies, so the table cannot be mutated through it.
type Catalog struct {
	regions []Region
	byName  map[string]int
}

// NewCatalog builds a catalog from regions, keeping their order.
// Names are trimmed and must be non-empty and unique (case-insensitive). Indicators
// must be finite; values outside 0-100 are kept as given.
func NewCatalog(regions []Region) (*Catalog, error) {
	c := &Catalog{
		regions: make([]Region, len(regions)),
		byName:  make(map[string]int, len(regions)),
	}
	for i, r := range regions {
		r.Name = strings.TrimSpace(r.Name)
		if r.Name == "" {
			return nil, fmt.Errorf("region %d: %w", i, ErrEmptyName)
		}
		if err := checkIndicators(r); err != nil {
			return nil, err
		}
		key := strings.ToLower(r.Name)
		if _, ok := c.byName[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
		}
		c.byName[key] = i
		c.regions[i] = r
	}
	return c, nil
}

func checkIndicators(r Region) error {
	for _, ind := range []struct {
		key string
		v   float64
	}{{"p", r.P}, {"g", r.G}, {"r", r.R}, {"h", r.H}} {
		if math.IsNaN(ind.v) || math.IsInf(ind.v, 0) {
			return fmt.Errorf("region %s: %s=%v: %w", r.Name, ind.key, ind.v, ErrInvalidIndicator)
		}
	}
	return nil
}

// ParseCatalog decodes a YAML region table.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse regions: %w", err)
	}
	return NewCatalog(f.Regions)
}

// DefaultCatalog returns the built-in seven-region table.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(embeddedRegions)
	if err != nil {
		panic(fmt.Sprintf("embedded regions.yaml: %v", err))
	}
	return c
}

// LoadCatalog reads the region table from path, or the built-in table when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read regions: %w", err)
	}
	return ParseCatalog(data)
}

func (c *Catalog) ListRegions() []Region {
	out := make([]Region, len(c.regions))
	copy(out, c.regions)
	return out
}

func (c *Catalog) GetRegion(name string) (*Region, error) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRegionNotFound, name)
	}
	r := c.regions[i]
	return &r, nil
}

func (c *Catalog) Len() int {
	return len(c.regions)
}
