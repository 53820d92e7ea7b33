package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Branch is a physical service location. The set is fixed configuration for a
// run, never generated.
type Branch struct {
	ID     string `yaml:"branch_id"`
	Code   string `yaml:"branch_code"`
	Number int    `yaml:"branch_number"`
}

// Service is one catalog entry with its unit price.
type Service struct {
	ID    string  `yaml:"service_id"`
	Price float64 `yaml:"base_price"`
}

// Catalog bundles the branch set and the service price list. Order matters:
// random picks index into these slices, so a reordered catalog changes a
// seeded run.
type Catalog struct {
	Branches []Branch  `yaml:"branches"`
	Services []Service `yaml:"services"`
}

// Default returns the built-in branches and the 9-entry service catalog that
// mirror the production app.
func Default() *Catalog {
	return &Catalog{
		Branches: []Branch{
			{ID: "SMVAL-B-NCR", Code: "SMVAL", Number: 2},
			{ID: "VAL-B-NCR", Code: "VAL", Number: 3},
			{ID: "SMGRA-B-NCR", Code: "SMGRA", Number: 4},
		},
		Services: []Service{
			{ID: "SERVICE-1", Price: 325.0},
			{ID: "SERVICE-2", Price: 450.0},
			{ID: "SERVICE-3", Price: 575.0},
			{ID: "SERVICE-4", Price: 125.0},
			{ID: "SERVICE-5", Price: 125.0},
			{ID: "SERVICE-6", Price: 225.0},
			{ID: "SERVICE-7", Price: 150.0},
			{ID: "SERVICE-8", Price: 275.0},
			{ID: "SERVICE-9", Price: 375.0},
		},
	}
}

// Load reads a catalog override from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the catalog is usable for generation.
func (c *Catalog) Validate() error {
	if len(c.Branches) == 0 {
		return fmt.Errorf("catalog has no branches")
	}
	if len(c.Services) == 0 {
		return fmt.Errorf("catalog has no services")
	}

	seen := make(map[string]bool)
	for _, b := range c.Branches {
		if b.ID == "" || b.Code == "" {
			return fmt.Errorf("branch %q missing id or code", b.ID)
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate branch id %s", b.ID)
		}
		seen[b.ID] = true
	}

	seen = make(map[string]bool)
	for _, s := range c.Services {
		if s.ID == "" {
			return fmt.Errorf("service with empty id")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate service id %s", s.ID)
		}
		seen[s.ID] = true
		if s.Price <= 0 {
			return fmt.Errorf("service %s has non-positive price", s.ID)
		}
	}
	return nil
}
