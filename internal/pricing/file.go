package pricing

import (
	"fmt"
	"math"
	"os"

	"github.com/alexanderramin/taskora/internal/domain"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a pricing override file.
//
//	lifetime_threshold: 500
//	featured_tiers: [Pro Tribe, Team Tribe]
//	products:
//	  - id: prod_x
//	    name: Pro Tribe
//	    price: 24.99
//	    mode: subscription
type File struct {
	LifetimeThreshold *float64                `yaml:"lifetime_threshold"`
	FeaturedTiers     []string                `yaml:"featured_tiers"`
	Products          []domain.ProductVariant `yaml:"products"`
}

// LoadFile reads a pricing file and layers it over the given defaults.
// Fields absent from the file keep their default values.
func LoadFile(path string, catalog *Catalog, policy Policy) (*Catalog, Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Policy{}, fmt.Errorf("reading pricing file: %w", err)
	}
	return Parse(data, catalog, policy)
}

// Parse decodes pricing YAML and layers it over the given defaults.
func Parse(data []byte, catalog *Catalog, policy Policy) (*Catalog, Policy, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, Policy{}, fmt.Errorf("parsing pricing file: %w", err)
	}

	if f.LifetimeThreshold != nil {
		if t := *f.LifetimeThreshold; t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, Policy{}, fmt.Errorf("lifetime_threshold must be a finite non-negative number, got %v", *f.LifetimeThreshold)
		}
		policy.LifetimeThreshold = *f.LifetimeThreshold
	}
	if f.FeaturedTiers != nil {
		policy.FeaturedTiers = f.FeaturedTiers
	}

	if len(f.Products) > 0 {
		c, err := NewCatalog(f.Products)
		if err != nil {
			return nil, Policy{}, fmt.Errorf("validating pricing products: %w", err)
		}
		catalog = c
	}
	return catalog, policy, nil
}
