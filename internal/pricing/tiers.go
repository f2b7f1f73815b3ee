// Package pricing turns the flat product catalog into the tiers shown on the
// pricing page.
package pricing

import (
	"sort"

	"github.com/alexanderramin/taskora/internal/domain"
)

// DefaultLifetimeThreshold is the display price above which a tier is
// presented as a lifetime deal.
const DefaultLifetimeThreshold = 500.0

// Policy holds the presentation rules that classify tiers.
type Policy struct {
	LifetimeThreshold float64  `yaml:"lifetime_threshold" json:"lifetime_threshold"`
	FeaturedTiers     []string `yaml:"featured_tiers" json:"featured_tiers"`
}

// DefaultPolicy returns the shipped presentation policy.
func DefaultPolicy() Policy {
	return Policy{
		LifetimeThreshold: DefaultLifetimeThreshold,
		FeaturedTiers:     []string{"Pro Tribe", "Team Tribe"},
	}
}

func (p Policy) featured(name string) bool {
	for _, f := range p.FeaturedTiers {
		if f == name {
			return true
		}
	}
	return false
}

// DisplayTier is one card on the pricing page: the cheapest variant of a
// named tier plus its alternatives.
type DisplayTier struct {
	Name               string                  `json:"name"`
	Description        string                  `json:"description"`
	DisplayVariant     domain.ProductVariant   `json:"display_variant"`
	Alternatives       []domain.ProductVariant `json:"alternatives"`
	HasDiscount        bool                    `json:"has_discount"`
	DiscountPercentage *int                    `json:"discount_percentage"`
	IsFree             bool                    `json:"is_free"`
	IsLifetime         bool                    `json:"is_lifetime"`
	IsPopular          bool                    `json:"is_popular"`
}

// ResolveDisplayTiers groups variants by name, in order of first appearance,
// and picks the cheapest variant of each group for display. Variants with equal
// prices keep their input order.
func ResolveDisplayTiers(products []domain.ProductVariant, policy Policy) ([]DisplayTier, error) {
	var order []string
	groups := make(map[string][]domain.ProductVariant)
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, seen := groups[p.Name]; !seen {
			order = append(order, p.Name)
		}
		groups[p.Name] = append(groups[p.Name], p)
	}

	tiers := make([]DisplayTier, 0, len(order))
	for _, name := range order {
		tiers = append(tiers, resolveGroup(name, groups[name], policy))
	}
	return tiers, nil
}

func resolveGroup(name string, variants []domain.ProductVariant, policy Policy) DisplayTier {
	sorted := make([]domain.ProductVariant, len(variants))
	copy(sorted, variants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	display := sorted[0]
	maxPrice := sorted[len(sorted)-1].Price

	tier := DisplayTier{
		Name:           name,
		Description:    display.Description,
		DisplayVariant: display,
		Alternatives:   append([]domain.ProductVariant{}, sorted[1:]...),
		HasDiscount:    len(sorted) > 1,
		IsFree:         display.Price == 0,
		IsLifetime:     display.Price > policy.LifetimeThreshold,
		IsPopular:      policy.featured(name),
	}
	if tier.HasDiscount {
		tier.DiscountPercentage = DiscountPercentage(maxPrice, display.Price)
	}
	return tier
}

// DiscountPercentage is the saving of current relative to original, computed
// on whole cents and rounded half up. Nil when there is no meaningful
// discount to show.
func DiscountPercentage(original, current float64) *int {
	oc, cc := domain.Cents(original), domain.Cents(current)
	if cc == 0 || oc == cc || oc <= 0 {
		return nil
	}
	pct := domain.PercentHalfUp(oc-cc, oc)
	return &pct
}
