package pricing

import "github.com/alexanderramin/taskora/internal/domain"

// Catalog is an ordered, read-only list of purchasable variants.
type Catalog struct {
	products []domain.ProductVariant
}

// NewCatalog validates every variant and returns a catalog over a copy of them.
func NewCatalog(products []domain.ProductVariant) (*Catalog, error) {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	cp := make([]domain.ProductVariant, len(products))
	copy(cp, products)
	return &Catalog{products: cp}, nil
}

// Products returns a copy of the variants in catalog order.
func (c *Catalog) Products() []domain.ProductVariant {
	out := make([]domain.ProductVariant, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ByPriceID(priceID string) (domain.ProductVariant, bool) {
	for _, p := range c.products {
		if p.PriceID == priceID {
			return p, true
		}
	}
	return domain.ProductVariant{}, false
}

func (c *Catalog) ByID(id string) (domain.ProductVariant, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.ProductVariant{}, false
}

// ByName returns every variant sharing the given tier name.
func (c *Catalog) ByName(name string) []domain.ProductVariant {
	var out []domain.ProductVariant
	for _, p := range c.products {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}

// Plan is the tier a user is currently on.
type Plan struct {
	Name    string                    `json:"name"`
	Status  domain.SubscriptionStatus `json:"status"`
	Product *domain.ProductVariant    `json:"product,omitempty"`
}

const (
	FreePlanName    = "Free"
	UnknownPlanName = "Unknown Plan"
)

// ActivePlan resolves a subscription record against the catalog. A missing
// subscription or price means the free plan.
func ActivePlan(sub *domain.Subscription, c *Catalog) Plan {
	if sub == nil || sub.PriceID == "" {
		return Plan{Name: FreePlanName, Status: domain.SubscriptionActive}
	}
	p, ok := c.ByPriceID(sub.PriceID)
	if !ok {
		return Plan{Name: UnknownPlanName, Status: sub.Status}
	}
	return Plan{Name: p.Name, Status: sub.Status, Product: &p}
}

// DefaultCatalog returns the shipped product catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{products: defaultProducts()}
}

func defaultProducts() []domain.ProductVariant {
	return []domain.ProductVariant{
		{
			ID:          "prod_T1uvZYUKIplM9r",
			PriceID:     "price_1S5r5iQ4VdcoVfX8PXQNtwnR",
			Name:        "Loner",
			Description: "Perfect for individuals who want to join tribes",
			Price:       0,
			Currency:    "EUR",
			Mode:        domain.ModeSubscription,
			Features: []string{
				"Join unlimited tribes",
				"Basic task management",
				"Mobile app access",
				"Email support",
				"Community access",
			},
		},
		{
			ID:          "prod_T3TZ8EU6OyqZyD",
			PriceID:     "price_1S7MceQ4VdcoVfX8K7UoXtTg",
			Name:        "Starter Tribe",
			Description: "Basic tribe features for small teams",
			Price:       9.99,
			Currency:    "EUR",
			Mode:        domain.ModeSubscription,
			TrialDays:   7,
			Features: []string{
				"Create up to 3 tribes",
				"Up to 10 members per tribe",
				"Basic analytics",
				"Task templates",
				"Email notifications",
				"Priority support",
			},
		},
		{
			ID:          "prod_T1uwWQcR6B6YDL",
			PriceID:     "price_1S7I7cQ4VdcoVfX8XdX8vtNM",
			Name:        "Starter Tribe",
			Description: "Basic tribe features for small teams",
			Price:       99.99,
			Currency:    "EUR",
			Mode:        domain.ModePayment,
			Features: []string{
				"Everything in basic Starter Tribe",
				"Premium templates",
				"Advanced integrations",
				"Priority feature requests",
				"Dedicated support",
				"Custom onboarding",
			},
		},
		{
			ID:          "prod_T1uxOeNRi5trMP",
			PriceID:     "price_1S5r7TQ4VdcoVfX8MOrplW47",
			Name:        "Pro Tribe",
			Description: "Full AI access with advanced features",
			Price:       24.99,
			Currency:    "EUR",
			Mode:        domain.ModeSubscription,
			TrialDays:   7,
			Features: []string{
				"Unlimited tribes",
				"AI-powered task suggestions",
				"Advanced analytics & insights",
				"Custom integrations",
				"Advanced permissions",
				"Video call integration",
				"Custom branding",
			},
		},
		{
			ID:          "prod_T3TYHBGcJoIdG4",
			PriceID:     "price_1S7MayQ4VdcoVfX8X3fNU8oU",
			Name:        "Pro Tribe",
			Description: "Full AI access with advanced features",
			Price:       249.99,
			Currency:    "EUR",
			Mode:        domain.ModePayment,
			Features: []string{
				"Everything in basic Pro Tribe",
				"Advanced AI automation",
				"Smart task prioritization",
				"Predictive analytics",
				"Custom AI models",
				"Advanced reporting",
				"White-label options",
			},
		},
		{
			ID:          "prod_T3TWwy9d7Jn2XR",
			PriceID:     "price_1S7MZaQ4VdcoVfX8cqz2dH8V",
			Name:        "Team Tribe",
			Description: "Best for Large Teams",
			Price:       59.99,
			Currency:    "EUR",
			Mode:        domain.ModeSubscription,
			TrialDays:   7,
			Features: []string{
				"Create up to 5 tribes",
				"Up to 50 members per tribe",
				"Sub-tribes (departments or project groups)",
				"AI-powered task suggestions",
				"Priority support",
				"Tribe-level insights",
			},
		},
		{
			ID:          "prod_T1uycP3ZjkkRCT",
			PriceID:     "price_1S7I6UQ4VdcoVfX8teEkzia9",
			Name:        "Team Tribe",
			Description: "Enterprise features for large teams",
			Price:       599.99,
			Currency:    "EUR",
			Mode:        domain.ModePayment,
			Features: []string{
				"Everything in basic Team Tribe",
				"Lifetime access benefits",
				"White-label solution",
				"Custom development",
				"On-premise deployment",
				"Premium support",
				"Training & onboarding",
			},
		},
	}
}
