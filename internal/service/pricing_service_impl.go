package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/taskora/internal/contract"
	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/alexanderramin/taskora/internal/pricing"
	"github.com/alexanderramin/taskora/internal/repository"
)

type pricingService struct {
	catalog       *pricing.Catalog
	policy        pricing.Policy
	subscriptions repository.SubscriptionRepo
	observer      UseCaseObserver
}

func NewPricingService(catalog *pricing.Catalog, policy pricing.Policy, subs repository.SubscriptionRepo, observers ...UseCaseObserver) PricingService {
	return &pricingService{
		catalog:       catalog,
		policy:        policy,
		subscriptions: subs,
		observer:      useCaseObserverOrNoop(observers),
	}
}

func (s *pricingService) Tiers(ctx context.Context) (resp *contract.PricingResponse, err error) {
	fields := map[string]any{}
	done := observe(ctx, s.observer, "pricing-tiers", fields)
	defer func() { done(err) }()

	tiers, err := pricing.ResolveDisplayTiers(s.catalog.Products(), s.policy)
	if err != nil {
		return nil, fmt.Errorf("resolving tiers: %w", err)
	}
	fields["tier_count"] = len(tiers)
	return &contract.PricingResponse{Tiers: tiers}, nil
}

func (s *pricingService) CurrentPlan(ctx context.Context, userID string) (pricing.Plan, error) {
	sub, err := s.subscriptions.Get(ctx, userID)
	if err != nil {
		return pricing.Plan{}, err
	}
	return pricing.ActivePlan(sub, s.catalog), nil
}

// SetPlan records the outcome of a completed checkout for a user.
func (s *pricingService) SetPlan(ctx context.Context, userID, priceID string, status domain.SubscriptionStatus) (plan pricing.Plan, err error) {
	done := observe(ctx, s.observer, "set-plan", map[string]any{"user": userID, "price_id": priceID})
	defer func() { done(err) }()

	if userID == "" {
		return pricing.Plan{}, contract.Errorf(contract.ErrInvalidInput, "user id is required")
	}
	if !status.Valid() {
		return pricing.Plan{}, &domain.InvalidDataError{Entity: "subscription", ID: userID, Field: "status", Value: string(status)}
	}
	if _, ok := s.catalog.ByPriceID(priceID); !ok {
		return pricing.Plan{}, contract.Errorf(contract.ErrInvalidInput, fmt.Sprintf("unknown price id %q", priceID))
	}

	sub := &domain.Subscription{
		UserID:    userID,
		PriceID:   priceID,
		Status:    status,
		UpdatedAt: time.Now().UTC(),
	}
	if err = s.subscriptions.Upsert(ctx, sub); err != nil {
		return pricing.Plan{}, err
	}
	return pricing.ActivePlan(sub, s.catalog), nil
}
