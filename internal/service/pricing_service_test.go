package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/taskora/internal/contract"
	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/alexanderramin/taskora/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingService_Tiers(t *testing.T) {
	s := newTestServices(t)
	resp, err := s.pricing.Tiers(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Tiers, 4)
	assert.Equal(t, "Loner", resp.Tiers[0].Name)
	assert.True(t, resp.Tiers[0].IsFree)
}

func TestPricingService_PlanLifecycle(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	plan, err := s.pricing.CurrentPlan(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, pricing.FreePlanName, plan.Name)

	plan, err = s.pricing.SetPlan(ctx, "u1", "price_1S5r7TQ4VdcoVfX8MOrplW47", domain.SubscriptionTrialing)
	require.NoError(t, err)
	assert.Equal(t, "Pro Tribe", plan.Name)

	plan, err = s.pricing.CurrentPlan(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Pro Tribe", plan.Name)
	assert.Equal(t, domain.SubscriptionTrialing, plan.Status)
}

func TestPricingService_SetPlanValidation(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.pricing.SetPlan(ctx, "u1", "price_unknown", domain.SubscriptionActive)
	var ce *contract.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, contract.ErrInvalidInput, ce.Code)

	_, err = s.pricing.SetPlan(ctx, "u1", "price_1S5r7TQ4VdcoVfX8MOrplW47", "paused")
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}

func TestPricingService_PolicyIsApplied(t *testing.T) {
	svc := NewPricingService(pricing.DefaultCatalog(), pricing.Policy{LifetimeThreshold: 50, FeaturedTiers: []string{"Loner"}}, nil)

	resp, err := svc.Tiers(context.Background())
	require.NoError(t, err)
	byName := map[string]pricing.DisplayTier{}
	for _, tier := range resp.Tiers {
		byName[tier.Name] = tier
	}
	assert.True(t, byName["Loner"].IsPopular)
	assert.False(t, byName["Pro Tribe"].IsPopular)
	assert.True(t, byName["Team Tribe"].IsLifetime)
}
