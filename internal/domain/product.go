package domain

import (
	"math"
	"strconv"
	"time"
)

// ProductVariant is one purchasable option of a pricing tier. Several
// variants may share a Name (e.g. monthly and one-time).
type ProductVariant struct {
	ID          string       `yaml:"id" json:"id"`
	PriceID     string       `yaml:"price_id" json:"price_id"`
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description"`
	Price       float64      `yaml:"price" json:"price"`
	Currency    string       `yaml:"currency" json:"currency"`
	Mode        PurchaseMode `yaml:"mode" json:"mode"`
	TrialDays   int          `yaml:"trial_days" json:"trial_days"`
	Features    []string     `yaml:"features" json:"features"`
}

func (p ProductVariant) HasTrial() bool {
	return p.TrialDays > 0
}

// Validate checks the mode enumeration and that numeric fields are finite and
// non-negative.
func (p ProductVariant) Validate() error {
	if !p.Mode.Valid() {
		return &InvalidDataError{Entity: "product", ID: p.ID, Field: "mode", Value: string(p.Mode)}
	}
	if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return &InvalidDataError{Entity: "product", ID: p.ID, Field: "price", Value: strconv.FormatFloat(p.Price, 'f', -1, 64)}
	}
	if p.TrialDays < 0 {
		return &InvalidDataError{Entity: "product", ID: p.ID, Field: "trial_days", Value: strconv.Itoa(p.TrialDays)}
	}
	return nil
}

// Subscription is the payment processor's view of what a user is on.
type Subscription struct {
	UserID             string
	SubscriptionID     string
	PriceID            string
	Status             SubscriptionStatus
	CurrentPeriodStart *time.Time
	CurrentPeriodEnd   *time.Time
	CancelAtPeriodEnd  bool
	UpdatedAt          time.Time
}
