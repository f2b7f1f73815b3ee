package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taskora/internal/pricing"
)

// FormatTiers renders the pricing page, one block per tier.
func FormatTiers(tiers []pricing.DisplayTier) string {
	if len(tiers) == 0 {
		return Dim("No pricing tiers configured.")
	}

	blocks := make([]string, 0, len(tiers))
	for _, t := range tiers {
		blocks = append(blocks, formatTier(t))
	}
	return strings.Join(blocks, "\n\n")
}

func formatTier(t pricing.DisplayTier) string {
	var b strings.Builder

	name := Bold(t.Name)
	var tags []string
	if t.IsPopular {
		tags = append(tags, StyleHeader.Render("★ Popular"))
	}
	if t.IsLifetime {
		tags = append(tags, StylePurple.Render("Lifetime"))
	}
	if t.HasDiscount && t.DiscountPercentage != nil {
		tags = append(tags, StyleGreen.Render(fmt.Sprintf("Save %d%%", *t.DiscountPercentage)))
	}
	if len(tags) > 0 {
		name += "  " + strings.Join(tags, " ")
	}
	b.WriteString(name + "\n")
	if t.Description != "" {
		b.WriteString(Dim(t.Description) + "\n")
	}

	v := t.DisplayVariant
	price := Money(v.Price, v.Currency)
	if !t.IsFree {
		price += " " + Dim(ModeLabel(v.Mode))
	}
	b.WriteString(price + "\n")
	if v.HasTrial() {
		b.WriteString(StyleBlue.Render(fmt.Sprintf("%d-day free trial", v.TrialDays)) + "\n")
	}
	for _, alt := range t.Alternatives {
		b.WriteString(Dim(fmt.Sprintf("  or %s %s", Money(alt.Price, alt.Currency), ModeLabel(alt.Mode))) + "\n")
	}
	for _, f := range v.Features {
		b.WriteString("  " + StyleGreen.Render("✔") + " " + f + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatPlan renders the user's current plan on one line.
func FormatPlan(p pricing.Plan) string {
	line := fmt.Sprintf("%s %s %s", Bold("Plan:"), p.Name, Dim("("+string(p.Status)+")"))
	if p.Product != nil {
		line += " " + Money(p.Product.Price, p.Product.Currency) + " " + Dim(ModeLabel(p.Product.Mode))
	}
	return line
}
