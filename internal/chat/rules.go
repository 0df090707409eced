package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthplus-lab/lab-chatbot-backend/internal/catalog"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/clinic"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/offers"
)

// RuleResponder answers from a fixed keyword table. It serves as the degraded
// mode when no Gemini API key is configured and never returns an error.
type RuleResponder struct {
	rules    []rule
	fallback string
}

type rule struct {
	keywords []string
	reply    string
}

// NewRuleResponder builds the rule table from the catalog and lab metadata.
func NewRuleResponder(c *catalog.Catalog, info clinic.Info) *RuleResponder {
	var prices strings.Builder
	var preps strings.Builder
	for _, t := range c.List() {
		fmt.Fprintf(&prices, "%s: %d. ", t.Name, t.Price)
		fmt.Fprintf(&preps, "%s: %s. ", t.Name, t.Prep)
	}

	return &RuleResponder{
		rules: []rule{
			{
				keywords: []string{"price", "prices", "cost", "costs", "charges", "fee", "fees"},
				reply:    "Our test prices are: " + strings.TrimSpace(prices.String()),
			},
			{
				keywords: []string{"prep", "preparation", "fasting", "fast", "prepare"},
				reply:    "Preparation instructions: " + strings.TrimSpace(preps.String()),
			},
			{
				keywords: []string{"book", "booking", "bookings", "appointment", "appointments", "schedule", "slot"},
				reply:    "You can book a test right here in the widget: pick a test, share your name, phone and preferred date, and we'll confirm your slot.",
			},
			{
				keywords: []string{"offer", "offers", "discount", "discounts", "loyalty", "free"},
				reply:    fmt.Sprintf("Loyalty offers: after 2 bookings you get %q, and after 5 bookings %q.", offers.DiscountOffer, offers.FreeTestOffer),
			},
			{
				keywords: []string{"where", "address", "location", "map", "reach"},
				reply:    fmt.Sprintf("%s is at %s. Directions: %s", info.Name, info.Address, info.GoogleMap),
			},
			{
				keywords: []string{"hello", "hi", "namaste", "hey"},
				reply:    fmt.Sprintf("Hello! Welcome to %s. Ask me about tests, prices, bookings or loyalty offers.", info.Name),
			},
		},
		fallback: fmt.Sprintf("I can help with %s lab tests, prices, bookings and loyalty offers. What would you like to know?", info.Name),
	}
}

// Respond matches the first rule whose keyword appears in the message.
func (r *RuleResponder) Respond(ctx context.Context, user, message, lang string) (string, error) {
	lowered := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, kw := range rule.keywords {
			if containsWord(lowered, kw) {
				return rule.reply, nil
			}
		}
	}
	return r.fallback, nil
}

// containsWord reports whether kw appears in s on a word boundary, so "hi"
// does not match inside "thyroid".
func containsWord(s, kw string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		beforeOK := start == 0 || !isWordChar(s[start-1])
		afterOK := end == len(s) || !isWordChar(s[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}
