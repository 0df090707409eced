// Package offers maps cumulative booking counts to loyalty offers.
package offers

// Offer texts by tier. NoOfferMessage is the uniform representation for
// customers below every threshold, used by both the booking and the offers
// query responses.
const (
	FreeTestOffer  = "1 free test after 5 bookings"
	DiscountOffer  = "10% off next test"
	NoOfferMessage = "No active offers yet"
)

// Thresholds, evaluated highest-first so a count of exactly 5 never falls
// through to the discount tier.
const (
	freeTestThreshold = 5
	discountThreshold = 2
)

// ForCount returns the offer text unlocked by the given booking count, or ""
// when no tier is reached.
func ForCount(bookings int) string {
	switch {
	case bookings >= freeTestThreshold:
		return FreeTestOffer
	case bookings >= discountThreshold:
		return DiscountOffer
	default:
		return ""
	}
}

// Describe is ForCount with the no-offer sentinel substituted, for responses
// where offer is always a string.
func Describe(bookings int) string {
	if offer := ForCount(bookings); offer != "" {
		return offer
	}
	return NoOfferMessage
}
