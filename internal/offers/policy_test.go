package offers

import "testing"

func TestForCountThresholds(t *testing.T) {
	tests := []struct {
		bookings int
		want     string
	}{
		{0, ""},
		{1, ""},
		{2, DiscountOffer},
		{3, DiscountOffer},
		{4, DiscountOffer},
		{5, FreeTestOffer},
		{6, FreeTestOffer},
		{100, FreeTestOffer},
	}
	for _, tt := range tests {
		if got := ForCount(tt.bookings); got != tt.want {
			t.Errorf("ForCount(%d) = %q, want %q", tt.bookings, got, tt.want)
		}
	}
}

func TestDescribeSubstitutesSentinel(t *testing.T) {
	if got := Describe(0); got != NoOfferMessage {
		t.Errorf("Describe(0) = %q, want %q", got, NoOfferMessage)
	}
	if got := Describe(1); got != NoOfferMessage {
		t.Errorf("Describe(1) = %q, want %q", got, NoOfferMessage)
	}
	if got := Describe(5); got != FreeTestOffer {
		t.Errorf("Describe(5) = %q, want %q", got, FreeTestOffer)
	}
}
