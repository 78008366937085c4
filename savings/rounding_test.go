package savings_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/savings-engine/savings"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func instant(s string) savings.Instant {
	i, err := savings.ParseInstant(s)
	if err != nil {
		panic(err)
	}
	return i
}

func period(start, end string) savings.Period {
	return savings.Period{Start: instant(start), End: instant(end)}
}

// =============================================================================
// CEILING TESTS
// =============================================================================

func TestCeiling_Literals(t *testing.T) {
	cases := []struct {
		amount       float64
		wantCeiling  float64
		wantRemanent float64
	}{
		{250, 300, 50},
		{375, 400, 25},
		{620, 700, 80},
		{480, 500, 20},
		{1519, 1600, 81},
		{400, 400, 0}, // exact multiple stays put
		{0, 0, 0},
		{-10, 0, 10}, // non-positive rounds to zero; remanent only matters post-validation
	}

	for _, tc := range cases {
		ceiling := savings.Ceiling(d(tc.amount))
		if !ceiling.Equal(d(tc.wantCeiling)) {
			t.Errorf("Ceiling(%v) = %v, want %v", tc.amount, ceiling, tc.wantCeiling)
		}
		remanent := savings.Remanent(d(tc.amount), ceiling)
		if !remanent.Equal(d(tc.wantRemanent)) {
			t.Errorf("Remanent(%v, %v) = %v, want %v", tc.amount, ceiling, remanent, tc.wantRemanent)
		}
	}
}

func TestCeiling_Properties(t *testing.T) {
	// Property: for all amount > 0, ceiling >= amount, ceiling - amount < 100,
	// and ceiling is a multiple of 100. Equality holds exactly for multiples.
	hundred := decimal.NewFromInt(100)

	for i := 1; i <= 2500; i += 7 {
		amount := decimal.NewFromInt(int64(i)).Add(d(0.37))
		ceiling := savings.Ceiling(amount)

		if ceiling.LessThan(amount) {
			t.Fatalf("Ceiling(%v) = %v is below the amount", amount, ceiling)
		}
		if ceiling.Sub(amount).GreaterThanOrEqual(hundred) {
			t.Fatalf("Ceiling(%v) = %v overshoots by 100 or more", amount, ceiling)
		}
		if !ceiling.Mod(hundred).IsZero() {
			t.Fatalf("Ceiling(%v) = %v is not a multiple of 100", amount, ceiling)
		}
	}

	for _, multiple := range []int64{100, 400, 1200, 99900} {
		amount := decimal.NewFromInt(multiple)
		if !savings.Ceiling(amount).Equal(amount) {
			t.Errorf("Ceiling(%v) changed an exact multiple", multiple)
		}
	}
}

func TestRemanent_FractionalStability(t *testing.T) {
	// GIVEN: An amount with a long fractional part
	// WHEN: Computing the remanent
	// THEN: The gap is exact, not a float approximation
	amount := savings.MustDecimal("249.95")
	ceiling := savings.Ceiling(amount)

	if !ceiling.Equal(d(300)) {
		t.Fatalf("Ceiling(249.95) = %v, want 300", ceiling)
	}
	remanent := savings.Remanent(amount, ceiling)
	if !remanent.Equal(savings.MustDecimal("50.05")) {
		t.Errorf("Remanent(249.95, 300) = %v, want 50.05", remanent)
	}
}
