package returns_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/savings-engine/returns"
	"github.com/warp/savings-engine/savings"
)

func TestHorizon(t *testing.T) {
	cases := []struct {
		age  int
		want int
	}{
		{29, 31},
		{54, 6},
		{55, 5}, // exactly at the floor
		{60, 5}, // retirement age still projects
		{70, 5}, // past retirement age too
		{0, 60},
	}
	for _, tc := range cases {
		if got := returns.Horizon(tc.age); got != tc.want {
			t.Errorf("Horizon(%d) = %d, want %d", tc.age, got, tc.want)
		}
	}
}

func TestCompound_AnnualCompounding(t *testing.T) {
	// One compounding period per year: 1000 at 10% over 3 years is 1331.
	got := returns.Compound(d(1000), savings.MustDecimal("0.10"), 3)
	if !got.Equal(d(1331)) {
		t.Errorf("Compound(1000, 0.10, 3) = %v, want 1331", got)
	}

	// Zero years leaves the principal untouched.
	got = returns.Compound(d(1000), savings.MustDecimal("0.10"), 0)
	if !got.Equal(d(1000)) {
		t.Errorf("Compound(1000, 0.10, 0) = %v, want 1000", got)
	}
}

func TestDeflateToPresent(t *testing.T) {
	// 1331 deflated by 10%/yr over 3 years lands back on 1000.
	got := returns.DeflateToPresent(d(1331), d(10), 3)
	if !got.Round(6).Equal(d(1000)) {
		t.Errorf("DeflateToPresent(1331, 10, 3) = %v, want 1000", got)
	}

	// Zero inflation is a no-op.
	got = returns.DeflateToPresent(d(500), d(0), 31)
	if !got.Equal(d(500)) {
		t.Errorf("DeflateToPresent(500, 0, 31) = %v, want 500", got)
	}
}

func TestProject_ZeroPrincipal(t *testing.T) {
	for _, product := range []returns.Product{returns.ProductPension, returns.ProductIndex} {
		profit, benefit := returns.Project(product, decimal.Zero, 29, d(100_000), d(5))
		if !profit.IsZero() || !benefit.IsZero() {
			t.Errorf("%s with zero principal: profit=%v benefit=%v, want 0/0", product, profit, benefit)
		}
	}
}

func TestProject_IndexHasNoTaxBenefit(t *testing.T) {
	_, benefit := returns.Project(returns.ProductIndex, d(145), 29, d(500_000), d(5))
	if !benefit.IsZero() {
		t.Errorf("index benefit = %v, want 0 regardless of income", benefit)
	}
}

func TestProject_PensionNumbers(t *testing.T) {
	// GIVEN: 1000 invested at 7.11%/yr for 31 years (age 29), 5% inflation
	profit, benefit := returns.Project(returns.ProductPension, d(1000), 29, d(100_000), d(5))

	// THEN: 1000 * 1.0711^31 / 1.05^31 - 1000 is roughly 853
	got, _ := profit.Float64()
	if got < 840 || got > 870 {
		t.Errorf("pension profit = %v, want roughly 853", got)
	}

	// Annual income 1.2M; deducting the 1000 principal saves 15% of it at
	// the margin.
	if !benefit.Equal(d(150)) {
		t.Errorf("pension benefit = %v, want 150", benefit)
	}
}

func TestProject_IndexNumbers(t *testing.T) {
	// GIVEN: 1000 at 14.49%/yr for 31 years, 5% inflation
	profit, _ := returns.Project(returns.ProductIndex, d(1000), 29, d(100_000), d(5))

	// THEN: 1000 * 1.1449^31 / 1.05^31 - 1000 is roughly 13620
	got, _ := profit.Float64()
	if got < 13_000 || got > 14_200 {
		t.Errorf("index profit = %v, want roughly 13620", got)
	}
}

func TestProjectGroups_PreservesOrderAndAmounts(t *testing.T) {
	groups := []savings.ReportingGroup{
		{Amount: d(145)},
		{Amount: d(75)},
		{Amount: d(0)},
	}

	projected := returns.ProjectGroups(groups, returns.ProductPension, 29, d(100_000), d(5))
	if len(projected) != 3 {
		t.Fatalf("got %d projections, want 3", len(projected))
	}
	for i, g := range groups {
		if !projected[i].Amount.Equal(g.Amount) {
			t.Errorf("projection %d amount = %v, want %v", i, projected[i].Amount, g.Amount)
		}
	}
	// Benefits at 1.2M annual income sit in the 15% marginal slab.
	if !projected[0].TaxBenefit.Equal(savings.MustDecimal("21.75")) {
		t.Errorf("benefit[0] = %v, want 21.75", projected[0].TaxBenefit)
	}
	if !projected[1].TaxBenefit.Equal(savings.MustDecimal("11.25")) {
		t.Errorf("benefit[1] = %v, want 11.25", projected[1].TaxBenefit)
	}
	if !projected[2].Profit.IsZero() || !projected[2].TaxBenefit.IsZero() {
		t.Errorf("empty group projected to %v/%v, want zeros", projected[2].Profit, projected[2].TaxBenefit)
	}
}
