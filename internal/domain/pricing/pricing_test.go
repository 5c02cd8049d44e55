package pricing

import (
	"math"
	"testing"

	"snapbook/internal/domain/entities"
)

func TestPrice_GutterTiers(t *testing.T) {
	t.Run("two story large lot gets the large tier and buffered ceiling", func(t *testing.T) {
		got := Price(entities.ServiceGutterCleaning, entities.GutterDetails{StoryCount: 2, LinearFeet: 180})

		if got.BaseEstimate != 259 {
			t.Fatalf("expected base estimate 259, got %d", got.BaseEstimate)
		}
		if got.CeilingPrice != 298 {
			t.Fatalf("expected ceiling 298, got %d", got.CeilingPrice)
		}
		if len(got.Adjustments) != 1 || got.Adjustments[0].Label != "2-story home" {
			t.Fatalf("expected 2-story adjustment, got %+v", got.Adjustments)
		}
	})

	t.Run("single story small lot", func(t *testing.T) {
		got := Price(entities.ServiceGutterCleaning, entities.GutterDetails{StoryCount: 1, LinearFeet: 150})
		if got.BaseEstimate != 129 {
			t.Fatalf("expected base estimate 129, got %d", got.BaseEstimate)
		}
		if len(got.Adjustments) != 0 {
			t.Fatalf("expected no adjustments for a single story, got %+v", got.Adjustments)
		}
	})

	t.Run("three or more stories is a flat tier", func(t *testing.T) {
		got := Price(entities.ServiceGutterCleaning, entities.GutterDetails{StoryCount: 4, LinearFeet: 90})
		if got.BaseEstimate != 350 {
			t.Fatalf("expected base estimate 350, got %d", got.BaseEstimate)
		}
	})
}

func TestPrice_JunkRemovalBuckets(t *testing.T) {
	t.Run("full truck with heavy items stacks both surcharges", func(t *testing.T) {
		got := Price(entities.ServiceJunkRemoval, entities.JunkRemovalDetails{Volume: "full truck", HeavyItems: true})
		if got.BaseEstimate != 349 {
			t.Fatalf("expected base estimate 349, got %d", got.BaseEstimate)
		}
		if len(got.Adjustments) != 2 {
			t.Fatalf("expected two adjustments, got %+v", got.Adjustments)
		}
		if got.Adjustments[0].Amount != 200 || got.Adjustments[1].Amount != 50 {
			t.Fatalf("unexpected adjustment amounts: %+v", got.Adjustments)
		}
	})

	t.Run("half load bucket", func(t *testing.T) {
		got := Price(entities.ServiceJunkRemoval, entities.JunkRemovalDetails{Volume: "half"})
		if got.BaseEstimate != 179 {
			t.Fatalf("expected base estimate 179, got %d", got.BaseEstimate)
		}
	})

	t.Run("unknown volume is the small bucket", func(t *testing.T) {
		got := Price(entities.ServiceJunkRemoval, entities.JunkRemovalDetails{})
		if got.BaseEstimate != 99 {
			t.Fatalf("expected base estimate 99, got %d", got.BaseEstimate)
		}
	})
}

func TestPrice_HomeCleaningBuckets(t *testing.T) {
	cases := []struct {
		bedrooms int
		want     int
	}{
		{2, 99},
		{3, 149},
		{4, 199},
		{6, 199},
	}
	for _, tc := range cases {
		got := Price(entities.ServiceHomeCleaning, entities.HomeCleaningDetails{Bedrooms: tc.bedrooms})
		if got.BaseEstimate != tc.want {
			t.Fatalf("bedrooms=%d: expected base %d, got %d", tc.bedrooms, tc.want, got.BaseEstimate)
		}
	}
}

func TestPrice_HandymanHourly(t *testing.T) {
	got := Price(entities.ServiceHandyman, entities.HandymanDetails{Hours: 2})
	if got.BaseEstimate != 150 {
		t.Fatalf("expected base estimate 150, got %d", got.BaseEstimate)
	}
	if len(got.Adjustments) != 1 || got.Adjustments[0].Label != "2 hours estimated" || got.Adjustments[0].Amount != 75 {
		t.Fatalf("unexpected adjustments: %+v", got.Adjustments)
	}

	// Hours below the minimum are billed as one hour.
	got = Price(entities.ServiceHandyman, entities.HandymanDetails{Hours: 0.5})
	if got.BaseEstimate != 75 {
		t.Fatalf("expected base estimate 75, got %d", got.BaseEstimate)
	}
	if len(got.Adjustments) != 0 {
		t.Fatalf("expected no adjustments for a one hour job, got %+v", got.Adjustments)
	}
}

func TestPrice_CarpetMinimumAndPackages(t *testing.T) {
	t.Run("small job is raised to the minimum charge", func(t *testing.T) {
		got := Price(entities.ServiceCarpetCleaning, entities.CarpetDetails{Rooms: 1, Tier: "standard"})
		if got.BaseEstimate != 100 {
			t.Fatalf("expected minimum base 100, got %d", got.BaseEstimate)
		}
	})

	t.Run("pet tier with extras", func(t *testing.T) {
		got := Price(entities.ServiceCarpetCleaning, entities.CarpetDetails{
			Rooms: 3, Hallways: 1, StairFlights: 1, ScotchgardRooms: 2, Tier: "pet",
		})
		// 3*89 + 25 + 25 + 2*20 = 357
		if got.BaseEstimate != 357 {
			t.Fatalf("expected base 357, got %d", got.BaseEstimate)
		}
	})

	t.Run("whole house package overrides per room pricing", func(t *testing.T) {
		got := Price(entities.ServiceCarpetCleaning, entities.CarpetDetails{Rooms: 5, Tier: "deep", Package: "3br"})
		if got.BaseEstimate != 129 {
			t.Fatalf("expected package base 129, got %d", got.BaseEstimate)
		}
	})
}

func TestPrice_PressureWashingMinimum(t *testing.T) {
	got := Price(entities.ServicePressureWashing, entities.PressureWashingDetails{SquareFootage: 100})
	if got.BaseEstimate != 120 {
		t.Fatalf("expected minimum base 120, got %d", got.BaseEstimate)
	}

	got = Price(entities.ServicePressureWashing, entities.PressureWashingDetails{SquareFootage: 1000})
	if got.BaseEstimate != 250 {
		t.Fatalf("expected base 250, got %d", got.BaseEstimate)
	}
}

func TestPrice_MovingLabor(t *testing.T) {
	got := Price(entities.ServiceMovingLabor, entities.MovingLaborDetails{Movers: 2, Hours: 3})
	if got.BaseEstimate != 390 {
		t.Fatalf("expected base 390, got %d", got.BaseEstimate)
	}
	if len(got.Adjustments) != 1 || got.Adjustments[0].Label != "2 movers x 3 hrs" {
		t.Fatalf("unexpected adjustments: %+v", got.Adjustments)
	}
}

func TestPrice_LandscapingPlans(t *testing.T) {
	cases := []struct {
		plan string
		lot  string
		want int
	}{
		{"one_time_mow", "quarter", 59},
		{"one_time_mow", "half", 89},
		{"cleanup", "quarter", 149},
		{"mow_go", "half", 149},
		{"full_service", "quarter", 159},
		{"premium", "half", 329},
	}
	for _, tc := range cases {
		got := Price(entities.ServiceLandscaping, entities.LandscapingDetails{LotSize: tc.lot, PlanType: tc.plan})
		if got.BaseEstimate != tc.want {
			t.Fatalf("plan=%s lot=%s: expected base %d, got %d", tc.plan, tc.lot, tc.want, got.BaseEstimate)
		}
	}
}

func TestPrice_ConsultationIsFree(t *testing.T) {
	got := Price(entities.ServiceHomeConsultation, entities.ConsultationDetails{})
	if got.BaseEstimate != 0 || got.CeilingPrice != 0 {
		t.Fatalf("expected a free consultation, got %+v", got)
	}
}

func TestPrice_CeilingNeverBelowMinimum(t *testing.T) {
	// Every billable service must quote at least the minimum, regardless of
	// how small the details make the job.
	samples := []struct {
		t entities.ServiceType
		d entities.ServiceDetails
	}{
		{entities.ServiceJunkRemoval, entities.JunkRemovalDetails{}},
		{entities.ServiceHomeCleaning, entities.HomeCleaningDetails{Bedrooms: 1}},
		{entities.ServiceHandyman, entities.HandymanDetails{Hours: 0.1}},
		{entities.ServiceGarageCleanout, entities.GarageCleanoutDetails{}},
		{entities.ServiceLandscaping, entities.LandscapingDetails{LotSize: "quarter", PlanType: "one_time_mow"}},
	}
	for _, s := range samples {
		got := Price(s.t, s.d)
		if got.CeilingPrice < MinimumQuote {
			t.Fatalf("%s: ceiling %d below minimum %d", s.t, got.CeilingPrice, MinimumQuote)
		}
	}
}

func TestPrice_BufferRoundTrip(t *testing.T) {
	samples := []struct {
		t entities.ServiceType
		d entities.ServiceDetails
	}{
		{entities.ServiceGutterCleaning, entities.GutterDetails{StoryCount: 2, LinearFeet: 180}},
		{entities.ServiceJunkRemoval, entities.JunkRemovalDetails{Volume: "full"}},
		{entities.ServicePoolCleaning, entities.PoolDetails{Tier: "deep_clean"}},
		{entities.ServiceLightDemolition, entities.DemolitionDetails{}},
		{entities.ServiceMovingLabor, entities.MovingLaborDetails{Movers: 3, Hours: 2}},
	}
	for _, s := range samples {
		got := Price(s.t, s.d)

		wantCeiling := int(math.Round(float64(got.BaseEstimate) * BufferFactor))
		if wantCeiling < MinimumQuote {
			wantCeiling = MinimumQuote
		}
		if got.CeilingPrice != wantCeiling {
			t.Fatalf("%s: ceiling %d, expected %d", s.t, got.CeilingPrice, wantCeiling)
		}
		if BaseFromCeiling(got.CeilingPrice) != got.BaseEstimate {
			t.Fatalf("%s: base %d not recoverable from ceiling %d", s.t, got.BaseEstimate, got.CeilingPrice)
		}
	}
}

func TestPayout(t *testing.T) {
	if got := Payout(259); got != 220.15 {
		t.Fatalf("expected payout 220.15, got %v", got)
	}
	if got := Payout(0); got != 0 {
		t.Fatalf("expected zero payout for a free job, got %v", got)
	}

	// The provider share of the base never reaches the buffered ceiling.
	res := Price(entities.ServiceGutterCleaning, entities.GutterDetails{StoryCount: 2, LinearFeet: 180})
	if Payout(res.BaseEstimate) >= float64(res.CeilingPrice) {
		t.Fatalf("payout %v not below ceiling %d", Payout(res.BaseEstimate), res.CeilingPrice)
	}
}

func TestPrice_Deterministic(t *testing.T) {
	d := entities.CarpetDetails{Rooms: 3, Hallways: 2, Tier: "deep"}
	first := Price(entities.ServiceCarpetCleaning, d)
	for i := 0; i < 5; i++ {
		again := Price(entities.ServiceCarpetCleaning, d)
		if again.BaseEstimate != first.BaseEstimate || again.CeilingPrice != first.CeilingPrice {
			t.Fatalf("pricing not deterministic: %+v vs %+v", first, again)
		}
	}
}
