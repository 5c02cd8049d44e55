package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"snapbook/internal/domain/entities"
)

// Catalog rates in cents. These are the published job prices; changing one
// changes what every new quote offers, so they live in one place.
const (
	pressureWashPerSqftCents = 25
	pressureWashMinCents     = 12000

	gutterOneStoryCents      = 12900
	gutterOneStoryLargeCents = 17900
	gutterTwoStoryCents      = 19900
	gutterTwoStoryLargeCents = 25900
	gutterThreeStoryCents    = 35000

	moverHourlyCents = 6500
	moverMinHours    = 1

	demoBaseCents = 19900

	consultationCents = 0

	poolBasicCents       = 9900
	poolStandardCents    = 16500
	poolFullServiceCents = 21000
	poolDeepCleanCents   = 24900

	carpetStandardCents   = 5000
	carpetDeepCents       = 7500
	carpetPetCents        = 8900
	carpetHallwayCents    = 2500
	carpetStairsCents     = 2500
	carpetScotchgardCents = 2000
	carpetPkg3BRCents     = 12900
	carpetPkg45BRCents    = 21500
	carpetMinimumCents    = 10000

	landscapeMowQuarterCents     = 5900
	landscapeMowHalfCents        = 8900
	landscapeCleanupMinCents     = 14900
	landscapeMowGoQuarterCents   = 9900
	landscapeMowGoHalfCents      = 14900
	landscapeFullQuarterCents    = 15900
	landscapeFullHalfCents       = 21900
	landscapePremiumQuarterCents = 24900
	landscapePremiumHalfCents    = 32900
)

// Quote policy applied to every priced service.
//
//   - BufferFactor pads the customer-visible ceiling against scope
//     underestimates. The provider is paid from the unbuffered base, so the
//     buffer is absorbed by the platform, never charged retroactively.
//   - MinimumQuote is the lowest advertised job price; it is applied to the
//     buffered ceiling. Consultations stay free (lead generation).
const (
	BufferFactor = 1.15
	PayoutShare  = 0.85
	MinimumQuote = 49
)

// Result is a fully priced quote: the unbuffered base estimate, the line
// items that explain it, and the buffered customer ceiling. BaseEstimate is
// retained by callers rather than recomputed from CeilingPrice so rounding
// never drifts the provider payout.
type Result struct {
	BaseEstimate int
	Adjustments  []entities.Adjustment
	CeilingPrice int
}

// Price computes the guaranteed-ceiling quote for a service. Pricing is
// deterministic: the same service type and details always produce the same
// result.
func Price(t entities.ServiceType, details entities.ServiceDetails) Result {
	base, adjustments := unbuffered(t, details)

	ceiling := int(math.Round(float64(base) * BufferFactor))
	if _, free := details.(entities.ConsultationDetails); !free && ceiling < MinimumQuote {
		ceiling = MinimumQuote
	}

	return Result{
		BaseEstimate: base,
		Adjustments:  adjustments,
		CeilingPrice: ceiling,
	}
}

// Payout is the provider's share of a job, computed from the unbuffered base
// estimate in whole dollars and returned in dollars with cents precision.
func Payout(baseEstimate int) float64 {
	return math.Round(float64(baseEstimate)*PayoutShare*100) / 100
}

// BaseFromCeiling approximates the unbuffered base for quotes stored before
// the base estimate was persisted explicitly. New code paths should always
// prefer the stored base.
func BaseFromCeiling(ceiling int) int {
	return int(math.Round(float64(ceiling) / BufferFactor))
}

// unbuffered returns the pre-buffer total in whole dollars plus the
// adjustment line items. Table-driven services price in cents and round once
// at the end; the remaining services price directly in dollars with their
// surcharges as priced adjustments.
func unbuffered(t entities.ServiceType, details entities.ServiceDetails) (int, []entities.Adjustment) {
	var adjustments []entities.Adjustment

	switch d := details.(type) {
	case entities.PressureWashingDetails:
		cents := d.SquareFootage * pressureWashPerSqftCents
		if cents < pressureWashMinCents {
			cents = pressureWashMinCents
		}
		return dollars(cents), nil

	case entities.GutterDetails:
		var cents int
		switch {
		case d.StoryCount >= 3:
			cents = gutterThreeStoryCents
		case d.StoryCount == 2:
			if d.LinearFeet > 150 {
				cents = gutterTwoStoryLargeCents
			} else {
				cents = gutterTwoStoryCents
			}
		default:
			if d.LinearFeet > 150 {
				cents = gutterOneStoryLargeCents
			} else {
				cents = gutterOneStoryCents
			}
		}
		if d.StoryCount > 1 {
			adjustments = append(adjustments, entities.Adjustment{
				Label: fmt.Sprintf("%d-story home", d.StoryCount),
			})
		}
		return dollars(cents), adjustments

	case entities.MovingLaborDetails:
		hours := math.Max(d.Hours, moverMinHours)
		movers := d.Movers
		if movers < 1 {
			movers = 1
		}
		cents := hours * float64(movers) * moverHourlyCents
		adjustments = append(adjustments, entities.Adjustment{
			Label: fmt.Sprintf("%d movers x %s hrs", movers, formatHours(hours)),
		})
		return dollars(int(math.Round(cents))), adjustments

	case entities.DemolitionDetails:
		return dollars(demoBaseCents), nil

	case entities.ConsultationDetails:
		return dollars(consultationCents), nil

	case entities.PoolDetails:
		var cents int
		switch d.Tier {
		case "deep_clean":
			cents = poolDeepCleanCents
		case "full_service":
			cents = poolFullServiceCents
		case "standard":
			cents = poolStandardCents
		default:
			cents = poolBasicCents
		}
		return dollars(cents), nil

	case entities.CarpetDetails:
		var cents int
		switch d.Package {
		case "3br":
			cents = carpetPkg3BRCents
		case "4_5br":
			cents = carpetPkg45BRCents
		default:
			perRoom := carpetStandardCents
			switch d.Tier {
			case "pet":
				perRoom = carpetPetCents
			case "deep":
				perRoom = carpetDeepCents
			}
			cents = d.Rooms * perRoom
			cents += d.Hallways * carpetHallwayCents
			cents += d.StairFlights * carpetStairsCents
		}
		cents += d.ScotchgardRooms * carpetScotchgardCents
		if cents < carpetMinimumCents {
			cents = carpetMinimumCents
		}
		if d.Rooms > 1 {
			adjustments = append(adjustments, entities.Adjustment{
				Label: fmt.Sprintf("%d rooms", d.Rooms),
			})
		}
		return dollars(cents), adjustments

	case entities.LandscapingDetails:
		half := d.LotSize == "half"
		var cents int
		switch d.PlanType {
		case "cleanup":
			cents = landscapeCleanupMinCents
		case "mow_go":
			cents = pick(half, landscapeMowGoHalfCents, landscapeMowGoQuarterCents)
		case "full_service":
			cents = pick(half, landscapeFullHalfCents, landscapeFullQuarterCents)
		case "premium":
			cents = pick(half, landscapePremiumHalfCents, landscapePremiumQuarterCents)
		default:
			cents = pick(half, landscapeMowHalfCents, landscapeMowQuarterCents)
		}
		return dollars(cents), nil

	case entities.JunkRemovalDetails:
		total := 99
		switch {
		case containsFold(d.Volume, "full"):
			total = 299
			adjustments = append(adjustments, entities.Adjustment{Label: "Full truck load", Amount: 200})
		case containsFold(d.Volume, "half"), containsFold(d.Volume, "medium"):
			total = 179
		}
		if d.HeavyItems {
			adjustments = append(adjustments, entities.Adjustment{Label: "Heavy items surcharge", Amount: 50})
			total += 50
		}
		return total, adjustments

	case entities.HomeCleaningDetails:
		switch {
		case d.Bedrooms >= 4:
			adjustments = append(adjustments, entities.Adjustment{Label: "4+ bedroom home", Amount: 100})
			return 199, adjustments
		case d.Bedrooms == 3:
			adjustments = append(adjustments, entities.Adjustment{Label: "3 bedroom home", Amount: 50})
			return 149, adjustments
		default:
			return 99, nil
		}

	case entities.HandymanDetails:
		hours := math.Max(d.Hours, 1)
		total := int(math.Round(hours * 75))
		if hours > 1 {
			adjustments = append(adjustments, entities.Adjustment{
				Label:  fmt.Sprintf("%s hours estimated", formatHours(hours)),
				Amount: int(math.Round((hours - 1) * 75)),
			})
		}
		return total, adjustments

	case entities.GarageCleanoutDetails:
		if containsFold(d.Size, "3") || containsFold(d.Size, "large") {
			adjustments = append(adjustments, entities.Adjustment{Label: "Large garage", Amount: 70})
			return 199, adjustments
		}
		return 129, nil

	default:
		// Unknown or missing details price as a small job, same as an
		// unrecognized service type.
		return 99, nil
	}
}

func dollars(cents int) int {
	return int(math.Round(float64(cents) / 100))
}

func pick(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
