package entities

import (
	"math"
	"strings"
)

// ServiceDetails is a closed set of per-service pricing signals. Each variant
// carries exactly the fields its service's pricing rules read, so the pricing
// switch is exhaustive over the catalog instead of probing a loose map.
//
// DetailsFromMap is the only place the model's free-form details map is
// converted into a variant; everything downstream works with typed values.

type ServiceDetails interface {
	serviceDetails()
}

type GutterDetails struct {
	StoryCount int
	LinearFeet int
}

type JunkRemovalDetails struct {
	Volume     string // "full", "half"/"medium", or anything else for small
	HeavyItems bool
}

type HomeCleaningDetails struct {
	Bedrooms int
}

type CarpetDetails struct {
	Rooms           int
	Hallways        int
	StairFlights    int
	ScotchgardRooms int
	Tier            string // "standard", "deep", "pet"
	Package         string // "", "3br", "4_5br"
}

type PressureWashingDetails struct {
	SquareFootage int
}

type LandscapingDetails struct {
	LotSize  string // "quarter", "half"
	PlanType string // "one_time_mow", "cleanup", "mow_go", "full_service", "premium"
}

type PoolDetails struct {
	Tier string // "basic", "standard", "full_service", "deep_clean"
}

type HandymanDetails struct {
	Hours float64
}

type MovingLaborDetails struct {
	Movers int
	Hours  float64
}

type GarageCleanoutDetails struct {
	Size string // "large"/"3-car" triggers the large tier
}

type DemolitionDetails struct{}

type ConsultationDetails struct{}

func (GutterDetails) serviceDetails()          {}
func (JunkRemovalDetails) serviceDetails()     {}
func (HomeCleaningDetails) serviceDetails()    {}
func (CarpetDetails) serviceDetails()          {}
func (PressureWashingDetails) serviceDetails() {}
func (LandscapingDetails) serviceDetails()     {}
func (PoolDetails) serviceDetails()            {}
func (HandymanDetails) serviceDetails()        {}
func (MovingLaborDetails) serviceDetails()     {}
func (GarageCleanoutDetails) serviceDetails()  {}
func (DemolitionDetails) serviceDetails()      {}
func (ConsultationDetails) serviceDetails()    {}

// DetailsFromMap converts the loosely-typed details map produced by the vision
// model into the typed variant for a service. Missing or malformed fields fall
// back to the same conservative defaults the platform has always priced with.
func DetailsFromMap(t ServiceType, m map[string]any, estimatedHours float64, scope string) ServiceDetails {
	if m == nil {
		m = map[string]any{}
	}

	switch t {
	case ServiceGutterCleaning:
		return GutterDetails{
			StoryCount: intField(m, "storyCount", 1),
			LinearFeet: intField(m, "linearFeet", 150),
		}
	case ServiceJunkRemoval:
		return JunkRemovalDetails{
			Volume:     stringField(m, "volume", ""),
			HeavyItems: boolField(m, "heavyItems"),
		}
	case ServiceHomeCleaning:
		return HomeCleaningDetails{Bedrooms: intField(m, "bedrooms", 2)}
	case ServiceCarpetCleaning:
		return CarpetDetails{
			Rooms:           intField(m, "rooms", 2),
			Hallways:        intField(m, "hallways", 0),
			StairFlights:    intField(m, "stairFlights", 0),
			ScotchgardRooms: intField(m, "scotchgardRooms", 0),
			Tier:            stringField(m, "tier", "standard"),
			Package:         stringField(m, "package", ""),
		}
	case ServicePressureWashing:
		sqft := intField(m, "squareFootage", 0)
		if sqft == 0 {
			sqft = intField(m, "sqft", 0)
		}
		return PressureWashingDetails{SquareFootage: sqft}
	case ServiceLandscaping:
		plan := stringField(m, "planType", "")
		if plan == "" {
			if strings.Contains(strings.ToLower(scope), "cleanup") {
				plan = "cleanup"
			} else {
				plan = "one_time_mow"
			}
		}
		return LandscapingDetails{
			LotSize:  stringField(m, "lotSize", "quarter"),
			PlanType: plan,
		}
	case ServicePoolCleaning:
		return PoolDetails{Tier: stringField(m, "tier", "standard")}
	case ServiceHandyman:
		return HandymanDetails{Hours: hoursField(m, estimatedHours)}
	case ServiceMovingLabor:
		movers := intField(m, "movers", 0)
		if movers == 0 {
			movers = intField(m, "crew", 1)
		}
		return MovingLaborDetails{
			Movers: movers,
			Hours:  hoursField(m, estimatedHours),
		}
	case ServiceGarageCleanout:
		return GarageCleanoutDetails{Size: stringField(m, "size", "")}
	case ServiceLightDemolition:
		return DemolitionDetails{}
	default:
		return ConsultationDetails{}
	}
}

func hoursField(m map[string]any, estimatedHours float64) float64 {
	h := floatField(m, "hours", 0)
	if h <= 0 {
		h = estimatedHours
	}
	if h < 1 {
		h = 1
	}
	return h
}

func intField(m map[string]any, key string, def int) int {
	v := floatField(m, key, float64(def))
	return int(math.Round(v))
}

func floatField(m map[string]any, key string, def float64) float64 {
	raw, ok := m[key]
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case float64:
		if v > 0 {
			return v
		}
	case int:
		if v > 0 {
			return float64(v)
		}
	}
	return def
}

func stringField(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func boolField(m map[string]any, key string) bool {
	v, ok := m[key].(bool)
	return ok && v
}
