package entities

// ServiceType enumerates the bookable service catalog.
//
// Domain notes:
//   - The vision validator may only emit types from this set; anything else is
//     remapped to ServiceHomeConsultation before pricing.
//   - ServiceHomeConsultation is the low-confidence catch-all (free lead-gen).

type ServiceType string

const (
	ServiceJunkRemoval      ServiceType = "junk_removal"
	ServiceHomeCleaning     ServiceType = "home_cleaning"
	ServiceCarpetCleaning   ServiceType = "carpet_cleaning"
	ServicePressureWashing  ServiceType = "pressure_washing"
	ServiceLandscaping      ServiceType = "landscaping"
	ServicePoolCleaning     ServiceType = "pool_cleaning"
	ServiceHandyman         ServiceType = "handyman"
	ServiceGutterCleaning   ServiceType = "gutter_cleaning"
	ServiceMovingLabor      ServiceType = "moving_labor"
	ServiceGarageCleanout   ServiceType = "garage_cleanout"
	ServiceLightDemolition  ServiceType = "light_demolition"
	ServiceHomeConsultation ServiceType = "home_consultation"
)

var serviceLabels = map[ServiceType]string{
	ServiceJunkRemoval:      "Junk Removal",
	ServiceHomeCleaning:     "Home Cleaning",
	ServiceCarpetCleaning:   "Carpet Cleaning",
	ServicePressureWashing:  "Pressure Washing",
	ServiceLandscaping:      "Landscaping",
	ServicePoolCleaning:     "Pool Cleaning",
	ServiceHandyman:         "Handyman",
	ServiceGutterCleaning:   "Gutter Cleaning",
	ServiceMovingLabor:      "Moving Labor",
	ServiceGarageCleanout:   "Garage Cleanout",
	ServiceLightDemolition:  "Light Demolition",
	ServiceHomeConsultation: "Home Consultation",
}

// ParseServiceType maps a raw string to a catalog entry.
func ParseServiceType(s string) (ServiceType, bool) {
	t := ServiceType(s)
	_, ok := serviceLabels[t]
	return t, ok
}

// AllServiceTypes returns the catalog in a stable order.
func AllServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceJunkRemoval,
		ServiceHomeCleaning,
		ServiceCarpetCleaning,
		ServicePressureWashing,
		ServiceLandscaping,
		ServicePoolCleaning,
		ServiceHandyman,
		ServiceGutterCleaning,
		ServiceMovingLabor,
		ServiceGarageCleanout,
		ServiceLightDemolition,
		ServiceHomeConsultation,
	}
}

// ServiceLabel returns the customer-facing name for a service type.
func ServiceLabel(t ServiceType) string {
	if label, ok := serviceLabels[t]; ok {
		return label
	}
	return string(t)
}
