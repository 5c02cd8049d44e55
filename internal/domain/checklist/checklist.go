// Package checklist builds the equipment and supply list a provider should
// bring to a job, from the service type plus keywords found in the scope
// analysis.
package checklist

import (
	"strings"

	"snapbook/internal/domain/entities"
)

var baseChecklists = map[entities.ServiceType][]string{
	entities.ServiceGutterCleaning: {
		"Extension ladder (minimum 24ft for single story)",
		"Gutter scoop/trowel",
		"Leaf blower",
		"5-gallon bucket with hook",
		"Trash bags (heavy duty)",
		"Garden hose with spray nozzle for flush test",
		"Work gloves (waterproof)",
		"Safety glasses",
		"Tarp for ground debris collection",
	},
	entities.ServiceJunkRemoval: {
		"Work gloves (heavy duty)",
		"Dolly/hand truck",
		"Moving blankets",
		"Tarps for truck bed",
		"Ratchet straps",
		"Broom and dustpan for cleanup",
		"Trash bags (contractor grade)",
		"PPE: dust mask, steel-toe boots",
	},
	entities.ServiceHomeCleaning: {
		"Vacuum cleaner with attachments",
		"Mop and bucket",
		"Microfiber cloths (pack of 10+)",
		"All-purpose cleaner",
		"Glass cleaner",
		"Bathroom disinfectant",
		"Toilet brush",
		"Duster with extension pole",
		"Trash bags",
		"Rubber gloves",
		"Scrub brushes",
	},
	entities.ServiceCarpetCleaning: {
		"Carpet extractor/steam cleaner",
		"Pre-treatment spray",
		"Spot treatment solution",
		"Carpet rake/groomer",
		"Corner and edge tool",
		"Furniture sliders/protectors",
		"Fan for drying",
		"Clean water supply (5+ gallons per room)",
		"Wet/dry vacuum for extraction",
	},
	entities.ServicePressureWashing: {
		"Pressure washer (minimum 2500 PSI)",
		"Surface cleaner attachment (for flat surfaces)",
		"Detergent/degreaser (biodegradable)",
		"Safety goggles",
		"Waterproof boots",
		"Extension wand (12ft)",
		"Multiple nozzle tips (15-degree, 25-degree, 40-degree)",
		"Garden hose (minimum 50ft for water supply)",
		"Tarps for plant/fixture protection",
	},
	entities.ServiceLandscaping: {
		"Commercial mower",
		"String trimmer/weed eater",
		"Edger",
		"Leaf blower",
		"Hedge trimmers",
		"Pruning shears",
		"Rake (leaf and garden)",
		"Wheelbarrow",
		"Trash bags (lawn and leaf)",
		"Work gloves",
		"Safety glasses",
		"Ear protection",
	},
	entities.ServicePoolCleaning: {
		"Telescoping pole (minimum 16ft)",
		"Skimmer net",
		"Pool brush (wall and floor)",
		"Vacuum head and hose",
		"Water test kit (pH, chlorine, alkalinity)",
		"Chlorine/shock treatment",
		"pH adjuster (up and down)",
		"Algaecide",
		"Filter cleaner",
		"Leaf rake (deep bag)",
		"O-ring lubricant",
	},
	entities.ServiceHandyman: {
		"Basic tool kit (hammer, screwdrivers, pliers, adjustable wrench)",
		"Cordless drill/driver with bit set",
		"Tape measure",
		"Level",
		"Utility knife",
		"Stud finder",
		"Electrical tester (non-contact voltage detector)",
		"Plumber's tape and basic plumbing fittings",
		"Assorted screws, nails, anchors",
		"Caulk gun and silicone caulk",
		"Flashlight/headlamp",
		"Drop cloth",
	},
	entities.ServiceMovingLabor: {
		"Furniture dolly",
		"Appliance dolly (if large items noted)",
		"Moving blankets (minimum 12)",
		"Stretch wrap",
		"Ratchet straps",
		"Furniture sliders",
		"Tool kit (for furniture disassembly)",
		"Work gloves",
		"Floor runners/protection",
		"Tape and markers for labeling",
	},
	entities.ServiceGarageCleanout: {
		"Heavy-duty trash bags (contractor grade)",
		"Broom and dustpan",
		"Shop vacuum",
		"Dolly/hand truck",
		"Sorting bins/tarps (keep, donate, trash)",
		"Work gloves",
		"Dust mask/respirator",
		"Shelving/organization supplies if requested",
		"Ratchet straps for hauling",
		"PPE: safety glasses, steel-toe boots",
	},
	entities.ServiceLightDemolition: {
		"Sledgehammer (8lb and 16lb)",
		"Pry bar/crowbar",
		"Reciprocating saw with demolition blades",
		"Heavy-duty trash bags",
		"Wheelbarrow or debris cart",
		"Dust mask/respirator (N95 minimum)",
		"Safety goggles",
		"Hard hat",
		"Steel-toe boots",
		"Work gloves (cut-resistant)",
		"Tarps and plastic sheeting for containment",
		"Shop vacuum for dust cleanup",
	},
	entities.ServiceHomeConsultation: {
		"Tablet or clipboard for notes",
		"Measuring tape (25ft)",
		"Moisture meter",
		"Infrared thermometer",
		"Camera/phone for documentation",
		"Flashlight",
		"Level",
		"Inspection mirror",
		"PPE: shoe covers, gloves",
		"Report templates/forms",
	},
}

type contextRule struct {
	keywords []string
	items    []string
}

var contextualAdditions = map[entities.ServiceType][]contextRule{
	entities.ServiceGutterCleaning: {
		{[]string{"2-story", "two story", "second floor", "2 story"}, []string{"Safety harness and roof anchor", "32ft extension ladder or taller"}},
		{[]string{"3-story", "three story", "3 story"}, []string{"Safety harness and roof anchor (required)", "40ft extension ladder", "Rope and pulley system for debris lowering"}},
		{[]string{"heavy debris", "clogged", "packed"}, []string{"Extra contractor bags (10+)", "Pressure nozzle attachment for stubborn clogs"}},
		{[]string{"guard", "screen", "mesh"}, []string{"Gutter guard removal tool", "Replacement clips if guards are brittle"}},
	},
	entities.ServiceJunkRemoval: {
		{[]string{"full", "large", "a lot", "entire"}, []string{"Full-size truck or trailer", "Extra tarps for multiple loads"}},
		{[]string{"half", "medium", "moderate"}, []string{"Pickup truck or small trailer"}},
		{[]string{"heavy", "appliance", "fridge", "washer", "piano", "safe"}, []string{"Appliance dolly", "Furniture straps rated for 800+ lbs", "Second crew member recommended"}},
		{[]string{"electronics", "tv", "computer", "ewaste"}, []string{"E-waste recycling plan (do not landfill)", "Anti-static handling gloves"}},
		{[]string{"yard", "outdoor", "branches", "tree"}, []string{"Chainsaw or pruning saw for large branches", "Yard waste bags"}},
	},
	entities.ServicePressureWashing: {
		{[]string{"house", "siding", "exterior"}, []string{"Soft wash system for delicate siding", "Extension wand (18ft+ for 2-story)", "House wash detergent"}},
		{[]string{"driveway", "concrete", "patio", "garage floor"}, []string{"Surface cleaner attachment (required for flat work)", "Concrete degreaser"}},
		{[]string{"deck", "wood", "fence"}, []string{"Wood brightener/restorer", "Low-pressure tip (40-degree) to prevent wood damage"}},
		{[]string{"2-story", "two story", "tall"}, []string{"18ft+ extension wand", "Telescoping wand adapter"}},
		{[]string{"mold", "mildew", "algae", "green"}, []string{"Sodium hypochlorite solution", "Pump sprayer for pre-treatment"}},
	},
	entities.ServiceLandscaping: {
		{[]string{"overgrown", "cleanup", "neglected"}, []string{"Chainsaw for thick growth", "Extra yard waste bags (20+)", "Heavy-duty brush cutter"}},
		{[]string{"tree", "branch", "trim"}, []string{"Pole saw", "Chainsaw", "Chipper/shredder if available"}},
		{[]string{"mulch", "bed", "flower"}, []string{"Garden fork and spade", "Wheelbarrow for mulch spreading", "Landscape fabric"}},
		{[]string{"irrigation", "sprinkler"}, []string{"Sprinkler head wrench", "PVC cutter and fittings", "Teflon tape"}},
	},
	entities.ServicePoolCleaning: {
		{[]string{"green", "algae", "neglect", "swamp"}, []string{"Triple shock treatment supply", "Extra algaecide (double dose)", "Clarifier", "Submersible pump if water replacement needed"}},
		{[]string{"filter", "cartridge"}, []string{"Replacement filter cartridge or DE powder", "Filter cleaning solution"}},
		{[]string{"equipment", "pump", "motor"}, []string{"Multimeter for electrical testing", "Replacement pump seal kit", "Lubricant for o-rings"}},
	},
	entities.ServiceHandyman: {
		{[]string{"plumbing", "leak", "faucet", "pipe", "drain"}, []string{"Pipe wrench", "Basin wrench", "Plumber's putty", "Replacement supply lines", "Drain snake"}},
		{[]string{"electrical", "outlet", "switch", "light", "fixture"}, []string{"Wire strippers", "Wire nuts assortment", "Electrical tape", "Replacement outlets/switches"}},
		{[]string{"drywall", "hole", "patch", "wall"}, []string{"Drywall patch kit", "Joint compound", "Sanding block", "Putty knife set", "Primer and paint"}},
		{[]string{"door", "hinge", "lock", "knob"}, []string{"Chisel set", "Replacement hinges and screws", "Door shim set", "Deadbolt/knob replacement if needed"}},
		{[]string{"paint", "touch up", "wall"}, []string{"Paint roller and tray", "Painter's tape", "Drop cloths", "Paint brushes (2-inch and 4-inch)"}},
		{[]string{"shelf", "mount", "hang", "tv", "bracket"}, []string{"Stud finder", "Toggle bolts for hollow walls", "Mounting hardware", "Level (48-inch)"}},
	},
	entities.ServiceCarpetCleaning: {
		{[]string{"pet", "urine", "animal", "dog", "cat"}, []string{"Enzyme-based pet odor treatment", "UV blacklight for stain detection", "Extra pre-treatment solution"}},
		{[]string{"deep", "stain", "heavy traffic", "commercial"}, []string{"Rotary extraction tool", "Heavy-duty pre-spray", "Extra passes planned"}},
		{[]string{"stairs", "staircase"}, []string{"Stair tool attachment", "Hand sprayer for edges"}},
	},
	entities.ServiceMovingLabor: {
		{[]string{"piano", "gun safe", "pool table"}, []string{"Piano board/skid", "Heavy-duty straps rated 1000+ lbs", "4-person crew minimum"}},
		{[]string{"stairs", "second floor", "upstairs", "walk-up"}, []string{"Stair climbing dolly", "Extra moving blankets for wall protection", "Floor runners for stairs"}},
		{[]string{"disassemble", "bed", "furniture"}, []string{"Allen key set", "Socket wrench set", "Ziplock bags for hardware", "Labeling tape"}},
	},
	entities.ServiceGarageCleanout: {
		{[]string{"3-car", "large", "packed", "full"}, []string{"Full-size trailer or dumpster rental", "Extended crew time (4+ hours)"}},
		{[]string{"hazardous", "paint", "chemical", "oil"}, []string{"Hazmat disposal plan (separate from regular waste)", "Chemical-resistant gloves", "Containment bins"}},
	},
	entities.ServiceLightDemolition: {
		{[]string{"tile", "floor", "ceramic"}, []string{"Floor scraper (long-handle)", "Tile chisel set", "Knee pads"}},
		{[]string{"wall", "drywall", "partition"}, []string{"Drywall saw", "Stud finder", "Utility knife for scoring"}},
		{[]string{"deck", "wood", "fence"}, []string{"Circular saw", "Cat's paw nail puller", "Sawzall with wood blades"}},
		{[]string{"concrete", "block", "masonry"}, []string{"Rotary hammer drill", "Masonry chisel set", "Concrete saw or grinder"}},
		{[]string{"asbestos", "old", "pre-1980"}, []string{"WARNING: Potential asbestos - professional abatement assessment required before demolition", "N100 respirator minimum", "Disposable coveralls"}},
	},
}

// Generate returns the equipment checklist for a job: the service's base list
// plus any contextual additions whose keywords appear in the scope analysis.
// Matching is case-insensitive substring; duplicate items are added once. An
// unknown service type falls back to the handyman base kit.
func Generate(serviceType entities.ServiceType, analysis string) []string {
	base, ok := baseChecklists[serviceType]
	if !ok {
		base = baseChecklists[entities.ServiceHandyman]
	}

	items := make([]string, len(base))
	copy(items, base)

	rules := contextualAdditions[serviceType]
	if len(rules) == 0 || analysis == "" {
		return items
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[item] = struct{}{}
	}

	lower := strings.ToLower(analysis)
	for _, rule := range rules {
		matched := false
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, item := range rule.items {
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			items = append(items, item)
		}
	}

	return items
}
