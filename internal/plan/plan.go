package plan

import (
	"strings"
)

// Formatting markers shared contractually between the synthesis prompt and
// the document renderer's line classifier. Change them together.
const (
	HeadingMarker    = "##"
	SubHeadingMarker = "#"
	BulletMarker     = "-"
)

// BulletMarkers lists every line prefix treated as a bulleted item.
var BulletMarkers = []string{BulletMarker, "*", "•"}

// Section names the synthesis prompt asks for. The narrative is free-form;
// these are recognizable heading names, not a parse contract.
const (
	SectionOverview    = "Overview"
	SectionFlights     = "Flights"
	SectionHotels      = "Hotels"
	SectionCars        = "Cars"
	SectionAttractions = "Attractions"
	SectionBudget      = "Budget"
	SectionTips        = "Tips"
)

// RequiredSections lists the sections every generated plan is asked to carry.
func RequiredSections() []string {
	return []string{
		SectionOverview,
		SectionFlights,
		SectionHotels,
		SectionCars,
		SectionAttractions,
		SectionBudget,
		SectionTips,
	}
}

// TripPlan is the free-form narrative itinerary produced by synthesis,
// logically partitioned into sections recognizable by heading markers.
type TripPlan string

// String returns the narrative text.
func (p TripPlan) String() string {
	return string(p)
}

// HasSection reports whether the narrative contains a heading line naming
// the given section. It scans heading-marked lines only.
func (p TripPlan) HasSection(name string) bool {
	for _, line := range strings.Split(string(p), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, SubHeadingMarker) {
			continue
		}
		if strings.Contains(strings.ToLower(trimmed), strings.ToLower(name)) {
			return true
		}
	}
	return false
}
