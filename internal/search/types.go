package search

// Category identifies one of the four search partitions.
type Category string

const (
	CategoryFlights     Category = "flights"
	CategoryHotels      Category = "hotels"
	CategoryCars        Category = "cars"
	CategoryAttractions Category = "attractions"
)

// Per-category result caps. Fixed by contract, not user-configurable.
const (
	maxFlightResults     = 3
	maxHotelResults      = 3
	maxCarResults        = 3
	maxAttractionResults = 5
)

// Categories lists all categories in their canonical order.
func Categories() []Category {
	return []Category{CategoryFlights, CategoryHotels, CategoryCars, CategoryAttractions}
}

// maxResults returns the result cap for a category.
func maxResults(c Category) int {
	if c == CategoryAttractions {
		return maxAttractionResults
	}
	return maxFlightResults
}

// Item is one search result within a category. Price is populated by the
// price normalizer and nil when the snippet carries no dollar amount.
type Item struct {
	Name    string   `json:"name"`
	URL     string   `json:"url"`
	Snippet string   `json:"snippet"`
	Price   *float64 `json:"price,omitempty"`
}

// Results holds the aggregated search results per category, in provider
// relevance order, truncated to the per-category caps. Failed lists the
// categories whose provider call failed and were substituted with an empty
// list.
type Results struct {
	Flights     []Item     `json:"flights"`
	Hotels      []Item     `json:"hotels"`
	Cars        []Item     `json:"cars"`
	Attractions []Item     `json:"attractions"`
	Failed      []Category `json:"failed,omitempty"`
}

// ByCategory returns the item list for a category.
func (r *Results) ByCategory(c Category) []Item {
	switch c {
	case CategoryFlights:
		return r.Flights
	case CategoryHotels:
		return r.Hotels
	case CategoryCars:
		return r.Cars
	case CategoryAttractions:
		return r.Attractions
	default:
		return nil
	}
}

// setCategory stores the item list for a category.
func (r *Results) setCategory(c Category, items []Item) {
	switch c {
	case CategoryFlights:
		r.Flights = items
	case CategoryHotels:
		r.Hotels = items
	case CategoryCars:
		r.Cars = items
	case CategoryAttractions:
		r.Attractions = items
	}
}

// HasFailed reports whether a category's provider call failed.
func (r *Results) HasFailed(c Category) bool {
	for _, f := range r.Failed {
		if f == c {
			return true
		}
	}
	return false
}
