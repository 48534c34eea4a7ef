package response_models

// TripPlanDocument is the envelope the itinerary model is asked to emit.
type TripPlanDocument struct {
	TripPlan TripPlan `json:"trip_plan"`
}

type TripPlan struct {
	Origin              string         `json:"origin"`
	Destination         string         `json:"destination"`
	DurationDays        int            `json:"duration_days"`
	Budget              string         `json:"budget"`
	GroupSize           string         `json:"group_size"`
	Interests           []string       `json:"interests"`
	SpecialRequirements string         `json:"special_requirements"`
	Hotels              []Hotel        `json:"hotels"`
	Itinerary           []ItineraryDay `json:"itinerary"`
}

type GeoCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HotelImageURL and PlaceImageURL are pointers without omitempty: when no
// trustworthy image can be found the field is serialized as an explicit null
// so the client can render its own placeholder.
type Hotel struct {
	HotelName      string         `json:"hotel_name"`
	HotelAddress   string         `json:"hotel_address"`
	PricePerNight  string         `json:"price_per_night"`
	HotelImageURL  *string        `json:"hotel_image_url"`
	GeoCoordinates GeoCoordinates `json:"geo_coordinates"`
	Rating         string         `json:"rating"`
	Description    string         `json:"description"`
}

type ItineraryDay struct {
	Day                string     `json:"day"`
	DayPlan            string     `json:"day_plan"`
	BestTimeToVisitDay string     `json:"best_time_to_visit_day"`
	Activities         []Activity `json:"activities"`
}

type Activity struct {
	PlaceName       string         `json:"place_name"`
	PlaceDetails    string         `json:"place_details"`
	PlaceImageURL   *string        `json:"place_image_url"`
	GeoCoordinates  GeoCoordinates `json:"geo_coordinates"`
	PlaceAddress    string         `json:"place_address"`
	TicketPricing   string         `json:"ticket_pricing"`
	TimeTravelEach  string         `json:"time_travel_each_location"`
	BestTimeToVisit string         `json:"best_time_to_visit"`
}
