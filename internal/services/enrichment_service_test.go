package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmind/internal/models/response_models"
)

type fakeWikidataClient struct {
	searchResults map[string][]string
	entities      map[string]WikidataEntity
	searchCalls   []string
	fetchCalls    int
}

func (f *fakeWikidataClient) SearchEntities(ctx context.Context, query string) ([]string, error) {
	f.searchCalls = append(f.searchCalls, query)
	return f.searchResults[query], nil
}

func (f *fakeWikidataClient) FetchEntities(ctx context.Context, ids []string) ([]WikidataEntity, error) {
	f.fetchCalls++
	var entities []WikidataEntity
	for _, id := range ids {
		if entity, ok := f.entities[id]; ok {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}

type fakeWikipediaClient struct {
	titleResults  map[string][]ImageCandidate
	searchResults map[string][]ImageCandidate
	lookupCalls   []string
	searchCalls   []string
}

func (f *fakeWikipediaClient) LookupByTitle(ctx context.Context, title string) ([]ImageCandidate, error) {
	f.lookupCalls = append(f.lookupCalls, title)
	return f.titleResults[title], nil
}

func (f *fakeWikipediaClient) SearchImages(ctx context.Context, query string, limit int) ([]ImageCandidate, error) {
	f.searchCalls = append(f.searchCalls, query)
	return f.searchResults[query], nil
}

func emptyFakes() (*fakeWikidataClient, *fakeWikipediaClient) {
	return &fakeWikidataClient{
			searchResults: map[string][]string{},
			entities:      map[string]WikidataEntity{},
		}, &fakeWikipediaClient{
			titleResults:  map[string][]ImageCandidate{},
			searchResults: map[string][]ImageCandidate{},
		}
}

func planWithHotel(name, destination string) *response_models.TripPlanDocument {
	return &response_models.TripPlanDocument{
		TripPlan: response_models.TripPlan{
			Destination: destination,
			Hotels:      []response_models.Hotel{{HotelName: name}},
		},
	}
}

func TestEnrichPlanImagesResolvesHotelViaWikidata(t *testing.T) {
	wikidata, wikipedia := emptyFakes()
	wikidata.searchResults["Grand Palace Hotel"] = []string{"Q100"}
	wikidata.entities["Q100"] = WikidataEntity{
		ID:          "Q100",
		Label:       "Grand Palace Hotel",
		Description: "hotel in Bangkok",
		ImageFile:   "Grand Palace Hotel.jpg",
		InstanceOf:  []string{"Q27686"},
	}

	service := NewEnrichmentService(wikidata, wikipedia)
	plan := planWithHotel("Grand Palace Hotel", "Bangkok")
	service.EnrichPlanImages(context.Background(), plan)

	require.NotNil(t, plan.TripPlan.Hotels[0].HotelImageURL)
	assert.Equal(t,
		"https://commons.wikimedia.org/wiki/Special:FilePath/Grand_Palace_Hotel.jpg?width=1200",
		*plan.TripPlan.Hotels[0].HotelImageURL)
}

func TestEnrichPlanImagesUnresolvedItemGetsNil(t *testing.T) {
	wikidata, wikipedia := emptyFakes()

	service := NewEnrichmentService(wikidata, wikipedia)
	plan := &response_models.TripPlanDocument{
		TripPlan: response_models.TripPlan{
			Destination: "Nowhere",
			Itinerary: []response_models.ItineraryDay{{
				Day:        "Day 1",
				Activities: []response_models.Activity{{PlaceName: "Mystery Spot"}},
			}},
		},
	}
	service.EnrichPlanImages(context.Background(), plan)

	assert.Nil(t, plan.TripPlan.Itinerary[0].Activities[0].PlaceImageURL)
}

func TestEnrichPlanImagesKeepsGenuineModelURL(t *testing.T) {
	wikidata, wikipedia := emptyFakes()
	existing := "https://upload.wikimedia.org/wikipedia/commons/a/ab/Wat_Arun.jpg"

	service := NewEnrichmentService(wikidata, wikipedia)
	plan := planWithHotel("Wat Arun Riverside", "Bangkok")
	plan.TripPlan.Hotels[0].HotelImageURL = &existing
	service.EnrichPlanImages(context.Background(), plan)

	require.NotNil(t, plan.TripPlan.Hotels[0].HotelImageURL)
	assert.Equal(t, existing, *plan.TripPlan.Hotels[0].HotelImageURL)
	assert.Empty(t, wikidata.searchCalls)
}

func TestEnrichPlanImagesReplacesPlaceholderURL(t *testing.T) {
	wikidata, wikipedia := emptyFakes()
	placeholder := "https://example.com/hotel.jpg"
	wikidata.searchResults["Seaside Inn"] = []string{"Q200"}
	wikidata.entities["Q200"] = WikidataEntity{
		ID:         "Q200",
		Label:      "Seaside Inn",
		ImageFile:  "Seaside Inn.jpg",
		InstanceOf: []string{"Q27686"},
	}

	service := NewEnrichmentService(wikidata, wikipedia)
	plan := planWithHotel("Seaside Inn", "Phuket")
	plan.TripPlan.Hotels[0].HotelImageURL = &placeholder
	service.EnrichPlanImages(context.Background(), plan)

	require.NotNil(t, plan.TripPlan.Hotels[0].HotelImageURL)
	assert.NotEqual(t, placeholder, *plan.TripPlan.Hotels[0].HotelImageURL)
	assert.Contains(t, *plan.TripPlan.Hotels[0].HotelImageURL, "Seaside_Inn.jpg")
}

func TestEnrichPlanImagesSoleWeakCandidateStillWins(t *testing.T) {
	wikidata, wikipedia := emptyFakes()
	wikidata.searchResults["Old Customs House"] = []string{"Q900"}
	wikidata.entities["Q900"] = WikidataEntity{
		ID:        "Q900",
		Label:     "Unrelated Thing",
		ImageFile: "Unrelated.jpg",
	}

	service := NewEnrichmentService(wikidata, wikipedia)
	plan := &response_models.TripPlanDocument{
		TripPlan: response_models.TripPlan{
			Destination: "Bangkok",
			Itinerary: []response_models.ItineraryDay{{
				Day:        "Day 1",
				Activities: []response_models.Activity{{PlaceName: "Old Customs House"}},
			}},
		},
	}
	service.EnrichPlanImages(context.Background(), plan)

	// A zero-score candidate is still the best on offer; the score only
	// orders candidates, it is not an acceptance threshold.
	require.NotNil(t, plan.TripPlan.Itinerary[0].Activities[0].PlaceImageURL)
	assert.Equal(t,
		"https://commons.wikimedia.org/wiki/Special:FilePath/Unrelated.jpg?width=1200",
		*plan.TripPlan.Itinerary[0].Activities[0].PlaceImageURL)
}

func TestEnrichPlanImagesWeakWikipediaCandidateStillWins(t *testing.T) {
	wikidata, wikipedia := emptyFakes()
	wikipedia.searchResults["Qwerty Corner"] = []ImageCandidate{
		{Title: "Somewhere Else", ImageURL: "https://upload.wikimedia.org/elsewhere.jpg"},
	}

	service := NewEnrichmentService(wikidata, wikipedia)
	plan := &response_models.TripPlanDocument{
		TripPlan: response_models.TripPlan{
			Itinerary: []response_models.ItineraryDay{{
				Day:        "Day 1",
				Activities: []response_models.Activity{{PlaceName: "Qwerty Corner"}},
			}},
		},
	}
	service.EnrichPlanImages(context.Background(), plan)

	require.NotNil(t, plan.TripPlan.Itinerary[0].Activities[0].PlaceImageURL)
	assert.Equal(t, "https://upload.wikimedia.org/elsewhere.jpg", *plan.TripPlan.Itinerary[0].Activities[0].PlaceImageURL)
}

func TestEnrichPlanImagesEmptyNameFallsBackToDestination(t *testing.T) {
	wikidata, wikipedia := emptyFakes()
	wikidata.searchResults["Bangkok"] = []string{"Q400"}
	wikidata.entities["Q400"] = WikidataEntity{
		ID:        "Q400",
		Label:     "Bangkok",
		ImageFile: "Bangkok skyline.jpg",
	}

	service := NewEnrichmentService(wikidata, wikipedia)
	plan := planWithHotel("", "Bangkok")
	service.EnrichPlanImages(context.Background(), plan)

	// Destination is searched once, not re-queried by the
	// destination-alone pass.
	assert.Equal(t, []string{"Bangkok"}, wikidata.searchCalls)
	require.NotNil(t, plan.TripPlan.Hotels[0].HotelImageURL)
	assert.Equal(t,
		"https://commons.wikimedia.org/wiki/Special:FilePath/Bangkok_skyline.jpg?width=1200",
		*plan.TripPlan.Hotels[0].HotelImageURL)
}

func TestEnrichPlanImagesEnforcesPlanWideUniqueness(t *testing.T) {
	wikidata, wikipedia := emptyFakes()
	wikidata.searchResults["Twin Towers Hotel"] = []string{"Q300"}
	wikidata.entities["Q300"] = WikidataEntity{
		ID:         "Q300",
		Label:      "Twin Towers Hotel",
		ImageFile:  "Twin Towers Hotel.jpg",
		InstanceOf: []string{"Q27686"},
	}

	service := NewEnrichmentService(wikidata, wikipedia)
	plan := &response_models.TripPlanDocument{
		TripPlan: response_models.TripPlan{
			Destination: "Bangkok",
			Hotels: []response_models.Hotel{
				{HotelName: "Twin Towers Hotel"},
				{HotelName: "Twin Towers Hotel"},
			},
		},
	}
	service.EnrichPlanImages(context.Background(), plan)

	require.NotNil(t, plan.TripPlan.Hotels[0].HotelImageURL)
	assert.Nil(t, plan.TripPlan.Hotels[1].HotelImageURL)
}

func TestEnrichPlanImagesCachesRepeatedLookups(t *testing.T) {
	wikidata, wikipedia := emptyFakes()

	service := NewEnrichmentService(wikidata, wikipedia)
	plan := &response_models.TripPlanDocument{
		TripPlan: response_models.TripPlan{
			Destination: "Bangkok",
			Itinerary: []response_models.ItineraryDay{{
				Day: "Day 1",
				Activities: []response_models.Activity{
					{PlaceName: "Unknown Corner"},
					{PlaceName: "Unknown Corner"},
				},
			}},
		},
	}
	service.EnrichPlanImages(context.Background(), plan)

	// The second identical activity must hit the miss cache: the full
	// ladder ran once, so the wikidata queries appear exactly three times
	// (name, "name, destination", destination alone).
	assert.Equal(t, []string{
		"Unknown Corner",
		"Unknown Corner, Bangkok",
		"Bangkok",
	}, wikidata.searchCalls)
	assert.Equal(t, []string{"Unknown Corner"}, wikipedia.lookupCalls)
}

func TestEnrichPlanImagesWikipediaFallback(t *testing.T) {
	wikidata, wikipedia := emptyFakes()
	wikipedia.searchResults["Floating Market, Bangkok"] = []ImageCandidate{
		{Title: "Damnoen Saduak Floating Market", ImageURL: "https://upload.wikimedia.org/market.jpg"},
	}

	service := NewEnrichmentService(wikidata, wikipedia)
	plan := &response_models.TripPlanDocument{
		TripPlan: response_models.TripPlan{
			Destination: "Bangkok",
			Itinerary: []response_models.ItineraryDay{{
				Day:        "Day 1",
				Activities: []response_models.Activity{{PlaceName: "Floating Market"}},
			}},
		},
	}
	service.EnrichPlanImages(context.Background(), plan)

	require.NotNil(t, plan.TripPlan.Itinerary[0].Activities[0].PlaceImageURL)
	assert.Equal(t, "https://upload.wikimedia.org/market.jpg", *plan.TripPlan.Itinerary[0].Activities[0].PlaceImageURL)
}

func TestEnrichPlanImagesStopsOnCancelledContext(t *testing.T) {
	wikidata, wikipedia := emptyFakes()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := NewEnrichmentService(wikidata, wikipedia)
	plan := planWithHotel("Grand Palace Hotel", "Bangkok")
	service.EnrichPlanImages(ctx, plan)

	assert.Empty(t, wikidata.searchCalls)
	assert.Nil(t, plan.TripPlan.Hotels[0].HotelImageURL)
}
