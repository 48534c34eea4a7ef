package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"tripmind/internal/models/response_models"
)

// EnrichmentServiceInterface fills in trustworthy image URLs for every hotel
// and activity of a generated plan. Items it cannot resolve get an explicit
// nil so the client knows the lookup was attempted.
type EnrichmentServiceInterface interface {
	EnrichPlanImages(ctx context.Context, plan *response_models.TripPlanDocument)
}

type EnrichmentService struct {
	wikidata  WikidataClientInterface
	wikipedia WikipediaClientInterface
}

func NewEnrichmentService(wikidata WikidataClientInterface, wikipedia WikipediaClientInterface) EnrichmentServiceInterface {
	return &EnrichmentService{wikidata: wikidata, wikipedia: wikipedia}
}

// enrichmentState is request-scoped: the cache memoizes lookups (misses
// included) so repeated place names cost one round of API calls, and
// usedImages keeps every image in a plan unique.
type enrichmentState struct {
	cache      map[string]string
	usedImages map[string]bool
}

func newEnrichmentState() *enrichmentState {
	return &enrichmentState{
		cache:      make(map[string]string),
		usedImages: make(map[string]bool),
	}
}

// EnrichPlanImages walks the plan in order: hotels first, then each day's
// activities. Failures on a single item never abort the pass; the item is
// left with a nil URL and the walk continues.
func (s *EnrichmentService) EnrichPlanImages(ctx context.Context, plan *response_models.TripPlanDocument) {
	if plan == nil {
		return
	}

	state := newEnrichmentState()
	destination := plan.TripPlan.Destination

	for i := range plan.TripPlan.Hotels {
		if ctx.Err() != nil {
			return
		}
		hotel := &plan.TripPlan.Hotels[i]
		hotel.HotelImageURL = s.resolveItemImage(ctx, state, existingURL(hotel.HotelImageURL), hotel.HotelName, destination, true)
	}

	for i := range plan.TripPlan.Itinerary {
		day := &plan.TripPlan.Itinerary[i]
		for j := range day.Activities {
			if ctx.Err() != nil {
				return
			}
			activity := &day.Activities[j]
			activity.PlaceImageURL = s.resolveItemImage(ctx, state, existingURL(activity.PlaceImageURL), activity.PlaceName, destination, false)
		}
	}
}

func existingURL(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}

// resolveItemImage keeps a genuine model-supplied URL as-is (unless another
// item already claimed it) and otherwise runs the resolution ladder.
func (s *EnrichmentService) resolveItemImage(ctx context.Context, state *enrichmentState, current, name, destination string, isHotel bool) *string {
	if isGenuineImageURL(current) && !state.usedImages[current] {
		state.usedImages[current] = true
		return &current
	}

	resolved := s.resolveImage(ctx, state, name, destination, isHotel)
	if resolved == "" {
		return nil
	}
	state.usedImages[resolved] = true
	return &resolved
}

// resolveImage tries, in order: Wikidata on the name (and "name, destination"),
// Wikidata on the destination alone, then Wikipedia title lookup and search.
// Results, including misses, are cached per plan. A blank name degrades to a
// destination-only search; resolution is skipped only when both queries are
// blank.
func (s *EnrichmentService) resolveImage(ctx context.Context, state *enrichmentState, name, destination string, isHotel bool) string {
	name = strings.TrimSpace(name)

	secondary := name
	if destination != "" {
		if name == "" {
			secondary = destination
		} else {
			secondary = name + ", " + destination
		}
	}
	if name == "" && secondary == "" {
		return ""
	}

	cacheKey := fmt.Sprintf("%s||%s||%t", name, secondary, isHotel)
	if cached, ok := state.cache[cacheKey]; ok {
		if cached != "" && !state.usedImages[cached] {
			return cached
		}
		return ""
	}

	resolved := s.resolveUncached(ctx, state, name, secondary, destination, isHotel)
	state.cache[cacheKey] = resolved
	return resolved
}

func (s *EnrichmentService) resolveUncached(ctx context.Context, state *enrichmentState, name, secondary, destination string, isHotel bool) string {
	var queries []string
	if name != "" {
		queries = append(queries, name)
	}
	if secondary != "" && secondary != name {
		queries = append(queries, secondary)
	}
	if url := s.fromWikidata(ctx, state, queries, name, destination, isHotel); url != "" {
		return url
	}
	if destination != "" && destination != name && destination != secondary {
		if url := s.fromWikidata(ctx, state, []string{destination}, name, destination, isHotel); url != "" {
			return url
		}
	}
	return s.fromWikipedia(ctx, state, name, secondary, destination, isHotel)
}

// fromWikidata searches each query, scores the merged entity set and returns
// the Commons URL of the best unused candidate. The score only orders the
// candidates; even a weak sole match beats no image at all.
func (s *EnrichmentService) fromWikidata(ctx context.Context, state *enrichmentState, queries []string, name, destination string, isHotel bool) string {
	seen := make(map[string]bool)
	var ids []string
	for _, query := range queries {
		if ctx.Err() != nil {
			return ""
		}
		found, err := s.wikidata.SearchEntities(ctx, query)
		if err != nil {
			log.Printf("wikidata search failed for %q: %v", query, err)
			continue
		}
		for _, id := range found {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return ""
	}

	entities, err := s.wikidata.FetchEntities(ctx, ids)
	if err != nil {
		log.Printf("wikidata fetch failed for %q: %v", name, err)
		return ""
	}

	type scored struct {
		entity WikidataEntity
		score  int
	}
	candidates := make([]scored, 0, len(entities))
	for _, entity := range entities {
		if entity.ImageFile == "" {
			continue
		}
		candidates = append(candidates, scored{entity: entity, score: scoreWikidataEntity(entity, name, destination, isHotel)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	for _, candidate := range candidates {
		url := buildCommonsURL(candidate.entity.ImageFile)
		if url != "" && !state.usedImages[url] {
			return url
		}
	}
	return ""
}

// fromWikipedia falls back to the page-image API. The exact-title lookup,
// the destination-scoped search and the bare-name search all contribute to
// one candidate pool, scored together.
func (s *EnrichmentService) fromWikipedia(ctx context.Context, state *enrichmentState, name, secondary, destination string, isHotel bool) string {
	attempts := []func() ([]ImageCandidate, error){
		func() ([]ImageCandidate, error) { return s.wikipedia.LookupByTitle(ctx, name) },
		func() ([]ImageCandidate, error) { return s.wikipedia.SearchImages(ctx, secondary, 10) },
		func() ([]ImageCandidate, error) { return s.wikipedia.SearchImages(ctx, name, 8) },
	}

	var candidates []ImageCandidate
	for _, attempt := range attempts {
		if ctx.Err() != nil {
			return ""
		}
		found, err := attempt()
		if err != nil {
			log.Printf("wikipedia lookup failed for %q: %v", name, err)
			continue
		}
		candidates = append(candidates, found...)
	}

	type scored struct {
		candidate ImageCandidate
		score     int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		ranked = append(ranked, scored{
			candidate: candidate,
			score:     scoreWikipediaTitle(candidate.Title, name, destination, isHotel),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	for _, entry := range ranked {
		if !state.usedImages[entry.candidate.ImageURL] {
			return entry.candidate.ImageURL
		}
	}
	return ""
}
