package services

import (
	"net/url"
	"regexp"
	"strings"
)

// Wikidata instance-of categories used to bias candidate scoring.
// hotelCategoryIDs: hotel, resort, boutique hotel, hotel chain, lodging.
// attractionCategoryIDs: architectural structures, parks, museums, temples
// and other sight-seeing classes. disallowedCategoryIDs: humans, which
// otherwise dominate search results for places named after people.
var (
	hotelCategoryIDs = map[string]bool{
		"Q27686":    true,
		"Q675196":   true,
		"Q875157":   true,
		"Q217175":   true,
		"Q24127145": true,
	}

	attractionCategoryIDs = map[string]bool{
		"Q41176":   true,
		"Q23413":   true,
		"Q16560":   true,
		"Q33506":   true,
		"Q16970":   true,
		"Q2977":    true,
		"Q163577":  true,
		"Q12280":   true,
		"Q4989906": true,
		"Q22698":   true,
		"Q174782":  true,
		"Q11032":   true,
		"Q811979":  true,
	}

	disallowedCategoryIDs = map[string]bool{
		"Q5": true,
	}
)

var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9\s]`)
var whitespacePattern = regexp.MustCompile(`\s+`)

// imageFileExtPattern accepts URLs whose path ends in a raster image
// extension, with an optional query string.
var imageFileExtPattern = regexp.MustCompile(`(?i)^.*\.(png|jpe?g|gif|webp|bmp|tiff)(\?.*)?$`)

// normalizeText lowercases, strips punctuation to spaces and collapses
// whitespace so that fuzzy containment checks behave predictably.
func normalizeText(text string) string {
	lowered := strings.ToLower(text)
	stripped := nonAlnumPattern.ReplaceAllString(lowered, " ")
	collapsed := whitespacePattern.ReplaceAllString(stripped, " ")
	return strings.TrimSpace(collapsed)
}

// scoreWikidataEntity ranks an entity against the item being enriched.
// Name containment dominates; category membership and per-token overlap
// refine the ordering; human entities are pushed below zero. Name and
// destination are matched against the label only; the description is too
// noisy for containment and contributes just the hotel/resort boost.
func scoreWikidataEntity(entity WikidataEntity, name, destination string, isHotel bool) int {
	score := 0

	label := normalizeText(entity.Label)
	normName := normalizeText(name)
	normDest := normalizeText(destination)

	if normName != "" && strings.Contains(label, normName) {
		score += 25
	}
	if normDest != "" && strings.Contains(label, normDest) {
		score += 6
	}
	for _, token := range strings.Fields(normName) {
		if len(token) >= 3 && strings.Contains(label, token) {
			score += 2
		}
	}

	for _, categoryID := range entity.InstanceOf {
		if isHotel && hotelCategoryIDs[categoryID] {
			score += 18
		}
		if !isHotel && attractionCategoryIDs[categoryID] {
			score += 10
		}
		if disallowedCategoryIDs[categoryID] {
			score -= 50
		}
	}

	if isHotel {
		desc := normalizeText(entity.Description)
		if strings.Contains(desc, "hotel") || strings.Contains(desc, "resort") {
			score += 10
		}
	}

	return score
}

// scoreWikipediaTitle ranks a page title against the item being enriched.
// The weights mirror scoreWikidataEntity but the name bonus is slightly
// lower since a title carries less context than label plus description.
func scoreWikipediaTitle(title, name, destination string, isHotel bool) int {
	score := 0

	haystack := normalizeText(title)
	normName := normalizeText(name)
	normDest := normalizeText(destination)

	if normName != "" && strings.Contains(haystack, normName) {
		score += 20
	}
	if normDest != "" && strings.Contains(haystack, normDest) {
		score += 6
	}
	for _, token := range strings.Fields(normName) {
		if len(token) >= 3 && strings.Contains(haystack, token) {
			score += 2
		}
	}
	if isHotel && strings.Contains(haystack, "hotel") {
		score += 6
	}

	return score
}

// buildCommonsURL turns a Commons file name (as stored in a P18 claim) into
// a directly loadable Special:FilePath URL at a capped width.
func buildCommonsURL(fileName string) string {
	trimmed := strings.TrimSpace(fileName)
	if trimmed == "" {
		return ""
	}
	trimmed = strings.TrimPrefix(trimmed, "File:")
	trimmed = strings.ReplaceAll(trimmed, " ", "_")
	return "https://commons.wikimedia.org/wiki/Special:FilePath/" + url.PathEscape(trimmed) + "?width=1200"
}

// isGenuineImageURL reports whether a model-supplied URL is worth keeping.
// Known Wikimedia hosts are always trusted; anything else must at least be
// an http(s) URL ending in an image file extension. Placeholder domains are
// rejected outright.
func isGenuineImageURL(rawURL string) bool {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return false
	}
	lowered := strings.ToLower(trimmed)
	if !strings.HasPrefix(lowered, "http://") && !strings.HasPrefix(lowered, "https://") {
		return false
	}
	if strings.Contains(lowered, "example.com") || strings.Contains(lowered, "placeholder") {
		return false
	}
	if strings.Contains(lowered, "upload.wikimedia.org/") {
		return true
	}
	if strings.Contains(lowered, "commons.wikimedia.org/wiki/special:filepath/") {
		return true
	}
	return imageFileExtPattern.MatchString(lowered)
}
