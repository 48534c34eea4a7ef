package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "grand palace hotel", normalizeText("  Grand-Palace   HOTEL! "))
	assert.Equal(t, "caf du monde", normalizeText("Café du Monde"))
	assert.Equal(t, "", normalizeText("!!!"))
}

func TestScoreWikidataEntityNameMatchDominates(t *testing.T) {
	matching := WikidataEntity{
		Label:       "Grand Palace Hotel",
		Description: "luxury hotel in Bangkok",
	}
	unrelated := WikidataEntity{
		Label:       "Grand Canyon",
		Description: "canyon in Arizona",
	}

	matchScore := scoreWikidataEntity(matching, "Grand Palace Hotel", "Bangkok", true)
	otherScore := scoreWikidataEntity(unrelated, "Grand Palace Hotel", "Bangkok", true)
	assert.Greater(t, matchScore, otherScore)
}

func TestScoreWikidataEntityHotelCategoryBoost(t *testing.T) {
	base := WikidataEntity{Label: "Grand Palace Hotel"}
	categorized := WikidataEntity{
		Label:      "Grand Palace Hotel",
		InstanceOf: []string{"Q27686"},
	}

	baseScore := scoreWikidataEntity(base, "Grand Palace Hotel", "", true)
	boosted := scoreWikidataEntity(categorized, "Grand Palace Hotel", "", true)
	assert.Equal(t, baseScore+18, boosted)
}

func TestScoreWikidataEntityAttractionBoostOnlyForNonHotels(t *testing.T) {
	entity := WikidataEntity{
		Label:      "National Museum",
		InstanceOf: []string{"Q33506"},
	}

	asAttraction := scoreWikidataEntity(entity, "National Museum", "", false)
	asHotel := scoreWikidataEntity(entity, "National Museum", "", true)
	assert.Greater(t, asAttraction, asHotel)
}

func TestScoreWikidataEntityMatchesLabelNotDescription(t *testing.T) {
	entity := WikidataEntity{
		Label:       "Q-item",
		Description: "the grand palace hotel of bangkok",
	}

	assert.Equal(t, 0, scoreWikidataEntity(entity, "Grand Palace Hotel", "", false))
}

func TestScoreWikidataEntityPersonPenalty(t *testing.T) {
	person := WikidataEntity{
		Label:       "George Washington",
		Description: "first president of the United States",
		InstanceOf:  []string{"Q5"},
	}

	score := scoreWikidataEntity(person, "Washington Monument", "Washington", false)
	assert.Less(t, score, 0)
}

func TestScoreWikidataEntityHotelDescriptionBoost(t *testing.T) {
	entity := WikidataEntity{
		Label:       "The Peninsula",
		Description: "five-star resort on the waterfront",
	}

	hotelScore := scoreWikidataEntity(entity, "The Peninsula", "", true)
	attractionScore := scoreWikidataEntity(entity, "The Peninsula", "", false)
	assert.Equal(t, attractionScore+10, hotelScore)
}

func TestScoreWikipediaTitle(t *testing.T) {
	exact := scoreWikipediaTitle("Wat Arun", "Wat Arun", "Bangkok", false)
	miss := scoreWikipediaTitle("List of rivers", "Wat Arun", "Bangkok", false)
	assert.Greater(t, exact, miss)

	hotelTitle := scoreWikipediaTitle("Mandarin Oriental Hotel Bangkok", "Mandarin Oriental", "Bangkok", true)
	plainTitle := scoreWikipediaTitle("Mandarin Oriental Bangkok", "Mandarin Oriental", "Bangkok", true)
	assert.Greater(t, hotelTitle, plainTitle)
}

func TestBuildCommonsURL(t *testing.T) {
	url := buildCommonsURL("File:Wat Arun at dawn.jpg")
	assert.Equal(t, "https://commons.wikimedia.org/wiki/Special:FilePath/Wat_Arun_at_dawn.jpg?width=1200", url)

	assert.Equal(t, "", buildCommonsURL("   "))
}

func TestIsGenuineImageURL(t *testing.T) {
	assert.True(t, isGenuineImageURL("https://upload.wikimedia.org/wikipedia/commons/a/ab/Wat_Arun.jpg"))
	assert.True(t, isGenuineImageURL("https://commons.wikimedia.org/wiki/Special:FilePath/Wat_Arun.jpg?width=1200"))
	assert.True(t, isGenuineImageURL("https://images.somehost.com/photo.jpeg?size=large"))
	assert.True(t, isGenuineImageURL("https://cdn.example.org/pic.webp"))

	assert.False(t, isGenuineImageURL(""))
	assert.False(t, isGenuineImageURL("not a url"))
	assert.False(t, isGenuineImageURL("ftp://host/pic.jpg"))
	assert.False(t, isGenuineImageURL("https://example.com/photo.jpg"))
	assert.False(t, isGenuineImageURL("https://cdn.site.com/placeholder.png"))
	assert.False(t, isGenuineImageURL("https://site.com/page.html"))
}
