package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWikidataClient(handler http.HandlerFunc) (*WikidataClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewWikidataClient()
	client.BaseURL = server.URL
	return client, server
}

func TestSearchEntitiesReturnsIDsInOrder(t *testing.T) {
	client, server := newTestWikidataClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "wbsearchentities", r.URL.Query().Get("action"))
		assert.Equal(t, "Wat Arun", r.URL.Query().Get("search"))
		assert.Equal(t, "8", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"search":[{"id":"Q212371"},{"id":"Q1234"}]}`))
	})
	defer server.Close()

	ids, err := client.SearchEntities(context.Background(), "Wat Arun")
	require.NoError(t, err)
	assert.Equal(t, []string{"Q212371", "Q1234"}, ids)
}

func TestSearchEntitiesEmptyQuery(t *testing.T) {
	client := NewWikidataClient()

	ids, err := client.SearchEntities(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestSearchEntitiesServerError(t *testing.T) {
	client, server := newTestWikidataClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.SearchEntities(context.Background(), "Wat Arun")
	assert.Error(t, err)
}

func TestFetchEntitiesFlattensClaims(t *testing.T) {
	client, server := newTestWikidataClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "wbgetentities", r.URL.Query().Get("action"))
		assert.Equal(t, "Q212371", r.URL.Query().Get("ids"))
		assert.Equal(t, "labels|descriptions|claims", r.URL.Query().Get("props"))
		w.Write([]byte(`{
			"entities": {
				"Q212371": {
					"labels": {"en": {"value": "Wat Arun"}},
					"descriptions": {"en": {"value": "Buddhist temple in Bangkok"}},
					"claims": {
						"P18": [{"mainsnak": {"datavalue": {"value": "Wat Arun at dawn.jpg"}}}],
						"P31": [{"mainsnak": {"datavalue": {"value": {"id": "Q33506"}}}}]
					}
				}
			}
		}`))
	})
	defer server.Close()

	entities, err := client.FetchEntities(context.Background(), []string{"Q212371"})
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "Wat Arun", entities[0].Label)
	assert.Equal(t, "Buddhist temple in Bangkok", entities[0].Description)
	assert.Equal(t, "Wat Arun at dawn.jpg", entities[0].ImageFile)
	assert.Equal(t, []string{"Q33506"}, entities[0].InstanceOf)
}

func TestFetchEntitiesSkipsMissingAndEmptyClaims(t *testing.T) {
	client, server := newTestWikidataClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"entities": {
				"Q1": {"labels": {"en": {"value": "No image"}}, "claims": {}}
			}
		}`))
	})
	defer server.Close()

	entities, err := client.FetchEntities(context.Background(), []string{"Q1", "Q2"})
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "No image", entities[0].Label)
	assert.Empty(t, entities[0].ImageFile)
	assert.Empty(t, entities[0].InstanceOf)
}

func TestFetchEntitiesNoIDs(t *testing.T) {
	client := NewWikidataClient()

	entities, err := client.FetchEntities(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, entities)
}

func TestWikidataClientSendsUserAgent(t *testing.T) {
	var gotUserAgent string
	client, server := newTestWikidataClient(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{"search":[]}`))
	})
	defer server.Close()

	_, err := client.SearchEntities(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "TripMind/1.0 (image-enrichment)", gotUserAgent)
}
