package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	wikidataAPIURL      = "https://www.wikidata.org/w/api.php"
	wikidataSearchMax   = 8
	imageFetchUserAgent = "TripMind/1.0 (image-enrichment)"
)

// WikidataEntity is the subset of an entity record the scorer cares about:
// its label, description, the first P18 image file name and the list of
// P31 instance-of item ids.
type WikidataEntity struct {
	ID          string
	Label       string
	Description string
	ImageFile   string
	InstanceOf  []string
}

type WikidataClientInterface interface {
	SearchEntities(ctx context.Context, query string) ([]string, error)
	FetchEntities(ctx context.Context, ids []string) ([]WikidataEntity, error)
}

type WikidataClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewWikidataClient() *WikidataClient {
	return &WikidataClient{
		BaseURL: wikidataAPIURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchEntities runs wbsearchentities and returns the matched item ids in
// ranking order. An empty query or an empty result set both return nil.
func (c *WikidataClient) SearchEntities(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("action", "wbsearchentities")
	params.Set("search", query)
	params.Set("language", "en")
	params.Set("format", "json")
	params.Set("limit", fmt.Sprintf("%d", wikidataSearchMax))
	params.Set("type", "item")

	var decoded struct {
		Search []struct {
			ID string `json:"id"`
		} `json:"search"`
	}
	if err := c.getJSON(ctx, params, &decoded); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(decoded.Search))
	for _, hit := range decoded.Search {
		if hit.ID != "" {
			ids = append(ids, hit.ID)
		}
	}
	return ids, nil
}

// FetchEntities runs wbgetentities for the given ids and flattens the claim
// structure. Entities missing from the response are skipped silently.
func (c *WikidataClient) FetchEntities(ctx context.Context, ids []string) ([]WikidataEntity, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	joined := ids[0]
	for _, id := range ids[1:] {
		joined += "|" + id
	}

	params := url.Values{}
	params.Set("action", "wbgetentities")
	params.Set("ids", joined)
	params.Set("props", "labels|descriptions|claims")
	params.Set("languages", "en")
	params.Set("format", "json")

	var decoded struct {
		Entities map[string]struct {
			Labels map[string]struct {
				Value string `json:"value"`
			} `json:"labels"`
			Descriptions map[string]struct {
				Value string `json:"value"`
			} `json:"descriptions"`
			Claims map[string][]struct {
				MainSnak struct {
					DataValue struct {
						Value json.RawMessage `json:"value"`
					} `json:"datavalue"`
				} `json:"mainsnak"`
			} `json:"claims"`
		} `json:"entities"`
	}
	if err := c.getJSON(ctx, params, &decoded); err != nil {
		return nil, err
	}

	entities := make([]WikidataEntity, 0, len(ids))
	for _, id := range ids {
		raw, ok := decoded.Entities[id]
		if !ok {
			continue
		}

		entity := WikidataEntity{
			ID:          id,
			Label:       raw.Labels["en"].Value,
			Description: raw.Descriptions["en"].Value,
		}

		// P18: the first image claim is a Commons file name string.
		if claims, ok := raw.Claims["P18"]; ok && len(claims) > 0 {
			var file string
			if err := json.Unmarshal(claims[0].MainSnak.DataValue.Value, &file); err == nil {
				entity.ImageFile = file
			}
		}

		// P31: instance-of claims carry an entity id wrapper.
		for _, claim := range raw.Claims["P31"] {
			var wrapper struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(claim.MainSnak.DataValue.Value, &wrapper); err == nil && wrapper.ID != "" {
				entity.InstanceOf = append(entity.InstanceOf, wrapper.ID)
			}
		}

		entities = append(entities, entity)
	}
	return entities, nil
}

func (c *WikidataClient) getJSON(ctx context.Context, params url.Values, out interface{}) error {
	endpoint, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid wikidata base url: %w", err)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", imageFetchUserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("wikidata request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wikidata returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
