package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/providers"
	"github.com/clinscribe/transcript-correction/backend/pkg/retry"
)

const defaultHTTPTimeout = 8 * time.Second

// Entity labels worth protecting from correction. Person, organisation and
// place names are legitimate out-of-dictionary words, not transcription
// mistakes.
var protectedLabels = map[string]bool{
	"PERSON": true,
	"ORG":    true,
	"GPE":    true,
}

// HTTPProvider extracts named entities by calling an external NER service.
type HTTPProvider struct {
	url        string
	httpClient *http.Client
}

// NewHTTPProvider creates an entity extractor backed by an HTTP NER service.
func NewHTTPProvider(url string) providers.EntityExtractor {
	return NewHTTPProviderWithOptions(url, nil)
}

// NewHTTPProviderWithOptions allows overriding the HTTP client (used for tests).
func NewHTTPProviderWithOptions(url string, httpClient *http.Client) providers.EntityExtractor {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &HTTPProvider{
		url:        url,
		httpClient: httpClient,
	}
}

// Extract sends the text to the NER service and returns the lowercased
// surface words of person, organisation and place entities. Transient
// failures are retried briefly; the caller decides what to do when the
// service stays unavailable.
func (p *HTTPProvider) Extract(ctx context.Context, text string) (mapset.Set[string], error) {
	payload, err := json.Marshal(extractRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode ner request: %w", err)
	}

	var result extractResponse
	err = retry.Do(ctx, retry.ShortConfig(), func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to build ner request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := p.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("ner request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("ner request returned status %d", resp.StatusCode)
		}

		result = extractResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("failed to decode ner response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entities := mapset.NewSet[string]()
	for _, entity := range result.Entities {
		if !protectedLabels[strings.ToUpper(entity.Label)] {
			continue
		}
		for _, word := range strings.Fields(entity.Text) {
			entities.Add(strings.ToLower(word))
		}
	}
	return entities, nil
}

type extractRequest struct {
	Text string `json:"text"`
}

type extractResponse struct {
	Entities []extractedEntity `json:"entities"`
}

type extractedEntity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}
