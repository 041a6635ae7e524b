package generativesvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/academiahq/academia/core"
	"github.com/academiahq/academia/core/assistant"
)

// instDelimiter marks the end of the instruction echo in instruct-tuned model
// output; only the text after it is the reply.
const instDelimiter = "[/INST]"

// maxLoadingWait bounds how long a single "model loading" hint may delay a
// retry.
const maxLoadingWait = 5 * time.Second

// HuggingFaceGenerator calls a hosted inference endpoint with the
// `{inputs, parameters}` request shape. Attempts are bounded; the overall
// budget is the caller's context deadline.
type HuggingFaceGenerator struct {
	url     string
	token   string
	retries int
	client  *http.Client
}

var _ assistant.Generator = (*HuggingFaceGenerator)(nil)

func NewHuggingFaceGenerator(conf *core.Config) *HuggingFaceGenerator {
	return &HuggingFaceGenerator{
		url:     conf.Assistant.GenerativeBaseURL,
		token:   conf.Assistant.GenerativeToken,
		retries: conf.Assistant.GenerateRetries,
		client:  &http.Client{},
	}
}

type (
	inferenceRequest struct {
		Inputs     string              `json:"inputs"`
		Parameters inferenceParameters `json:"parameters"`
	}

	inferenceParameters struct {
		MaxNewTokens int     `json:"max_new_tokens"`
		Temperature  float64 `json:"temperature"`
	}

	inferenceResponse struct {
		GeneratedText string  `json:"generated_text"`
		Error         string  `json:"error"`
		EstimatedTime float64 `json:"estimated_time"`
	}
)

func (gen *HuggingFaceGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < gen.retries; attempt++ {
		out, wait, err := gen.attempt(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}
		if wait > 0 {
			// model cold start: back off and retry within the context budget
			select {
			case <-time.After(wait):
				continue
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		if out != "" {
			return out, nil
		}
		lastErr = errors.New("empty generated text")
	}
	if lastErr == nil {
		lastErr = errors.New("generation attempts exhausted")
	}
	return "", lastErr
}

// attempt performs one inference call. A non-zero wait means the model is
// still loading and the caller should retry after the delay.
func (gen *HuggingFaceGenerator) attempt(ctx context.Context, prompt string) (string, time.Duration, error) {
	payload, err := json.Marshal(inferenceRequest{
		Inputs:     prompt,
		Parameters: inferenceParameters{MaxNewTokens: 500, Temperature: 0.7},
	})
	if err != nil {
		return "", 0, errors.Wrap(err, "encoding inference request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gen.url, bytes.NewReader(payload))
	if err != nil {
		return "", 0, errors.Wrap(err, "building inference request")
	}
	req.Header.Set("Content-Type", "application/json")
	if gen.token != "" {
		req.Header.Set("Authorization", "Bearer "+gen.token)
	}

	resp, err := gen.client.Do(req)
	if err != nil {
		return "", 0, errors.Wrap(err, "calling inference endpoint")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, errors.Wrap(err, "reading inference response")
	}
	return parseInference(body)
}

// parseInference handles both observed success shapes: an array whose first
// element carries generated_text, or a bare object.
func parseInference(body []byte) (string, time.Duration, error) {
	var single inferenceResponse
	if err := json.Unmarshal(body, &single); err == nil {
		if single.Error != "" {
			if strings.Contains(single.Error, "loading") {
				wait := time.Duration(single.EstimatedTime * float64(time.Second))
				if wait <= 0 || wait > maxLoadingWait {
					wait = maxLoadingWait
				}
				return "", wait, nil
			}
			return "", 0, errors.New(single.Error)
		}
		if single.GeneratedText != "" {
			return stripInstruction(single.GeneratedText), 0, nil
		}
	}

	var many []inferenceResponse
	if err := json.Unmarshal(body, &many); err == nil && len(many) > 0 && many[0].GeneratedText != "" {
		return stripInstruction(many[0].GeneratedText), 0, nil
	}
	return "", 0, errors.New("malformed inference response")
}

func stripInstruction(text string) string {
	if _, after, found := strings.Cut(text, instDelimiter); found {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(text)
}
