package generativesvc

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core"
	"github.com/academiahq/academia/core/assistant"
)

// OpenAIGenerator targets any OpenAI-compatible chat completion endpoint.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

var _ assistant.Generator = (*OpenAIGenerator)(nil)

func NewOpenAIGenerator(conf *core.Config) *OpenAIGenerator {
	cfg := openai.DefaultConfig(conf.Assistant.GenerativeToken)
	if conf.Assistant.GenerativeBaseURL != "" {
		cfg.BaseURL = conf.Assistant.GenerativeBaseURL
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  conf.Assistant.GenerativeModel,
	}
}

func (gen *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := gen.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: gen.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "creating chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return stripInstruction(strings.TrimSpace(resp.Choices[0].Message.Content)), nil
}
