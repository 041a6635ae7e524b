package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/academiahq/academia/core"
	"github.com/academiahq/academia/core/user"
)

// ErrQuotaExhausted is a normal pipeline outcome, not a server fault: the
// caller maps it to an upgrade prompt.
var ErrQuotaExhausted = errors.New("daily assistant quota exhausted")

type (
	Repository interface {
		GetMessages(ctx context.Context, userID string) ([]ChatMessage, error)
		// AppendTurn persists a user message and its assistant reply
		// all-or-nothing, in that order.
		AppendTurn(ctx context.Context, userID string, userMsg, assistantMsg ChatMessage) error
		ClearMessages(ctx context.Context, userID string) error
	}

	// KnowledgeSource fetches a short external summary for a topic. It never
	// fails: on any error it returns canned filler text naming the topic.
	KnowledgeSource interface {
		Fetch(ctx context.Context, topic string) string
	}

	// Generator produces free text from a prompt. Optional; the pipeline
	// falls back to deterministic generation when it is absent or fails.
	Generator interface {
		Generate(ctx context.Context, prompt string) (string, error)
	}

	Service struct {
		repo      Repository
		knowledge KnowledgeSource
		generator Generator
		conf      *core.Config

		nowFunc func() time.Time // mockable
	}
)

func NewService(repo Repository, knowledge KnowledgeSource, generator Generator, conf *core.Config) *Service {
	return &Service{
		repo:      repo,
		knowledge: knowledge,
		generator: generator,
		conf:      conf,
		nowFunc:   time.Now,
	}
}

func (svc *Service) History(ctx context.Context, usr user.User) ([]ChatMessage, error) {
	return svc.repo.GetMessages(ctx, usr.ID)
}

func (svc *Service) Clear(ctx context.Context, usr user.User) error {
	return svc.repo.ClearMessages(ctx, usr.ID)
}

// Quota reports the user's current daily allowance.
func (svc *Service) Quota(ctx context.Context, usr user.User) (QuotaState, error) {
	msgs, err := svc.repo.GetMessages(ctx, usr.ID)
	if err != nil {
		return QuotaState{}, errors.Wrap(err, "loading chat history")
	}
	used := CountToday(msgs, svc.nowFunc())
	return EvaluateQuota(usr.Plan, used, svc.conf.Assistant.FreeDailyLimit), nil
}

// Ask runs one pipeline invocation: quota check, knowledge fetch, response
// generation and turn persistence. An empty or whitespace-only query is a
// no-op. Only persistence failures propagate as errors; external fetch
// failures are recovered via the deterministic fallback generators.
func (svc *Service) Ask(ctx context.Context, usr user.User, query string) (ChatMessage, error) {
	query = core.CleanString(query)
	if query == "" {
		return ChatMessage{}, nil
	}

	msgs, err := svc.repo.GetMessages(ctx, usr.ID)
	if err != nil {
		return ChatMessage{}, errors.Wrap(err, "loading chat history")
	}
	now := svc.nowFunc()
	quota := EvaluateQuota(usr.Plan, CountToday(msgs, now), svc.conf.Assistant.FreeDailyLimit)
	if !quota.CanSend {
		return ChatMessage{}, ErrQuotaExhausted
	}

	knowledge := svc.knowledge.Fetch(ctx, query)
	isMCQ := IsMCQIntent(query)
	reply := svc.generate(ctx, query, knowledge, isMCQ)
	if reply == "" {
		if isMCQ {
			reply = BuildMCQ(query).Format()
		} else {
			reply = FormatAnswer(query, knowledge)
		}
	}

	userMsg := ChatMessage{Role: RoleUser, Content: query, Timestamp: now.UTC()}
	assistantMsg := ChatMessage{Role: RoleAssistant, Content: reply, Timestamp: now.UTC()}
	if err := svc.repo.AppendTurn(ctx, usr.ID, userMsg, assistantMsg); err != nil {
		return ChatMessage{}, errors.Wrap(err, "persisting turn")
	}
	return assistantMsg, nil
}

// generate attempts the live generative backend; "" means unusable output and
// engages the deterministic fallback.
func (svc *Service) generate(ctx context.Context, query, knowledge string, isMCQ bool) string {
	if svc.generator == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, svc.conf.Assistant.GenerateTimeout)
	defer cancel()

	out, err := svc.generator.Generate(ctx, buildPrompt(query, knowledge, isMCQ))
	if err != nil {
		return ""
	}
	if isMCQ && !ContainsMCQ(out) {
		return ""
	}
	if !isMCQ && len(out) <= 20 {
		return ""
	}
	return out
}

func buildPrompt(query, knowledge string, isMCQ bool) string {
	if isMCQ {
		return fmt.Sprintf(
			`[INST] You are an academic quiz master. Topic: %q. Context: %q. `+
				`Generate 1 Multiple Choice Question with options A-D, the correct letter, and an explanation. `+
				`FORMAT: Use QUESTIONS_START and QUESTIONS_END tags. [/INST]`,
			query, knowledge)
	}
	return fmt.Sprintf(
		`[INST] You are an academic professor. Provide a detailed, easy-to-understand explanation of %q for a student. `+
			`Use this context: %q. Include key points and an example. [/INST]`,
		query, knowledge)
}
