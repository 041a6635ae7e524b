package assistant

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/academiahq/academia/core"
	"github.com/academiahq/academia/core/user"
)

type fakeRepo struct {
	msgs    map[string][]ChatMessage
	getErr  error
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{msgs: make(map[string][]ChatMessage)}
}

func (r *fakeRepo) GetMessages(ctx context.Context, userID string) ([]ChatMessage, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.msgs[userID], nil
}

func (r *fakeRepo) AppendTurn(ctx context.Context, userID string, userMsg, assistantMsg ChatMessage) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.msgs[userID] = append(r.msgs[userID], userMsg, assistantMsg)
	return nil
}

func (r *fakeRepo) ClearMessages(ctx context.Context, userID string) error {
	delete(r.msgs, userID)
	return nil
}

type fakeKnowledge struct {
	text string
}

func (k fakeKnowledge) Fetch(ctx context.Context, topic string) string { return k.text }

type fakeGenerator struct {
	out string
	err error
}

func (g fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.out, g.err
}

func testConf() *core.Config {
	return &core.Config{
		Assistant: core.AssistantConfig{
			FreeDailyLimit:  FreeDailyLimit,
			GenerateTimeout: time.Second,
		},
	}
}

func newTestService(repo Repository, generator Generator) *Service {
	svc := NewService(repo, fakeKnowledge{text: "Some context."}, generator, testConf())
	svc.nowFunc = func() time.Time { return time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC) }
	return svc
}

func TestServiceAsk_plainAnswer(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	usr := user.User{ID: "u1", Plan: user.PlanFree}

	reply, err := svc.Ask(context.Background(), usr, "explain DNA")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if reply.Role != RoleAssistant {
		t.Errorf("reply.Role = %s, want %s", reply.Role, RoleAssistant)
	}
	if !strings.Contains(reply.Content, "explain DNA") {
		t.Errorf("reply must name the topic:\n%s", reply.Content)
	}
	if ContainsMCQ(reply.Content) {
		t.Error("plain query must not yield an MCQ block")
	}

	// the turn is persisted user-first
	msgs := repo.msgs["u1"]
	if len(msgs) != 2 {
		t.Fatalf("persisted %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != RoleUser || msgs[1].Role != RoleAssistant {
		t.Errorf("turn order = [%s, %s], want [user, assistant]", msgs[0].Role, msgs[1].Role)
	}
	if msgs[0].Content != "explain DNA" {
		t.Errorf("persisted query = %q", msgs[0].Content)
	}
}

func TestServiceAsk_mcqIntent(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	usr := user.User{ID: "u1", Plan: user.PlanFree}

	reply, err := svc.Ask(context.Background(), usr, "quiz me on newton")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	q, ok := ParseMCQ(reply.Content)
	if !ok {
		t.Fatalf("reply is not a valid MCQ block:\n%s", reply.Content)
	}
	if q.Options[q.Correct] != "Inertia" {
		t.Errorf("correct option = %q, want %q", q.Options[q.Correct], "Inertia")
	}
}

func TestServiceAsk_emptyQueryIsNoOp(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	usr := user.User{ID: "u1", Plan: user.PlanFree}

	reply, err := svc.Ask(context.Background(), usr, "   \n\t ")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if reply != (ChatMessage{}) {
		t.Errorf("Ask() = %+v, want zero message", reply)
	}
	if len(repo.msgs["u1"]) != 0 {
		t.Error("empty query must not be persisted")
	}
}

func TestServiceAsk_quotaExhausted(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	usr := user.User{ID: "u1", Plan: user.PlanFree}

	for i := 0; i < FreeDailyLimit; i++ {
		if _, err := svc.Ask(context.Background(), usr, "explain something"); err != nil {
			t.Fatalf("Ask() #%d error = %v", i+1, err)
		}
	}

	_, err := svc.Ask(context.Background(), usr, "one more")
	if errors.Cause(err) != ErrQuotaExhausted {
		t.Fatalf("Ask() error = %v, want ErrQuotaExhausted", err)
	}
	if got := len(repo.msgs["u1"]); got != FreeDailyLimit*2 {
		t.Errorf("persisted %d messages, want %d", got, FreeDailyLimit*2)
	}

	// pro users are never cut off
	pro := user.User{ID: "u2", Plan: user.PlanPro}
	for i := 0; i < FreeDailyLimit+5; i++ {
		if _, err := svc.Ask(context.Background(), pro, "explain something"); err != nil {
			t.Fatalf("pro Ask() #%d error = %v", i+1, err)
		}
	}
}

func TestServiceAsk_quotaResetsAtMidnight(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	usr := user.User{ID: "u1", Plan: user.PlanFree}

	for i := 0; i < FreeDailyLimit; i++ {
		if _, err := svc.Ask(context.Background(), usr, "explain something"); err != nil {
			t.Fatalf("Ask() #%d error = %v", i+1, err)
		}
	}
	if _, err := svc.Ask(context.Background(), usr, "one more"); errors.Cause(err) != ErrQuotaExhausted {
		t.Fatalf("Ask() error = %v, want ErrQuotaExhausted", err)
	}

	// next day, first thing in the morning
	svc.nowFunc = func() time.Time { return time.Date(2024, 3, 16, 0, 0, 1, 0, time.UTC) }
	if _, err := svc.Ask(context.Background(), usr, "good morning"); err != nil {
		t.Fatalf("Ask() after midnight error = %v", err)
	}
}

func TestServiceAsk_generatorOutput(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		generator Generator
		wantLive  bool
	}{
		{
			name:      "usable plain output is returned as is",
			query:     "explain gravity",
			generator: fakeGenerator{out: "Gravity is the attraction between masses, bending spacetime."},
			wantLive:  true,
		},
		{
			name:      "too-short plain output falls back",
			query:     "explain gravity",
			generator: fakeGenerator{out: "Gravity."},
			wantLive:  false,
		},
		{
			name:      "generator error falls back",
			query:     "explain gravity",
			generator: fakeGenerator{err: errors.New("boom")},
			wantLive:  false,
		},
		{
			name:      "mcq output without markers falls back",
			query:     "quiz me on gravity",
			generator: fakeGenerator{out: "Question: What is gravity? A) a force B) a fruit Correct: A"},
			wantLive:  false,
		},
		{
			name:      "mcq output with markers is returned as is",
			query:     "quiz me on gravity",
			generator: fakeGenerator{out: "QUESTIONS_START\nQuestion: What is gravity?\nA) A force\nB) A fruit\nCorrect: A\nExplanation: Yes.\nQUESTIONS_END"},
			wantLive:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newTestService(repo, tt.generator)
			usr := user.User{ID: "u1", Plan: user.PlanFree}

			reply, err := svc.Ask(context.Background(), usr, tt.query)
			if err != nil {
				t.Fatalf("Ask() error = %v", err)
			}

			isLive := false
			if g, ok := tt.generator.(fakeGenerator); ok && g.out != "" {
				isLive = reply.Content == g.out
			}
			if isLive != tt.wantLive {
				t.Errorf("live output = %v, wantLive %v; content:\n%s", isLive, tt.wantLive, reply.Content)
			}
			if !tt.wantLive && IsMCQIntent(tt.query) && !ContainsMCQ(reply.Content) {
				t.Error("fallback for an MCQ intent must embed an MCQ block")
			}
		})
	}
}

func TestServiceAsk_historyLoadFailurePropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("db down")
	svc := newTestService(repo, nil)

	_, err := svc.Ask(context.Background(), user.User{ID: "u1", Plan: user.PlanFree}, "explain DNA")
	if err == nil {
		t.Fatal("Ask() expected error when history cannot be loaded")
	}
}

func TestServiceQuota(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	usr := user.User{ID: "u1", Plan: user.PlanFree}

	quota, err := svc.Quota(context.Background(), usr)
	if err != nil {
		t.Fatalf("Quota() error = %v", err)
	}
	if quota.Used != 0 || quota.Remaining != FreeDailyLimit || !quota.CanSend {
		t.Errorf("Quota() = %+v", quota)
	}

	if _, err := svc.Ask(context.Background(), usr, "explain DNA"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	quota, err = svc.Quota(context.Background(), usr)
	if err != nil {
		t.Fatalf("Quota() error = %v", err)
	}
	if quota.Used != 1 || quota.Remaining != FreeDailyLimit-1 {
		t.Errorf("Quota() after one turn = %+v", quota)
	}
}

func TestServiceClear(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	usr := user.User{ID: "u1", Plan: user.PlanFree}

	if _, err := svc.Ask(context.Background(), usr, "explain DNA"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if err := svc.Clear(context.Background(), usr); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	msgs, err := svc.History(context.Background(), usr)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("History() after Clear() = %d messages, want 0", len(msgs))
	}
}
