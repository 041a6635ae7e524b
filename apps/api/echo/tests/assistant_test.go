package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/academiahq/academia/core/assistant"
	"github.com/academiahq/academia/core/user"
)

func TestAssistantQuota(t *testing.T) {
	freeUsr := createUser(t, "Free Chatter", "free-quota@test.cd", "s3cr3tpwd", user.PlanFree)
	proUsr := createUser(t, "Pro Chatter", "pro-quota@test.cd", "s3cr3tpwd", user.PlanPro)

	t.Run("requires auth", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/assistant/quota")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)
	})

	t.Run("free plan", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/assistant/quota", getToken(t, freeUsr))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, assistant.QuotaState{
				Limit: assistant.FreeDailyLimit, Remaining: assistant.FreeDailyLimit, CanSend: true,
			}),
		}, rec)
	})

	t.Run("pro plan", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/assistant/quota", getToken(t, proUsr))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, assistant.QuotaState{
				Limit: -1, Remaining: -1, Unlimited: true, CanSend: true,
			}),
		}, rec)
	})
}

func TestAssistantAsk(t *testing.T) {
	usr := createUser(t, "Asker", "asker@test.cd", "s3cr3tpwd", user.PlanFree)
	token := getToken(t, usr)

	t.Run("requires auth", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/assistant/ask", []byte(`{"query": "explain DNA"}`))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)
	})

	t.Run("empty query", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/assistant/ask", token, []byte(`{"query": ""}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("plain answer", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/assistant/ask", token, []byte(`{"query": "explain DNA"}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
		}

		var reply assistant.ChatMessage
		if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if reply.Role != assistant.RoleAssistant {
			t.Errorf("role = %q", reply.Role)
		}
		if assistant.ContainsMCQ(reply.Content) {
			t.Error("plain query must not yield an MCQ block")
		}
	})

	t.Run("mcq intent", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/assistant/ask", token, []byte(`{"query": "quiz me on newton"}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
		}

		var reply assistant.ChatMessage
		if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		q, ok := assistant.ParseMCQ(reply.Content)
		if !ok {
			t.Fatalf("reply is not an MCQ block:\n%s", reply.Content)
		}
		if q.Correct != "C" {
			t.Errorf("correct = %q, want C", q.Correct)
		}
	})

	t.Run("history holds both turn halves in order", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/assistant/history", token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
		}

		var msgs []assistant.ChatMessage
		if err := json.Unmarshal(rec.Body.Bytes(), &msgs); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if len(msgs) != 4 {
			t.Fatalf("%d messages, want 4", len(msgs))
		}
		for i, msg := range msgs {
			wantRole := assistant.RoleUser
			if i%2 == 1 {
				wantRole = assistant.RoleAssistant
			}
			if msg.Role != wantRole {
				t.Errorf("msgs[%d].Role = %q, want %q", i, msg.Role, wantRole)
			}
		}
	})

	t.Run("free quota exhausts with 429", func(t *testing.T) {
		// 2 user messages already sent above
		for i := 0; i < assistant.FreeDailyLimit-2; i++ {
			body := []byte(fmt.Sprintf(`{"query": "explain topic %d"}`, i))
			req, rec := newAuthRequest(http.MethodPost, "/v1/assistant/ask", token, body)
			app.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("ask #%d code = %d, body = %s", i, rec.Code, rec.Body.String())
			}
		}

		req, rec := newAuthRequest(http.MethodPost, "/v1/assistant/ask", token, []byte(`{"query": "one more"}`))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusTooManyRequests,
			wantData: marchallObj(t, httpErr{Error: "daily assistant quota exhausted"}),
		}, rec)
	})

	t.Run("clear empties history", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/assistant/history", token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/assistant/history", token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`[]`)}, rec)
	})
}
