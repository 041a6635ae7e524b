package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/academiahq/academia/core/habit"
	"github.com/academiahq/academia/core/user"
)

func TestHabitTracking(t *testing.T) {
	usr := createUser(t, "Habitual", "habitual@test.cd", "s3cr3tpwd", user.PlanFree)
	token := getToken(t, usr)

	t.Run("requires auth", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/habits")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)
	})

	t.Run("empty list", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/habits", token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`[]`)}, rec)
	})

	t.Run("create missing name", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/habits", token, []byte(`{"icon": "📖"}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	var h habit.Habit
	t.Run("create", func(t *testing.T) {
		body := []byte(`{"name": "Morning reading", "icon": "📖", "color": "#4caf50"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/habits", token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
		}

		if err := json.Unmarshal(rec.Body.Bytes(), &h); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if h.ID == "" {
			t.Error("habit created without an ID")
		}
		if len(h.CompletedDays) != 0 {
			t.Errorf("new habit has completed days: %v", h.CompletedDays)
		}
	})

	t.Run("toggle on", func(t *testing.T) {
		body := []byte(`{"date": "2026-08-31"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/habits/"+h.ID+"/toggle", token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
		}

		var toggled habit.Habit
		if err := json.Unmarshal(rec.Body.Bytes(), &toggled); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !toggled.MarkedOn("2026-08-31") {
			t.Errorf("day not marked: %v", toggled.CompletedDays)
		}
	})

	t.Run("toggle off", func(t *testing.T) {
		body := []byte(`{"date": "2026-08-31"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/habits/"+h.ID+"/toggle", token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
		}

		var toggled habit.Habit
		if err := json.Unmarshal(rec.Body.Bytes(), &toggled); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if toggled.MarkedOn("2026-08-31") {
			t.Errorf("day still marked: %v", toggled.CompletedDays)
		}
	})

	t.Run("toggle bad date", func(t *testing.T) {
		body := []byte(`{"date": "31/08/2026"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/habits/"+h.ID+"/toggle", token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("toggle unknown habit", func(t *testing.T) {
		body := []byte(`{"date": "2026-08-31"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/habits/nope/toggle", token, body)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)}, rec)
	})

	t.Run("delete", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/habits/"+h.ID, token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
		}

		req, rec = newAuthRequest(http.MethodDelete, "/v1/habits/"+h.ID, token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)}, rec)
	})
}
