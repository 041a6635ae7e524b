package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/academiahq/academia/core/user"
)

func TestUserRegister(t *testing.T) {
	tests := []httpTest{
		{
			name:     "empty body",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "password mismatch",
			body:     []byte(`{"full_name": "Awe Mfu", "email": "awe@test.cd", "password": "s3cr3tpwd", "password_confirm": "lol"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "password too short",
			body:     []byte(`{"full_name": "Awe Mfu", "email": "awe@test.cd", "password": "short", "password_confirm": "short"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "ok",
			body:     []byte(`{"full_name": "Awe Mfu", "email": "awe@test.cd", "password": "s3cr3tpwd", "password_confirm": "s3cr3tpwd"}`),
			wantCode: http.StatusCreated,
		},
		{
			name:     "duplicate email",
			body:     []byte(`{"full_name": "Imposter", "email": "awe@test.cd", "password": "s3cr3tpwd", "password_confirm": "s3cr3tpwd"}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/users/register", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("response carries token and defaults", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/users/register",
			[]byte(`{"full_name": "Neo", "email": "neo@test.cd", "password": "s3cr3tpwd", "password_confirm": "s3cr3tpwd"}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
		}

		var resp struct {
			Token string    `json:"token"`
			User  user.User `json:"user"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if resp.Token == "" {
			t.Error("expected a token")
		}
		if resp.User.Plan != user.PlanFree {
			t.Errorf("plan = %q, want %q", resp.User.Plan, user.PlanFree)
		}
		if resp.User.CollegeName != "Not Set" || resp.User.Course != "Not Set" {
			t.Errorf("profile defaults = %q / %q, want \"Not Set\"", resp.User.CollegeName, resp.User.Course)
		}
	})
}

func TestUserLogin(t *testing.T) {
	usr := createUser(t, "Login Dude", "login@test.cd", "s3cr3tpwd", user.PlanFree)

	tests := []httpTest{
		{name: "empty body", body: []byte(`{}`), wantCode: http.StatusBadRequest},
		{
			name:     "unknown email",
			body:     []byte(`{"email": "nobody@test.cd", "password": "s3cr3tpwd"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name:     "wrong password",
			body:     []byte(`{"email": "login@test.cd", "password": "lol"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name:     "ok",
			body:     []byte(`{"email": "login@test.cd", "password": "s3cr3tpwd"}`),
			wantCode: http.StatusOK,
		},
		{
			name:     "email is case-insensitive",
			body:     []byte(`{"email": "LOGIN@test.cd", "password": "s3cr3tpwd"}`),
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/users/login", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("deactivated account", func(t *testing.T) {
		usr.IsActive = false
		if _, err := usrRepo.UpdateUser(ctx, usr); err != nil {
			t.Fatalf("UpdateUser() failed: %v", err)
		}

		req, rec := newRequest(http.MethodPost, "/v1/users/login",
			[]byte(`{"email": "login@test.cd", "password": "s3cr3tpwd"}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("code = %d, want %d", rec.Code, http.StatusForbidden)
		}
	})
}

func TestUserProfile(t *testing.T) {
	usr := createUser(t, "Profile Dude", "profile@test.cd", "s3cr3tpwd", user.PlanFree)
	token := getToken(t, usr)

	t.Run("requires auth", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/users/me/profile")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)
	})

	t.Run("retrieve", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/users/me/profile", token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
		}

		var got user.User
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if got.Email != usr.Email {
			t.Errorf("email = %q, want %q", got.Email, usr.Email)
		}
	})

	t.Run("update", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/v1/users/me/profile", token,
			[]byte(`{"college_name": "MIT", "course": "CS", "year_of_study": "year2", "target_career": "SRE"}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
		}

		var got user.User
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if got.CollegeName != "MIT" || got.Course != "CS" || got.YearOfStudy != "year2" || got.TargetCareer != "SRE" {
			t.Errorf("profile = %+v", got)
		}
	})

	t.Run("update rejects bad year", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/v1/users/me/profile", token,
			[]byte(`{"year_of_study": "year9"}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("upgrade", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/users/me/upgrade", token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
		}

		var got user.User
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if got.Plan != user.PlanPro {
			t.Errorf("plan = %q, want %q", got.Plan, user.PlanPro)
		}
	})
}
