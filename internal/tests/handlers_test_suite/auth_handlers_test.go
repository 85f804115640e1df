package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/glowcosmetics/storefront/internal/http"
	handler "github.com/glowcosmetics/storefront/internal/http/handlers"
)

func TestRegisterHandler(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	r := api.NewRouter()

	w := register(r, "Sophie Martin", "sophie@glow.test", "password1")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" || resp.RefreshToken == "" {
		t.Error("expected register to return token and refresh token")
	}
}

func TestRegisterHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	r := api.NewRouter()

	tests := []struct {
		name    string
		payload handler.RegisterRequest
	}{
		{"Missing name", handler.RegisterRequest{Email: "a@glow.test", Password: "password1"}},
		{"Bad email", handler.RegisterRequest{Name: "A", Email: "not-an-email", Password: "password1"}},
		{"Short password", handler.RegisterRequest{Name: "A", Email: "a@glow.test", Password: "123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := register(r, tt.payload.Name, tt.payload.Email, tt.payload.Password)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	r := api.NewRouter()

	if w := register(r, "Sophie Martin", "sophie@glow.test", "password1"); w.Code != http.StatusCreated {
		t.Fatalf("first register failed: %d", w.Code)
	}
	w := register(r, "Sophie Again", "sophie@glow.test", "password2")
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	r := api.NewRouter()

	w := login(r, adminEmail, adminPassword)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" || resp.RefreshToken == "" {
		t.Error("expected login to return token and refresh token")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	r := api.NewRouter()

	w := login(r, adminEmail, "wrong-password")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestLoginHandler_UnknownUser(t *testing.T) {
	r := api.NewRouter()

	w := login(r, "nobody@glow.test", "password1")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRefreshHandler_RotatesToken(t *testing.T) {
	r := api.NewRouter()

	w := login(r, adminEmail, adminPassword)
	var loginResp handler.LoginResult
	json.NewDecoder(w.Body).Decode(&loginResp)

	w = doJSON(r, http.MethodPost, "/refresh",
		handler.RefreshRequest{RefreshToken: loginResp.RefreshToken}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var refreshed handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&refreshed); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if refreshed.Token == "" || refreshed.RefreshToken == "" {
		t.Error("expected refresh to return a new token pair")
	}
	if refreshed.RefreshToken == loginResp.RefreshToken {
		t.Error("expected refresh token to be rotated")
	}
}

func TestRefreshHandler_SingleUse(t *testing.T) {
	r := api.NewRouter()

	w := login(r, adminEmail, adminPassword)
	var loginResp handler.LoginResult
	json.NewDecoder(w.Body).Decode(&loginResp)

	first := doJSON(r, http.MethodPost, "/refresh",
		handler.RefreshRequest{RefreshToken: loginResp.RefreshToken}, "")
	if first.Code != http.StatusOK {
		t.Fatalf("first refresh failed: %d", first.Code)
	}

	second := doJSON(r, http.MethodPost, "/refresh",
		handler.RefreshRequest{RefreshToken: loginResp.RefreshToken}, "")
	if second.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 on reused refresh token, got %d", second.Code)
	}
}

func TestLogoutHandler(t *testing.T) {
	r := api.NewRouter()

	w := login(r, adminEmail, adminPassword)
	var loginResp handler.LoginResult
	json.NewDecoder(w.Body).Decode(&loginResp)

	w = doJSON(r, http.MethodPost, "/logout",
		handler.RefreshRequest{RefreshToken: loginResp.RefreshToken}, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/refresh",
		handler.RefreshRequest{RefreshToken: loginResp.RefreshToken}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", w.Code)
	}
}

func TestCurrentUserHandler(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/current-user", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.UserResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Email != adminEmail || resp.Role != "admin" {
		t.Errorf("unexpected current user: %+v", resp)
	}
}

func TestCurrentUserHandler_Unauthorized(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/current-user", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
