package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/glowcosmetics/storefront/internal/http"
	handler "github.com/glowcosmetics/storefront/internal/http/handlers"
)

func registeredUserID(t *testing.T, r http.Handler, name, email string) int {
	t.Helper()
	if w := register(r, name, email, "password1"); w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d: %s", w.Code, w.Body.String())
	}
	u, err := userRepo.GetByEmail(email)
	if err != nil {
		t.Fatalf("registered user not found: %v", err)
	}
	return u.ID
}

func TestGetUsersHandler(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	r := api.NewRouter()

	registeredUserID(t, r, "Sophie Martin", "sophie@glow.test")

	w := doJSON(r, http.MethodGet, "/users", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp []handler.UserResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Errorf("expected admin plus one user, got %d", len(resp))
	}
}

func TestGetUsersHandler_ForbiddenForNonAdmin(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	r := api.NewRouter()

	registeredUserID(t, r, "Sophie Martin", "sophie@glow.test")
	userToken, err := generateToken(r, "sophie@glow.test", "password1")
	if err != nil {
		t.Fatal(err)
	}

	w := doJSON(r, http.MethodGet, "/users", nil, userToken)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestGetUserByIDHandler(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	r := api.NewRouter()

	id := registeredUserID(t, r, "Sophie Martin", "sophie@glow.test")

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp handler.UserResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Email != "sophie@glow.test" || resp.Role != "user" {
		t.Errorf("unexpected user: %+v", resp)
	}
}

func TestGetUserByIDHandler_NotFound(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/users/999", nil, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestUpdateUserRoleHandler(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	r := api.NewRouter()

	id := registeredUserID(t, r, "Sophie Martin", "sophie@glow.test")

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/users/%d", id),
		handler.RoleUpdateRequest{Role: "admin"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.UserResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Role != "admin" {
		t.Errorf("expected role admin, got %v", resp.Role)
	}
}

func TestUpdateUserRoleHandler_InvalidRole(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	r := api.NewRouter()

	id := registeredUserID(t, r, "Sophie Martin", "sophie@glow.test")

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/users/%d", id),
		handler.RoleUpdateRequest{Role: "superuser"}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid role, got %d", w.Code)
	}
}

func TestDeleteUserHandler(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	r := api.NewRouter()

	id := registeredUserID(t, r, "Sophie Martin", "sophie@glow.test")

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, token)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}
