package handlers_test_suite

import (
	"net/http"
	"testing"

	api "github.com/glowcosmetics/storefront/internal/http"
	handler "github.com/glowcosmetics/storefront/internal/http/handlers"
	rl "github.com/glowcosmetics/storefront/internal/http/rate_limiter"
)

func TestLoginRateLimited(t *testing.T) {
	t.Cleanup(rl.CleanupAllVisitors)
	r := api.NewRouter()

	rl.CleanupAllVisitors()

	// burst of 3 per client IP; the fourth immediate attempt is rejected
	limited := false
	for i := 0; i < 5; i++ {
		w := doJSON(r, http.MethodPost, "/login",
			handler.CredentialsRequest{Email: adminEmail, Password: "wrong"}, "")
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("expected a 429 after exhausting the login burst")
	}
}
