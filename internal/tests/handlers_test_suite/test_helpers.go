package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/glowcosmetics/storefront/internal/cart"
	api "github.com/glowcosmetics/storefront/internal/http"
	handler "github.com/glowcosmetics/storefront/internal/http/handlers"
	rl "github.com/glowcosmetics/storefront/internal/http/rate_limiter"
	"github.com/glowcosmetics/storefront/internal/models"
	"github.com/glowcosmetics/storefront/internal/repo"
)

var (
	token        string
	productRepo  *repo.InMemoryProductRepository
	categoryRepo *repo.InMemoryCategoryRepository
	userRepo     *repo.InMemoryUserRepository
	movementRepo *repo.InMemoryMovementRepository
	cartStore    *cart.Store
)

const (
	adminEmail    = "admin@glow.test"
	adminPassword = "secret-pass"
)

func init() {
	setupTestRepos(adminPassword)
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, adminEmail, adminPassword)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	categoryRepo = repo.NewInMemoryCategoryRepository()
	categoryRepo.SetProductRepository(productRepo)
	handler.SetCategoryRepo(categoryRepo)

	movementRepo = repo.NewInMemoryMovementRepository()
	handler.SetMovementRepo(movementRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	cartStore = cart.NewStore()
	handler.SetCartStore(cartStore)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Name:         "Admin User",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
}

func generateToken(r http.Handler, email, password string) (string, error) {
	w := login(r, email, password)
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	var result handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Token, nil
}

// login resets the per-IP limiter first so test volume never trips the
// rate limit on /login.
func login(r http.Handler, email, password string) *httptest.ResponseRecorder {
	rl.CleanupAllVisitors()
	body, _ := json.Marshal(handler.CredentialsRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(r http.Handler, name, email, password string) *httptest.ResponseRecorder {
	rl.CleanupAllVisitors()
	body, _ := json.Marshal(handler.RegisterRequest{Name: name, Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r http.Handler, method, path string, payload any, authToken string) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, payload handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", payload, token)
}

func createCategory(r http.Handler, name string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/categories", handler.CategoryRequest{Name: name}, token)
}

func clearAllProducts() {
	productRepo.Clear()
}

func clearAllCategories() {
	categoryRepo.Clear()
}

func clearAllMovements() {
	movementRepo.Clear()
}

func clearAllUsersExceptAdmin() {
	users, _ := userRepo.GetAll()
	for _, u := range users {
		if u.Email != adminEmail {
			userRepo.Delete(u.ID)
		}
	}
}
